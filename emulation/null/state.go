// This file is part of nstfront.
//
// nstfront is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nstfront is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nstfront.  If not, see <https://www.gnu.org/licenses/>.

package null

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/nstfront/nstfront/emulation"
)

var stateMagic = []byte("NSTS")

const stateVersion = 1

// stateHeader is the fixed size part of a state file.
type stateHeader struct {
	Magic    [4]byte
	Version  uint8
	Region   uint8
	Disk     int8
	Side     int8
	ImageCRC uint32
	Frame    uint64
}

// SaveState implements the emulation.Engine interface.
func (eng *Engine) SaveState(w io.Writer) error {
	if eng.img == nil {
		return emulation.ResultNotReady
	}

	h := stateHeader{
		Version:  stateVersion,
		Region:   uint8(eng.region),
		Disk:     -1,
		Side:     -1,
		ImageCRC: eng.img.crc,
		Frame:    eng.frame,
	}
	copy(h.Magic[:], stateMagic)
	if eng.inserted {
		h.Disk = int8(eng.disk)
		h.Side = int8(eng.side)
	}

	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}
	if _, err := w.Write(eng.ram[:]); err != nil {
		return err
	}
	if _, err := w.Write(eng.wram[:]); err != nil {
		return err
	}
	if eng.img.disk {
		if _, err := w.Write(eng.img.flatten()); err != nil {
			return err
		}
	}

	return nil
}

// LoadState implements the emulation.Engine interface. State created for a
// different image is refused.
func (eng *Engine) LoadState(r io.Reader) error {
	if eng.img == nil {
		return emulation.ResultNotReady
	}

	var h stateHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return emulation.ResultCorruptFile
	}
	if !bytes.Equal(h.Magic[:], stateMagic) || h.Version != stateVersion {
		return emulation.ResultInvalidFile
	}
	if h.ImageCRC != eng.img.crc {
		return emulation.ResultInvalidCRC
	}

	region := emulation.Region(h.Region)
	if region != emulation.NTSC && region != emulation.PAL {
		return emulation.ResultCorruptFile
	}

	// the inserted disk and side must exist in the loaded image
	if eng.img.disk && h.Disk >= 0 {
		if h.Side < 0 || h.Side > 1 || int(h.Disk)*2+int(h.Side) >= len(eng.img.sides) {
			return emulation.ResultCorruptFile
		}
	}

	var ram [ramLen]byte
	var wram [batteryLen]byte
	if _, err := io.ReadFull(r, ram[:]); err != nil {
		return emulation.ResultCorruptFile
	}
	if _, err := io.ReadFull(r, wram[:]); err != nil {
		return emulation.ResultCorruptFile
	}

	var disk []byte
	if eng.img.disk {
		disk = make([]byte, len(eng.img.sides)*fdsSideLen)
		if _, err := io.ReadFull(r, disk); err != nil {
			return emulation.ResultCorruptFile
		}
	}

	// nothing is changed until the entire state has been read
	eng.frame = h.Frame
	eng.region = region
	eng.ram = ram
	eng.wram = wram
	if eng.img.disk {
		eng.img.unflatten(disk)
		eng.diskDirty = !bytes.Equal(disk, eng.original)
		eng.inserted = h.Disk >= 0
		if eng.inserted {
			eng.disk = int(h.Disk)
			eng.side = int(h.Side)
		}
	}

	return nil
}
