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

package recorder

import (
	"encoding/binary"
	"io"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
)

const movieMagic = "NSMV"
const movieVersion = 0x01

// flush the compressed stream every flushEvery frames.
const flushEvery = 60

// the largest snapshot that will be accepted from a movie file.
const maxSnapshot = 16 * 1024 * 1024

// Sentinel error patterns.
const (
	NotAMovie          = "recorder: not a movie file"
	UnsupportedVersion = "recorder: unsupported movie version: %02x"
	WrongCartridge     = "recorder: movie was recorded with a different cartridge"
	WrongRegion        = "recorder: movie was recorded for %s"
)

type header struct {
	region emulation.Region
	hash   string
	state  []byte
}

func writeHeader(w io.Writer, hdr header) error {
	if _, err := w.Write([]byte(movieMagic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(movieVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(hdr.region)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(len(hdr.hash))); err != nil {
		return err
	}
	if _, err := w.Write([]byte(hdr.hash)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(hdr.state))); err != nil {
		return err
	}
	if _, err := w.Write(hdr.state); err != nil {
		return err
	}
	return nil
}

func readHeader(r io.Reader) (header, error) {
	var hdr header

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return hdr, curated.Errorf(NotAMovie)
	}
	if string(magic[:]) != movieMagic {
		return hdr, curated.Errorf(NotAMovie)
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return hdr, err
	}
	if version != movieVersion {
		return hdr, curated.Errorf(UnsupportedVersion, version)
	}

	var region uint8
	if err := binary.Read(r, binary.LittleEndian, &region); err != nil {
		return hdr, err
	}
	hdr.region = emulation.Region(region)

	var hashLen uint8
	if err := binary.Read(r, binary.LittleEndian, &hashLen); err != nil {
		return hdr, err
	}
	hash := make([]byte, hashLen)
	if _, err := io.ReadFull(r, hash); err != nil {
		return hdr, err
	}
	hdr.hash = string(hash)

	var stateLen uint32
	if err := binary.Read(r, binary.LittleEndian, &stateLen); err != nil {
		return hdr, err
	}
	if stateLen > maxSnapshot {
		return hdr, curated.Errorf("recorder: snapshot too large (%d bytes)", stateLen)
	}
	hdr.state = make([]byte, stateLen)
	if _, err := io.ReadFull(r, hdr.state); err != nil {
		return hdr, err
	}

	return hdr, nil
}
