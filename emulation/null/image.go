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
	"hash/crc32"

	"github.com/nstfront/nstfront/emulation"
)

// images larger than this cannot be allocated.
const maxImageSize = 16 * 1024 * 1024

const (
	inesHeaderLen = 16
	trainerLen    = 512
	prgUnit       = 16384
	chrUnit       = 8192

	fdsHeaderLen = 16
	fdsSideLen   = 65500

	biosLen = 8192
)

var (
	inesMagic = []byte("NES\x1a")
	fdsMagic  = []byte("FDS\x1a")
	fdsRaw    = []byte("\x01*NINTENDO-HVC*")
)

// the mappers the engine will accept.
var supportedMappers = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 7: true, 9: true,
	10: true, 11: true, 13: true, 19: true, 21: true, 22: true, 23: true,
	24: true, 25: true, 26: true, 34: true, 66: true, 69: true, 71: true,
	79: true, 85: true, 206: true,
}

type image struct {
	disk bool

	mapper  int
	battery bool
	region  emulation.Region

	// cartridge data. PRG followed by CHR
	rom []byte

	// disk sides. each slice is fdsSideLen bytes long
	sides [][]byte

	// checksum of the image after patching. used to identify the image in
	// state files
	crc uint32
}

func parseImage(data []byte) (*image, error) {
	if len(data) > maxImageSize {
		return nil, emulation.ResultOutOfMemory
	}

	var img *image
	var err error

	switch {
	case bytes.HasPrefix(data, inesMagic):
		img, err = parseINES(data)
	case bytes.HasPrefix(data, fdsMagic):
		if len(data) < fdsHeaderLen {
			return nil, emulation.ResultCorruptFile
		}
		img, err = parseFDS(data[fdsHeaderLen:], int(data[4]))
	case bytes.HasPrefix(data, fdsRaw):
		if len(data)%fdsSideLen != 0 {
			return nil, emulation.ResultCorruptFile
		}
		img, err = parseFDS(data, len(data)/fdsSideLen)
	default:
		return nil, emulation.ResultInvalidFile
	}

	if err != nil {
		return nil, err
	}

	img.crc = crc32.ChecksumIEEE(data)
	return img, nil
}

func parseINES(data []byte) (*image, error) {
	if len(data) < inesHeaderLen {
		return nil, emulation.ResultCorruptFile
	}
	h := data[:inesHeaderLen]

	img := &image{
		battery: h[6]&0x02 == 0x02,
		mapper:  int(h[6]>>4) | int(h[7]&0xf0),
	}

	prg := int(h[4]) * prgUnit
	chr := int(h[5]) * chrUnit

	nes2 := h[7]&0x0c == 0x08
	if nes2 {
		img.mapper |= int(h[8]&0x0f) << 8
		if h[12]&0x03 == 0x01 {
			img.region = emulation.PAL
		}
	} else if h[9]&0x01 == 0x01 {
		img.region = emulation.PAL
	}

	if prg == 0 {
		return nil, emulation.ResultCorruptFile
	}

	offset := inesHeaderLen
	if h[6]&0x04 == 0x04 {
		offset += trainerLen
	}

	if len(data) < offset+prg+chr {
		return nil, emulation.ResultCorruptFile
	}

	if !supportedMappers[img.mapper] {
		return nil, emulation.ResultUnsupportedMapper
	}

	img.rom = make([]byte, prg+chr)
	copy(img.rom, data[offset:])

	return img, nil
}

func parseFDS(data []byte, numSides int) (*image, error) {
	if numSides == 0 || len(data) < numSides*fdsSideLen {
		return nil, emulation.ResultCorruptFile
	}

	img := &image{
		disk:   true,
		sides:  make([][]byte, numSides),
		region: emulation.NTSC,
	}

	for i := range img.sides {
		img.sides[i] = make([]byte, fdsSideLen)
		copy(img.sides[i], data[i*fdsSideLen:])
	}

	return img, nil
}

// flatten concatenates all disk sides.
func (img *image) flatten() []byte {
	d := make([]byte, 0, len(img.sides)*fdsSideLen)
	for _, s := range img.sides {
		d = append(d, s...)
	}
	return d
}

// unflatten replaces disk sides with the data created by flatten().
func (img *image) unflatten(d []byte) bool {
	if len(d) != len(img.sides)*fdsSideLen {
		return false
	}
	for i := range img.sides {
		copy(img.sides[i], d[i*fdsSideLen:])
	}
	return true
}
