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

package patch

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/nstfront/nstfront/curated"
)

// size of the checksum footer of a UPS patch. three CRC32 values: source,
// target and patch.
const upsFooterLen = 12

// upsDecode reads a UPS variable length integer from p. returns the value and
// the number of bytes consumed. a consumed value of zero indicates an error,
// including values larger than MaxSize.
func upsDecode(p []byte) (int, int) {
	v := 0
	shift := 1
	for i, b := range p {
		v += int(b&0x7f) * shift
		if v > MaxSize {
			return 0, 0
		}
		if b&0x80 == 0x80 {
			return v, i + 1
		}
		shift <<= 7
		v += shift
	}
	return 0, 0
}

func upsEncode(out []byte, v int) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(out, b|0x80)
		}
		out = append(out, b)
		v--
	}
}

func byteAt(data []byte, i int) byte {
	if i < len(data) {
		return data[i]
	}
	return 0
}

// ApplyUPS applies a UPS format patch to data. The checksum of data must match
// the source checksum recorded in the patch.
func ApplyUPS(data []byte, patch []byte) ([]byte, error) {
	if Detect(patch) != UPS {
		return nil, curated.Errorf(UnrecognisedFormat)
	}
	if len(patch) < len(upsMagic)+upsFooterLen {
		return nil, curated.Errorf(CorruptPatch, UPS, "too short")
	}

	footer := patch[len(patch)-upsFooterLen:]
	srcCRC := binary.LittleEndian.Uint32(footer[0:])
	dstCRC := binary.LittleEndian.Uint32(footer[4:])
	patchCRC := binary.LittleEndian.Uint32(footer[8:])

	if crc32.ChecksumIEEE(patch[:len(patch)-4]) != patchCRC {
		return nil, curated.Errorf(ChecksumMismatch, "patch")
	}
	if crc32.ChecksumIEEE(data) != srcCRC {
		return nil, curated.Errorf(ChecksumMismatch, "source")
	}

	p := patch[len(upsMagic) : len(patch)-upsFooterLen]

	srcLen, n := upsDecode(p)
	if n == 0 || srcLen != len(data) {
		return nil, curated.Errorf(CorruptPatch, UPS, "source size")
	}
	p = p[n:]

	dstLen, n := upsDecode(p)
	if n == 0 {
		return nil, curated.Errorf(CorruptPatch, UPS, "target size")
	}
	p = p[n:]

	out := make([]byte, dstLen)
	copy(out, data)

	pos := 0
	for len(p) > 0 {
		skip, n := upsDecode(p)
		if n == 0 {
			return nil, curated.Errorf(CorruptPatch, UPS, "hunk offset")
		}
		p = p[n:]
		if skip > len(out)-pos {
			return nil, curated.Errorf(CorruptPatch, UPS, "hunk offset")
		}
		pos += skip

		for {
			if len(p) == 0 {
				return nil, curated.Errorf(CorruptPatch, UPS, "unterminated hunk")
			}
			b := p[0]
			p = p[1:]
			if b == 0x00 {
				pos++
				break
			}
			if pos < len(out) {
				out[pos] ^= b
			}
			pos++
		}
	}

	if crc32.ChecksumIEEE(out) != dstCRC {
		return nil, curated.Errorf(ChecksumMismatch, "target")
	}

	return out, nil
}

// CreateUPS returns a UPS patch that transforms source into target.
func CreateUPS(source []byte, target []byte) []byte {
	out := append([]byte{}, upsMagic...)
	out = upsEncode(out, len(source))
	out = upsEncode(out, len(target))

	last := 0
	pos := 0
	for pos < len(target) {
		if byteAt(source, pos) == target[pos] {
			pos++
			continue
		}

		out = upsEncode(out, pos-last)
		for pos < len(target) {
			x := byteAt(source, pos) ^ target[pos]
			if x == 0 {
				break
			}
			out = append(out, x)
			pos++
		}
		out = append(out, 0x00)
		pos++
		last = pos
	}

	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(source))
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(target))
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(out))

	return out
}
