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
	"github.com/nstfront/nstfront/curated"
)

// the offset value that marks the end of an IPS patch. the bytes spell "EOF"
const ipsEOF = 0x454f46

// ApplyIPS applies an IPS format patch to data. Records that write beyond the
// end of data extend the result.
func ApplyIPS(data []byte, patch []byte) ([]byte, error) {
	if Detect(patch) != IPS {
		return nil, curated.Errorf(UnrecognisedFormat)
	}

	out := make([]byte, len(data))
	copy(out, data)

	p := patch[len(ipsMagic):]
	for {
		if len(p) < 3 {
			return nil, curated.Errorf(CorruptPatch, IPS, "missing EOF marker")
		}

		offset := int(p[0])<<16 | int(p[1])<<8 | int(p[2])
		p = p[3:]
		if offset == ipsEOF {
			break
		}

		if len(p) < 2 {
			return nil, curated.Errorf(CorruptPatch, IPS, "truncated record")
		}
		size := int(p[0])<<8 | int(p[1])
		p = p[2:]

		var chunk []byte
		if size == 0 {
			// run length encoded record
			if len(p) < 3 {
				return nil, curated.Errorf(CorruptPatch, IPS, "truncated RLE record")
			}
			size = int(p[0])<<8 | int(p[1])
			chunk = make([]byte, size)
			for i := range chunk {
				chunk[i] = p[2]
			}
			p = p[3:]
		} else {
			if len(p) < size {
				return nil, curated.Errorf(CorruptPatch, IPS, "truncated record")
			}
			chunk = p[:size]
			p = p[size:]
		}

		if end := offset + len(chunk); end > len(out) {
			out = append(out, make([]byte, end-len(out))...)
		}
		copy(out[offset:], chunk)
	}

	// optional truncation extension
	if len(p) >= 3 {
		trunc := int(p[0])<<16 | int(p[1])<<8 | int(p[2])
		if trunc < len(out) {
			out = out[:trunc]
		}
	}

	return out, nil
}
