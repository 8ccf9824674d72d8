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

package emulation

import "fmt"

// Result is the error type returned by the engine.
type Result int

// List of engine results. Values mirror the result codes of the engines this
// front end is intended for. Only negative values are errors.
const (
	ResultOK                Result = 0
	ResultNop               Result = 1
	ResultGeneric           Result = -1
	ResultOutOfMemory       Result = -2
	ResultCorruptFile       Result = -3
	ResultInvalidFile       Result = -4
	ResultInvalidParam      Result = -5
	ResultNotReady          Result = -6
	ResultUnsupported       Result = -7
	ResultUnsupportedMapper Result = -8
	ResultMissingBios       Result = -9
	ResultInvalidCRC        Result = -10
)

// Failed returns true if the result is an error.
func (r Result) Failed() bool {
	return r < 0
}

func (r Result) Error() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultNop:
		return "no operation"
	case ResultGeneric:
		return "generic error"
	case ResultOutOfMemory:
		return "out of memory"
	case ResultCorruptFile:
		return "corrupt file"
	case ResultInvalidFile:
		return "invalid file"
	case ResultInvalidParam:
		return "invalid parameter"
	case ResultNotReady:
		return "not ready"
	case ResultUnsupported:
		return "unsupported"
	case ResultUnsupportedMapper:
		return "unsupported mapper"
	case ResultMissingBios:
		return "missing bios"
	case ResultInvalidCRC:
		return "invalid crc"
	}
	return fmt.Sprintf("result %d", int(r))
}
