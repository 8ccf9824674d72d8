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

package session

import (
	"errors"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
)

// Sentinel error patterns.
const (
	InvalidFile       = "session: invalid file: %v"
	OutOfMemory       = "session: out of memory: %v"
	CorruptFile       = "session: corrupt file: %v"
	UnsupportedMapper = "session: unsupported mapper: %v"
	MissingBios       = "session: missing bios: %v"
	UnknownLoadError  = "session: unknown error #%d"

	StateNotFound = "session: no state to load: %s"
	NotLoaded     = "session: nothing loaded"
	NoDiskSystem  = "session: not a disk system image"
)

// loadError converts an error returned by the engine during load into one of
// the load error patterns.
func loadError(err error) error {
	var r emulation.Result
	if !errors.As(err, &r) {
		return curated.Errorf(InvalidFile, err)
	}

	switch r {
	case emulation.ResultInvalidFile:
		return curated.Errorf(InvalidFile, r)
	case emulation.ResultOutOfMemory:
		return curated.Errorf(OutOfMemory, r)
	case emulation.ResultCorruptFile:
		return curated.Errorf(CorruptFile, r)
	case emulation.ResultUnsupportedMapper:
		return curated.Errorf(UnsupportedMapper, r)
	case emulation.ResultMissingBios:
		return curated.Errorf(MissingBios, r)
	}

	return curated.Errorf(UnknownLoadError, int(r))
}

// IsLoadError returns true if the error is one of the load error patterns.
func IsLoadError(err error) bool {
	for _, p := range []string{InvalidFile, OutOfMemory, CorruptFile, UnsupportedMapper, MissingBios, UnknownLoadError} {
		if curated.Is(err, p) {
			return true
		}
	}
	return false
}

// LoadErrorMessage returns the message that should be shown to the user for
// an error returned by Lifecycle.Load().
func LoadErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case curated.Is(err, InvalidFile):
		return "Invalid file"
	case curated.Is(err, OutOfMemory):
		return "Out of memory"
	case curated.Is(err, CorruptFile):
		return "Corrupt or missing file"
	case curated.Is(err, UnsupportedMapper):
		return "Unsupported mapper"
	case curated.Is(err, MissingBios):
		return "Disk system games require the disk system BIOS. It should be located at ~/.nestopia/disksys.rom"
	}
	return err.Error()
}
