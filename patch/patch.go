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
	"bytes"

	"github.com/nstfront/nstfront/curated"
)

// Sentinel error patterns.
const (
	UnrecognisedFormat = "patch: unrecognised format"
	CorruptPatch       = "patch: corrupt %s patch: %v"
	ChecksumMismatch   = "patch: %s checksum mismatch"
)

// MaxSize is the largest size of data, before or after patching, that a UPS
// patch may describe.
const MaxSize = 16 * 1024 * 1024

var (
	ipsMagic = []byte("PATCH")
	upsMagic = []byte("UPS1")
)

// Format of a patch.
type Format int

// List of valid Format values.
const (
	Unknown Format = iota
	IPS
	UPS
)

func (f Format) String() string {
	switch f {
	case IPS:
		return "IPS"
	case UPS:
		return "UPS"
	}
	return "unknown"
}

// Detect returns the format of the patch data.
func Detect(patch []byte) Format {
	switch {
	case bytes.HasPrefix(patch, ipsMagic):
		return IPS
	case bytes.HasPrefix(patch, upsMagic):
		return UPS
	}
	return Unknown
}

// Apply patch to data. The data slice is not modified, a new slice is returned.
func Apply(data []byte, patch []byte) ([]byte, error) {
	switch Detect(patch) {
	case IPS:
		return ApplyIPS(data, patch)
	case UPS:
		return ApplyUPS(data, patch)
	}
	return nil, curated.Errorf(UnrecognisedFormat)
}
