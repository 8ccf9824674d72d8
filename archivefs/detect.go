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

package archivefs

import (
	"bytes"
	"path/filepath"
	"strings"
)

type format int

const (
	formatRaw format = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
)

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte("Rar!")
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP", ".7Z", ".GZ", ".TGZ", ".RAR"}

func detect(header []byte, filename string) format {
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	}

	// short or damaged files are identified by extension. extraction will
	// fail with a more useful error than the engine would give
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		return formatZIP
	case ".7Z":
		return format7z
	case ".GZ", ".TGZ":
		return formatGzip
	case ".RAR":
		return formatRAR
	}

	return formatRaw
}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, a := range ArchiveExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the extension of a supported archive type from the
// end of the string. A ".tar" extension preceding ".gz" is also removed.
func TrimArchiveExt(s string) string {
	if !IsArchive(s) {
		return s
	}
	s = strings.TrimSuffix(s, filepath.Ext(s))
	if strings.ToUpper(filepath.Ext(s)) == ".TAR" {
		s = strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
