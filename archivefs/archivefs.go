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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nstfront/nstfront/curated"
)

// Sentinel error patterns.
const (
	NoImage           = "archivefs: no file with extension %s in %s"
	TooLarge          = "archivefs: %s is larger than %d bytes"
	DirectoryNotFound = "archivefs: cannot list directory: %v"
)

// MaxSize is the largest file that will be read.
const MaxSize = 32 * 1024 * 1024

// Entry is a single file.
type Entry struct {
	Name  string
	IsDir bool
}

func (e Entry) String() string {
	return e.Name
}

// List the regular files in directory in the order the filesystem returns
// them. Symbolic links are followed. Directories and other special files are
// not included.
func List(dir string) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, curated.Errorf(DirectoryNotFound, err)
	}
	defer f.Close()

	// reading from the file handle rather than with os.ReadDir() because we
	// do not want the list to be sorted
	dents, err := f.ReadDir(-1)
	if err != nil {
		return nil, curated.Errorf(DirectoryNotFound, err)
	}

	entries := make([]Entry, 0, len(dents))
	for _, d := range dents {
		if d.Name() == "." || d.Name() == ".." {
			continue
		}

		if d.Type()&os.ModeSymlink == os.ModeSymlink {
			info, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		} else if !d.Type().IsRegular() {
			continue
		}

		entries = append(entries, Entry{Name: d.Name()})
	}

	return entries, nil
}

// Open and return an io.ReadSeeker for filename. If filename is an archive
// the first entry with one of the extensions is opened. Extensions are not
// case sensitive.
//
// Returns the io.ReadSeeker, the size of the data and the name of the entry
// inside the archive. The name is the base of filename if it is not an
// archive.
func Open(filename string, extensions []string) (io.ReadSeeker, int, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, "", curated.Errorf("archivefs: %v", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, 0, "", curated.Errorf("archivefs: %v", err)
	}
	header = header[:n]

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, 0, "", curated.Errorf("archivefs: %v", err)
	}

	var data []byte
	var name string

	switch detect(header, filename) {
	case formatZIP:
		data, name, err = extractFromZIP(filename, extensions)
	case format7z:
		data, name, err = extractFrom7z(filename, extensions)
	case formatGzip:
		data, name, err = extractFromGzip(f, filename, extensions)
	case formatRAR:
		data, name, err = extractFromRAR(filename, extensions)
	default:
		name = filepath.Base(filename)
		data, err = limitedRead(f, name)
	}

	if err != nil {
		return nil, 0, "", err
	}

	return bytes.NewReader(data), len(data), name, nil
}

// limitedRead reads no more than MaxSize bytes from r.
func limitedRead(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, curated.Errorf("archivefs: %s: %v", name, err)
	}
	if len(data) > MaxSize {
		return nil, curated.Errorf(TooLarge, name, MaxSize)
	}
	return data, nil
}

// hasExtension returns true if name has one of the extensions.
func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func noImage(filename string, extensions []string) error {
	return curated.Errorf(NoImage, fmt.Sprintf("%v", extensions), filepath.Base(filename))
}
