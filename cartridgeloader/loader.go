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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nstfront/nstfront/archivefs"
	"github.com/nstfront/nstfront/curated"
)

// FileExtensions is the list of cartridge and disk image extensions
// recognised inside archives.
var FileExtensions = []string{".nes", ".fds", ".unf", ".unif"}

// Loader is used to load a cartridge image.
type Loader struct {
	// filename of the image on disk. this may be an archive
	Filename string

	// the name of the image. the same as the base of Filename unless the image
	// was found inside an archive
	Name string

	// expected hash of the loaded data. an empty string indicates that the
	// hash is unknown and need not be checked. after a successful Load() the
	// field will be the hash of the data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Name:     filepath.Base(filename),
	}
}

// ShortName returns the base of the filename with the final extension
// removed.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the image data. Calling Load() on a Loader that has already loaded is
// not an error and the data is not reloaded.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	r, _, name, err := archivefs.Open(cl.Filename, FileExtensions)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Data = data
	cl.Hash = hash
	cl.Name = name

	return nil
}
