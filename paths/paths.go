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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EnvHome is the name of the environment variable that overrides the base
// path.
const EnvHome = "NSTFRONT_HOME"

// the base directory in the user's home directory.
const baseResourcePath = ".nestopia"

// Sub-directories of the base path.
const (
	Save  = "save"
	State = "state"
	Movie = "movie"
	Wav   = "wav"
)

// BasePath returns the root of all resource paths. It does not create the
// directory.
func BasePath() (string, error) {
	if h := strings.TrimSpace(os.Getenv(EnvHome)); h != "" {
		return h, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(home, baseResourcePath), nil
}

// ResourcePath returns the path to file in the sub-directory of the base
// path. The sub-directory is created if necessary. Either argument can be
// empty.
func ResourcePath(subPth string, file string) (string, error) {
	b, err := BasePath()
	if err != nil {
		return "", err
	}

	d := filepath.Join(b, subPth)
	if err := os.MkdirAll(d, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(d, file), nil
}

// Prepare creates the base path and the standard sub-directories.
func Prepare() error {
	for _, s := range []string{"", Save, State, Movie} {
		if _, err := ResourcePath(s, ""); err != nil {
			return err
		}
	}
	return nil
}

// UniqueFilename creates a filename that should not collide with any existing
// file, assuming a functioning clock. The file does not need to exist.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// or if name is empty:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	timestamp := time.Now().Format("20060102_150405")

	if c := strings.TrimSpace(name); c != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
