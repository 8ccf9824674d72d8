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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/paths"
)

// BaseName returns the filename without any leading directories and without
// the final extension. A name beginning with a dot and with no other dot is
// returned unchanged.
func BaseName(filename string) string {
	b := filepath.Base(filename)
	if i := strings.LastIndexByte(b, '.'); i > 0 {
		b = b[:i]
	}
	return b
}

// ConfigurePaths derives the game base name and the save paths from the
// filename of the cartridge image. It must be called before every load.
func (lc *Lifecycle) ConfigurePaths(filename string) error {
	lc.sess.Filename = filename
	lc.sess.GameBaseName = BaseName(filename)

	pth, err := paths.ResourcePath(paths.Save, lc.sess.GameBaseName)
	if err != nil {
		return err
	}

	lc.sess.RootPath = pth
	lc.sess.SavePath = fmt.Sprintf("%s.sav", pth)

	return nil
}

// FindSoftPatch looks for a patch file named baseName with the extension
// ".ips" and then ".ups". The first that exists is returned. If soft
// patching is disabled in the preferences then no patch is ever found.
func (lc *Lifecycle) FindSoftPatch(baseName string) (string, bool) {
	if !lc.Prefs.SoftPatch.Bool() {
		return "", false
	}

	for _, ext := range []string{".ips", ".ups"} {
		p := fmt.Sprintf("%s%s", baseName, ext)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			logger.Logf(logger.Allow, "session", "soft patch: %s", p)
			return p, true
		}
	}

	return "", false
}

// QuickSavePath returns the path to the state file for the quicksave slot.
func (lc *Lifecycle) QuickSavePath(slot int) (string, error) {
	return paths.ResourcePath(paths.State, fmt.Sprintf("%s_%d.nst", lc.sess.GameBaseName, slot))
}

// softPatchBase is the path of the cartridge image with the final extension
// removed. Soft patches are found beside the image.
func softPatchBase(filename string) string {
	return filepath.Join(filepath.Dir(filename), BaseName(filename))
}
