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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/test"
)

func TestResourcePath(t *testing.T) {
	base := t.TempDir()
	t.Setenv(paths.EnvHome, base)

	pth, err := paths.ResourcePath(paths.State, "Zelda_1.nst")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "state", "Zelda_1.nst"))

	// directory has been created but not the file
	info, err := os.Stat(filepath.Join(base, "state"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "preferences"))
}

func TestPrepare(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nst")
	t.Setenv(paths.EnvHome, base)

	test.DemandSuccess(t, paths.Prepare())
	for _, s := range []string{paths.Save, paths.State, paths.Movie} {
		_, err := os.Stat(filepath.Join(base, s))
		test.ExpectSuccess(t, err, s)
	}
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "Zelda")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_Zelda_"))

	fn = paths.UniqueFilename("wav", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_2"))
}
