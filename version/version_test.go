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

package version

import (
	"testing"

	"github.com/nstfront/nstfront/test"
)

func TestInfo(t *testing.T) {
	inf := info("", map[string]string{})
	test.ExpectEquality(t, inf.Number, "local")
	test.ExpectFailure(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "nstfront local (no revision information)")

	inf = info("", map[string]string{
		"vcs":          "git",
		"vcs.revision": "abc123",
		"vcs.modified": "true",
	})
	test.ExpectEquality(t, inf.Number, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")

	inf = info("v1.2.0", map[string]string{
		"vcs":          "git",
		"vcs.revision": "abc123",
		"vcs.modified": "false",
	})
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.Revision, "abc123")
	test.ExpectEquality(t, inf.String(), "nstfront v1.2.0")
}
