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
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "nstfront"

// number is set by the linker for release builds:
//
//	-ldflags "-X github.com/nstfront/nstfront/version.number=v1.0.0"
var number string

// Info describes the build of the program.
type Info struct {
	// the release number. "unreleased" if the program was built from a
	// repository without a release number and "local" if there is no vcs
	// information at all, which is the case with "go run"
	Number string

	// the vcs revision with a "+dirty" suffix if the source had been
	// modified
	Revision string

	// Release is true if the program was built with a release number
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Number, i.Revision)
}

// Get returns the Info for the running program.
var Get = sync.OnceValue(func() Info {
	return info(number, readSettings())
})

func readSettings() map[string]string {
	settings := make(map[string]string)
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// info builds the Info from the release number and the build settings.
func info(num string, settings map[string]string) Info {
	inf := Info{
		Number:   num,
		Revision: "no revision information",
		Release:  num != "",
	}

	if r := settings["vcs.revision"]; r != "" {
		inf.Revision = r
		if settings["vcs.modified"] == "true" {
			inf.Revision += "+dirty"
		}
	}

	if inf.Number == "" {
		if _, ok := settings["vcs"]; ok {
			inf.Number = "unreleased"
		} else {
			inf.Number = "local"
		}
	}

	return inf
}
