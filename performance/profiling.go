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

package performance

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// Profile specifies which profiling (if any) is to be performed.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileBlock
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileBlock == ProfileBlock {
		s = append(s, "block")
	}
	return strings.Join(s, ",")
}

// ParseProfileString converts a comma separated list of profile types to a
// Profile value. The empty string and "none" are ProfileNone.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, t := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "block":
			p |= ProfileBlock
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type: %s", t)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the profiling described by the
// Profile argument. Profile files are written to the directory dir.
//
// The profile package can only run one profile at a time so the profiles are
// run one after the other, each with a fresh call to run(). Callers that want
// several profiles of the same work should bear this in mind.
func RunProfiler(p Profile, dir string, run func() error) error {
	if p == ProfileNone {
		return run()
	}

	var modes []func(*profile.Profile)
	if p&ProfileCPU == ProfileCPU {
		modes = append(modes, profile.CPUProfile)
	}
	if p&ProfileMem == ProfileMem {
		modes = append(modes, profile.MemProfile)
	}
	if p&ProfileBlock == ProfileBlock {
		modes = append(modes, profile.BlockProfile)
	}

	for _, m := range modes {
		stopper := profile.Start(m, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
		err := run()
		stopper.Stop()
		if err != nil {
			return err
		}
	}

	return nil
}
