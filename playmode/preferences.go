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

package playmode

import (
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/prefs"
)

// Preferences for the play loop.
type Preferences struct {
	dsk *prefs.Disk

	// time to sleep, in milliseconds, when nothing is being played
	Idle prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const defaultIdle = 16

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	_ = p.Idle.Set(defaultIdle)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("controller.idle", &p.Idle)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Load play loop preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current play loop preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
