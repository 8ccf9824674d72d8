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

package rewind

import (
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool

	// the maximum number of snapshots to keep before the earliest are
	// forgotten
	Capacity prefs.Int

	// how often a snapshot of the system is taken, in frames
	Frequency prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const defaultCapacity = 60
const defaultFrequency = 60

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{}

	_ = p.Enabled.Set(true)
	_ = p.Capacity.Set(defaultCapacity)
	_ = p.Frequency.Set(defaultFrequency)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.capacity", &p.Capacity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.frequency", &p.Frequency)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	p.Capacity.SetHookPost(func(_ prefs.Value) error {
		r.allocate()
		return nil
	})

	return p, nil
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
