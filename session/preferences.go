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
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/prefs"
)

// Preferences for the session.
type Preferences struct {
	dsk *prefs.Disk

	// look for a soft patch beside the cartridge image
	SoftPatch prefs.Bool

	// NTSC, PAL or auto
	FavoredSystem prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("session.softpatch", &p.SoftPatch)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("session.favoredsystem", &p.FavoredSystem)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	_ = p.SoftPatch.Set(true)
	_ = p.FavoredSystem.Set("auto")
}

// Favored returns the FavoredSystem preference as an emulation type.
func (p *Preferences) Favored() emulation.FavoredSystem {
	return emulation.ParseFavoredSystem(p.FavoredSystem.String())
}

// Load session preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current session preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
