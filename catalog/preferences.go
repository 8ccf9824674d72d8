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

package catalog

import (
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/prefs"
)

// Preferences for the catalog.
type Preferences struct {
	dsk *prefs.Disk

	// the directory scanned for cartridge images
	RomDir prefs.String

	// sort entries by name rather than using the order returned by the
	// filesystem
	Sorted prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// DefaultRomDir is the ROM directory used when there is no preference.
const DefaultRomDir = "../ROMs/"

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

	err = p.dsk.Add("catalog.romdir", &p.RomDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("catalog.sorted", &p.Sorted)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all catalog preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.RomDir.Set(DefaultRomDir)
	_ = p.Sorted.Set(false)
}

// NewCatalog returns a catalog configured by the preferences.
func (p *Preferences) NewCatalog() *Catalog {
	return NewCatalog(p.RomDir.String(), p.Sorted.Bool())
}

// Load catalog preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current catalog preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
