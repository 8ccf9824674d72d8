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

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
)

func (lc *Lifecycle) media() (emulation.Media, error) {
	if !lc.sess.Loaded {
		return nil, curated.Errorf(NotLoaded)
	}
	if !lc.eng.IsDisk() {
		return nil, curated.Errorf(NoDiskSystem)
	}
	return lc.eng.Media(), nil
}

// DiskInfo describes the disk currently inserted, in the form "Disk 1 Side
// A". An empty string is returned for images that are not disk images.
func (lc *Lifecycle) DiskInfo() string {
	m, err := lc.media()
	if err != nil {
		return ""
	}

	if m.CurrentDisk() < 0 {
		return "No disk inserted"
	}

	side := "A"
	if m.CurrentSide() == 1 {
		side = "B"
	}

	return fmt.Sprintf("Disk %d Side %s", m.CurrentDisk()+1, side)
}

// FlipSide turns the disk over if the disk has another side. It is not an
// error if the disk cannot be turned over.
func (lc *Lifecycle) FlipSide() error {
	m, err := lc.media()
	if err != nil {
		return err
	}

	if !m.CanChangeSide() {
		return nil
	}

	if err := m.ChangeSide(); err != nil {
		return curated.Errorf("session: flip side: %v", err)
	}

	logger.Log(logger.Allow, "session", lc.DiskInfo())

	return nil
}

// SwitchDisk ejects the current disk and inserts the next disk, side A. It
// does nothing if the image has only one disk.
func (lc *Lifecycle) SwitchDisk() error {
	m, err := lc.media()
	if err != nil {
		return err
	}

	if m.NumDisks() <= 1 {
		return nil
	}

	next := (m.CurrentDisk() + 1) % m.NumDisks()
	if err := m.Eject(); err != nil {
		return curated.Errorf("session: switch disk: %v", err)
	}
	if err := m.Insert(next, 0); err != nil {
		return curated.Errorf("session: switch disk: %v", err)
	}

	logger.Log(logger.Allow, "session", lc.DiskInfo())

	return nil
}
