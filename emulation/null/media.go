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

package null

import (
	"github.com/nstfront/nstfront/emulation"
)

// media implements the emulation.Media interface for a loaded disk image.
type media struct {
	eng *Engine
}

func (m media) NumSides() int {
	return len(m.eng.img.sides)
}

func (m media) NumDisks() int {
	return (m.NumSides() + 1) / 2
}

func (m media) Insert(disk int, side int) error {
	if disk < 0 || side < 0 || side > 1 || disk*2+side >= m.NumSides() {
		return emulation.ResultInvalidParam
	}
	m.eng.disk = disk
	m.eng.side = side
	m.eng.inserted = true
	return nil
}

func (m media) Eject() error {
	m.eng.inserted = false
	return nil
}

func (m media) CanChangeSide() bool {
	if !m.eng.inserted {
		return false
	}
	return m.eng.disk*2+(1-m.eng.side) < m.NumSides()
}

func (m media) ChangeSide() error {
	if !m.CanChangeSide() {
		return emulation.ResultNotReady
	}
	m.eng.side = 1 - m.eng.side
	return nil
}

// CurrentDisk returns -1 if no disk is inserted.
func (m media) CurrentDisk() int {
	if !m.eng.inserted {
		return -1
	}
	return m.eng.disk
}

// CurrentSide returns -1 if no disk is inserted.
func (m media) CurrentSide() int {
	if !m.eng.inserted {
		return -1
	}
	return m.eng.side
}
