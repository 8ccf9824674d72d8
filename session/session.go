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

	"github.com/nstfront/nstfront/emulation"
)

// Session is the state of the play session. There is one instance for the
// lifetime of the program and it is shared by reference.
type Session struct {
	Mode emulation.Mode

	// a cartridge image is resident in the engine
	Loaded bool

	// the engine is advancing frames. Playing is never true when Loaded is
	// false
	Playing bool

	Region emulation.Region

	// the file the cartridge image was loaded from and its hash
	Filename string
	Hash     string

	// derived from Filename by ConfigurePaths()
	GameBaseName string
	SavePath     string
	RootPath     string

	Pending Deferred
}

func (s *Session) String() string {
	if !s.Loaded {
		return fmt.Sprintf("%s: nothing loaded", s.Mode)
	}
	return fmt.Sprintf("%s: %s (%s)", s.Mode, s.GameBaseName, s.Region)
}
