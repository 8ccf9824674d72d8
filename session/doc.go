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

// Package session owns the state of a play session and everything that
// happens to the emulation engine between selecting a cartridge image and
// returning to the selection screen.
//
// The Session type records what is loaded and where its files live. The
// Lifecycle type performs the operations that change the session: loading
// and unloading, powering and resetting the machine, quicksaves and disk
// system media changes. The Deferred type queues one-shot requests so that
// they can be performed at a safe point in the play loop.
//
// File names are derived from the name of the cartridge image. For an image
// named "/roms/Zelda.nes" and the default base path the files are:
//
//	~/.nestopia/save/Zelda.sav       battery RAM
//	~/.nestopia/save/Zelda.ups       disk system writes
//	~/.nestopia/state/Zelda_1.nst    quicksave slot 1
//	/roms/Zelda.ips                  soft patch
package session
