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

// Package userinput translates input from real hardware into something the
// front end can use. It can be thought of as a translation layer between the
// GUI implementation and the emulated controller ports, and between the GUI
// and the commands that control the session (quicksave, pause, etc.)
//
// Events are sent by the GUI implementation. The Bindings type decides what
// each event means and is stored on disk in TOML format so that the user can
// change it. The Controllers type keeps the state of the emulated pads and
// turns hotkeys into Commands.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. In particular, key names are the names
// returned by SDL_GetKeyName().
package userinput
