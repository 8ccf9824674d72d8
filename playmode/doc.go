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

// Package playmode is the top level of the program. It owns the mode of the
// session and runs the polling loop that moves between the selection screen
// and play.
//
// The Controller is single threaded and must be run from the thread that
// initialised SDL. Each call to Tick() drains the waiting user input, runs at
// most one frame of emulation and then performs any deferred actions that
// were requested while handling the input. When no cartridge is being played
// the loop sleeps for the period in the controller.idle preference.
//
// A quit event (closing the window or the quit hotkey) is honoured in every
// mode. Before Run() returns the cartridge is unloaded, the gui is torn down
// and the input bindings and preferences are written to disk.
package playmode
