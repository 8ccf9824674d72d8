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

// Package prefs stores user preferences on disk. Preference values are typed
// (Bool, String, Int) and are registered with a Disk instance under a key.
// Many Disk instances can share the same file, each one only touches the keys
// it has been told about and preserves the others when saving.
//
// The file format is one preference per line:
//
//	key :: value
//
// Lines are sorted by key and the file is preceded by a warning against
// editing by hand.
//
// Preference values can be overridden from the command line with the
// PushCommandLineStack() function. Values on the top of the stack are
// consumed by the next call to Disk.Load().
package prefs
