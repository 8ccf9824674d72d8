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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. A mode is a leading, non-flag argument that
// selects a different set of flags and arguments, in the manner of the go
// command.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PERFORMANCE", "VERSION")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the selected mode is returned by Mode(). If the first
// argument is not a listed mode the default mode, the first in the list, is
// selected and the argument is left for the next call to Parse(). The flags
// of the selected mode are added after a call to NewMode() and parsed by
// another call to Parse().
//
// Flags added with AddPref() are bound to a preference key. Only flags that
// are present on the command line are returned by Prefs(), in the form
// expected by prefs.PushCommandLineStack(). The values then take priority
// over those on disk when the preferences are loaded.
//
// Mode names are case insensitive.
package modalflag
