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

// Package paths prepares paths to the files the front end keeps between
// sessions: preferences, battery saves, quicksaves and movies.
//
// All paths are rooted in the nst directory. This is ".nestopia" in the user's
// home directory unless the NSTFRONT_HOME environment variable names another
// directory. For example, on a Linux system:
//
//	p, err := paths.ResourcePath("state", "Zelda_1.nst")
//
// returns:
//
//	/home/user/.nestopia/state/Zelda_1.nst
//
// Directories are created as required but files are never touched.
package paths
