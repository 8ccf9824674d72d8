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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and carry the pattern they were
// created with. That pattern can be used to identify the error later, with the
// Is() and Has() functions.
//
// Packages that raise errors which the caller is expected to act upon should
// export the pattern as a string constant. For example:
//
//	const StateNotFound = "no state to load for slot %d"
//
//	...
//
//	if curated.Is(err, session.StateNotFound) {
//		...
//	}
//
// Wrapping a curated error inside another curated error is done with the %v
// verb. The Error() function will remove adjacent duplicate parts of the
// message chain so that "load: load: bad header" becomes "load: bad header".
package curated
