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

// Package logger is the central log for the application. Entries are tagged
// and kept in a ring of limited size. An entry that is identical to the one
// before it is not added again, instead the earlier entry is marked as having
// been repeated.
//
// Logging requests are made with a Permission. The Allow value can be used
// when the entry should always be made. Other implementations can restrict
// logging, for example when the play loop is rewinding and would otherwise
// repeat messages that the user has already seen.
//
// The package level functions operate on the central logger. A separate
// instance can be created with NewLogger(), which is useful for testing.
package logger
