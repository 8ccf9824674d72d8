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

// Package notifications allow communication from the session to the user.
// Notices are short messages describing something that has happened, such as
// a quicksave or a change of disk.
//
// How a notification is presented is up to the implementation of the Notify
// interface. The Log implementation writes to the central logger and to an
// io.Writer (usually stderr).
package notifications
