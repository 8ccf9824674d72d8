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

// Package null implements the emulation.Engine interface without emulating
// anything. It understands enough of the iNES and FDS image formats to
// validate an image the way a real engine would, and it keeps a small amount
// of machine state (RAM, battery RAM, disk contents) that changes
// deterministically from frame to frame and in response to input.
//
// This is sufficient for the front end to be run and tested without a real
// emulation core. Loading, battery saves, soft patches, disk writes, quicksaves,
// movies and rewind all behave as they would with a real engine.
package null
