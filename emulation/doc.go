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

// Package emulation defines the boundary between the front end and the
// emulation engine. The engine itself (CPU, graphics and sound timing,
// cartridge decoding) lives behind the Engine interface. The front end only
// knows how to hand it an image, power it, run it a frame at a time and
// snapshot its state.
//
// The package also defines the small value types that cross the boundary:
// the Region of a loaded image, the frame buffers the engine writes to and
// the InputState it reads from.
package emulation
