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

// Package recorder handles movie files. A movie is a snapshot of the
// emulation state followed by the input to the controller ports for every
// frame after the snapshot.
//
// Recording is started with NewRecorder() and continues with a call to
// RecordFrame() every frame. End() must be called to complete the file.
//
// Playback is started with NewPlayback(). The snapshot is restored with
// Restore() and the input for each frame is retrieved with NextFrame().
//
// Movie files are zstd compressed. The uncompressed format is:
//
//	u8[4]   NSMV
//	u8      version
//	u8      region
//	u8      length of cartridge hash
//	...     cartridge hash
//	u32     length of snapshot
//	...     snapshot
//
// followed by one input record per frame, each emulation.InputSize bytes
// long.
package recorder
