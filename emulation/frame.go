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

package emulation

// Dimensions of the video output.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// BytesPerPixel of the video output. Pixels are RGBA8888.
const BytesPerPixel = 4

// VideoOutput is a locked pixel buffer. Pitch is the number of bytes in a
// single row and may be larger than ScreenWidth*BytesPerPixel.
type VideoOutput struct {
	Pixels []byte
	Pitch  int
}

// NewVideoOutput allocates a pixel buffer with the minimum pitch. Useful for
// video implementations that don't have a surface to lock.
func NewVideoOutput() VideoOutput {
	return VideoOutput{
		Pixels: make([]byte, ScreenWidth*ScreenHeight*BytesPerPixel),
		Pitch:  ScreenWidth * BytesPerPixel,
	}
}

// AudioOutput is filled with samples by the engine. Samples are mono signed
// 16bit. The engine resizes the Samples slice to the number of samples
// produced for the frame.
type AudioOutput struct {
	SampleRate int
	Samples    []int16
}

// Valid returns false if the buffer cannot hold a frame of the given pitch.
func (v VideoOutput) Valid() bool {
	return v.Pitch >= ScreenWidth*BytesPerPixel && len(v.Pixels) >= v.Pitch*ScreenHeight
}
