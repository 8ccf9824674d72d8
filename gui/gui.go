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

// Package gui defines the interfaces between the play loop and the
// implementation of the user interface. The play loop knows nothing about the
// windowing system in use.
//
// The sdlplay, sdlaudio and sdlselect packages are implementations using SDL.
package gui

import (
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/userinput"
)

// Video is the surface the emulation draws on. The surface exists only while
// a cartridge is being played.
type Video interface {
	CreateSurface(region emulation.Region) error
	DestroySurface()

	// LockFrame returns the pixel buffer for the next frame. The buffer is
	// owned by the Video implementation and must not be used after
	// UnlockFrame() has been called. UnlockFrame() presents the frame.
	LockFrame() (emulation.VideoOutput, error)
	UnlockFrame()
}

// AudioParams describe the audio that will be sent to the Audio
// implementation.
type AudioParams struct {
	SampleRate int
	Region     emulation.Region
}

// Audio plays the sound produced by the emulation. The device exists only
// between calls to Init() and Deinit().
type Audio interface {
	Init(params AudioParams) error
	Deinit()
	Play(samples []int16)
	Pause()
}

// Events is the source of user input.
type Events interface {
	// Poll returns the next waiting event. It never blocks. The second
	// return value is false if there are no more events.
	Poll() (userinput.Event, bool)
}
