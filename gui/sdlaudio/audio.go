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

// Package sdlaudio implements the gui.Audio interface using SDL.
package sdlaudio

import (
	"encoding/binary"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/gui"
	"github.com/nstfront/nstfront/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. unfortunately, there's no
// special way (that I know of) that can tells us what the ideal value is. we
// don't want it to be long because we can introduce unnecessary lag between
// the audio and video signal; by the same token we don't want it too short
// because the device will run dry between frames.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 1024

// if more than this many frames of audio are queued then the queue is
// cleared. this can happen when the emulation is running ahead of the audio
// device and without this the lag would grow without limit
const maxQueuedFrames = 6

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the number of bytes in one frame of audio
	frameBytes int

	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// audio device is not opened until Init() is called.
func NewAudio() *Audio {
	return &Audio{}
}

// Init implements the gui.Audio interface.
func (aud *Audio) Init(params gui.AudioParams) error {
	aud.Deinit()

	spec := &sdl.AudioSpec{
		Freq:     int32(params.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec
	aud.frameBytes = params.SampleRate / params.Region.FrameRate() * 2

	sdl.PauseAudioDevice(aud.id, false)

	logger.Logf(logger.Allow, "sdlaudio", "device opened (%dHz)", actualSpec.Freq)

	return nil
}

// Deinit implements the gui.Audio interface.
func (aud *Audio) Deinit() {
	if aud.id == 0 {
		return
	}
	sdl.CloseAudioDevice(aud.id)
	aud.id = 0
}

// Play implements the gui.Audio interface.
func (aud *Audio) Play(samples []int16) {
	if aud.id == 0 || len(samples) == 0 {
		return
	}

	if int(sdl.GetQueuedAudioSize(aud.id)) > aud.frameBytes*maxQueuedFrames {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		logger.Log(logger.Allow, "sdlaudio", err)
	}
}

// Pause implements the gui.Audio interface. The device is paused and any
// queued audio is discarded.
func (aud *Audio) Pause() {
	if aud.id == 0 {
		return
	}
	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
}
