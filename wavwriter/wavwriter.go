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

// Package wavwriter allows writing of audio data to disk as a WAV file. Audio
// is streamed to the file as it arrives. The file is not valid until End()
// has been called.
package wavwriter

import (
	"os"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// wav format code for uncompressed PCM.
const formatPCM = 1

// WavWriter writes the audio of every frame to a WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder

	// sample rate of the file. this is set by the first call to Write()
	sampleRate int

	buf *audio.IntBuffer

	samples int
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is not created until the first audio is written.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
	}
	return aw, nil
}

// Write the samples in the audio output. The sample rate must not change
// between calls.
func (aw *WavWriter) Write(out *emulation.AudioOutput) error {
	if out == nil || len(out.Samples) == 0 {
		return nil
	}

	if aw.enc == nil {
		f, err := os.Create(aw.filename)
		if err != nil {
			return curated.Errorf("wavwriter: %v", err)
		}
		aw.f = f
		aw.sampleRate = out.SampleRate
		aw.enc = wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, formatPCM)
		aw.buf = &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  aw.sampleRate,
			},
			SourceBitDepth: bitDepth,
		}
		logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	}

	if out.SampleRate != aw.sampleRate {
		return curated.Errorf("wavwriter: sample rate changed from %d to %d", aw.sampleRate, out.SampleRate)
	}

	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range out.Samples {
		aw.buf.Data = append(aw.buf.Data, int(s))
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.samples += len(out.Samples)

	return nil
}

// Samples returns the number of samples written so far.
func (aw *WavWriter) Samples() int {
	return aw.samples
}

// End completes the WAV file. If no audio was ever written then no file is
// created.
func (aw *WavWriter) End() (rerr error) {
	if aw.enc == nil {
		return nil
	}

	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
		aw.enc = nil
	}()

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", aw.samples, aw.filename)

	return nil
}
