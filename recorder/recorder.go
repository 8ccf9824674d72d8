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

package recorder

import (
	"bytes"
	"io"
	"os"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"

	"github.com/klauspost/compress/zstd"
)

// Recorder writes a movie file.
type Recorder struct {
	filename string
	closer   io.Closer
	w        *zstd.Encoder

	frames int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The current state of the engine is saved as the movie's snapshot.
func NewRecorder(filename string, eng emulation.Engine, hash string) (*Recorder, error) {
	var state bytes.Buffer
	if err := eng.SaveState(&state); err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	w, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	hdr := header{
		region: eng.Region(),
		hash:   hash,
		state:  state.Bytes(),
	}

	if err := writeHeader(w, hdr); err != nil {
		w.Close()
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	if err := w.Flush(); err != nil {
		w.Close()
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", filename)

	return &Recorder{
		filename: filename,
		closer:   f,
		w:        w,
	}, nil
}

func (rec *Recorder) String() string {
	return rec.filename
}

// Frames returns the number of frames recorded so far.
func (rec *Recorder) Frames() int {
	return rec.frames
}

// RecordFrame adds the input for one frame to the movie.
func (rec *Recorder) RecordFrame(input *emulation.InputState) error {
	b, err := input.MarshalBinary()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	if _, err := rec.w.Write(b); err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	rec.frames++
	if rec.frames%flushEvery == 0 {
		if err := rec.w.Flush(); err != nil {
			return curated.Errorf("recorder: %v", err)
		}
	}

	return nil
}

// End the recording and close the file.
func (rec *Recorder) End() error {
	if err := rec.w.Close(); err != nil {
		rec.closer.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if err := rec.closer.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recorded %d frames to %s", rec.frames, rec.filename)

	return nil
}
