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
	"fmt"
	"io"
	"os"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"

	"github.com/klauspost/compress/zstd"
)

// Playback reads a movie file.
type Playback struct {
	filename string

	Region emulation.Region
	Hash   string

	state  []byte
	frames [][]byte
	pos    int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The entire movie is read into memory.
func NewPlayback(filename string) (*Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer zr.Close()

	hdr, err := readHeader(zr)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	plb := &Playback{
		filename: filename,
		Region:   hdr.region,
		Hash:     hdr.hash,
		state:    hdr.state,
	}

	for {
		b := make([]byte, emulation.InputSize)
		_, err := io.ReadFull(zr, b)
		if err == io.EOF {
			break
		}
		if err != nil {
			// a partial record at the end of the file is the result of a
			// recording that was not ended properly. the complete frames
			// before it are still good
			if err == io.ErrUnexpectedEOF {
				logger.Logf(logger.Allow, "recorder", "%s: truncated after %d frames", filename, len(plb.frames))
				break
			}
			return nil, curated.Errorf("playback: %v", err)
		}
		plb.frames = append(plb.frames, b)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	if len(plb.frames) == 0 {
		return fmt.Sprintf("%s: empty", plb.filename)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.pos, len(plb.frames), 100*(float64(plb.pos)/float64(len(plb.frames))))
}

// Frames returns the number of frames in the movie.
func (plb *Playback) Frames() int {
	return len(plb.frames)
}

// Restore checks that the movie belongs to the cartridge and region of the
// engine and restores the snapshot. Playback restarts from the first frame.
func (plb *Playback) Restore(eng emulation.Engine, hash string) error {
	if hash != plb.Hash {
		return curated.Errorf(WrongCartridge)
	}
	if eng.Region() != plb.Region {
		return curated.Errorf(WrongRegion, plb.Region)
	}
	if err := eng.LoadState(bytes.NewReader(plb.state)); err != nil {
		return curated.Errorf("playback: %v", err)
	}
	plb.pos = 0
	return nil
}

// NextFrame sets input to the recorded input for the next frame. Returns
// false if there are no more frames, in which case input is not changed.
func (plb *Playback) NextFrame(input *emulation.InputState) (bool, error) {
	if plb.pos >= len(plb.frames) {
		return false, nil
	}
	if err := input.UnmarshalBinary(plb.frames[plb.pos]); err != nil {
		return false, curated.Errorf("playback: frame %d: %v", plb.pos, err)
	}
	plb.pos++
	return true, nil
}

// Ended returns true if every frame has been played.
func (plb *Playback) Ended() bool {
	return plb.pos >= len(plb.frames)
}
