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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/session"
)

// sentinal error returned by the frame loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the engine using the supplied cartridge image.
//
// Emulation will run for the specified duration with no frame rate limiting
// and no display. Profiles are written to the current directory as described
// by the Profile argument.
func Check(output io.Writer, p Profile, lc *session.Lifecycle, filename string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = lc.Load(filename)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer lc.Unload()

	eng := lc.Engine()
	video := emulation.NewVideoOutput()
	audio := &emulation.AudioOutput{}
	input := &emulation.InputState{}

	var numFrames int

	runner := func() error {
		numFrames = 0
		end := time.Now().Add(dur)
		for {
			if err := eng.ExecuteFrame(video, audio, input); err != nil {
				return err
			}
			numFrames++
			if time.Now().After(end) {
				return timedOut
			}
		}
	}

	err = RunProfiler(p, ".", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(lc.Session().Region, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
