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

package rewind_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/emulation/null"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/rewind"
	"github.com/nstfront/nstfront/test"
)

func engine(t *testing.T) *null.Engine {
	t.Helper()

	h := make([]byte, 16)
	copy(h, "NES\x1a")
	h[4] = 1
	h[5] = 1
	img := append(h, make([]byte, 16384+8192)...)

	eng := null.NewEngine(nil)
	test.DemandSuccess(t, eng.Load(bytes.NewReader(img), emulation.FavorAuto, nil, nil))
	test.DemandSuccess(t, eng.Power(true))
	return eng
}

func setup(t *testing.T) (*rewind.Rewind, *null.Engine) {
	t.Helper()
	t.Setenv(paths.EnvHome, filepath.Join(t.TempDir(), "nst"))

	eng := engine(t)
	r, err := rewind.NewRewind(eng)
	test.DemandSuccess(t, err)
	return r, eng
}

func run(t *testing.T, eng *null.Engine, r *rewind.Rewind, frames int) {
	t.Helper()
	video := emulation.NewVideoOutput()
	input := &emulation.InputState{}
	for i := 0; i < frames; i++ {
		test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
		test.DemandSuccess(t, r.RecordFrame())
	}
}

func TestRewind(t *testing.T) {
	r, eng := setup(t)
	test.DemandSuccess(t, r.Prefs.Frequency.Set(10))

	test.ExpectSuccess(t, curated.Is(r.Rewind(), rewind.NothingToRewind))

	run(t, eng, r, 25)
	test.ExpectEquality(t, r.Len(), 2)
	test.ExpectEquality(t, eng.Frame(), uint64(25))

	test.DemandSuccess(t, r.Rewind())
	test.ExpectEquality(t, eng.Frame(), uint64(20))
	test.ExpectEquality(t, r.Len(), 1)

	test.DemandSuccess(t, r.Rewind())
	test.ExpectEquality(t, eng.Frame(), uint64(10))
	test.ExpectEquality(t, r.Len(), 0)

	test.ExpectSuccess(t, curated.Is(r.Rewind(), rewind.NothingToRewind))
}

func TestCapacity(t *testing.T) {
	r, eng := setup(t)
	test.DemandSuccess(t, r.Prefs.Frequency.Set(1))
	test.DemandSuccess(t, r.Prefs.Capacity.Set(3))

	run(t, eng, r, 10)
	test.ExpectEquality(t, r.Len(), 3)

	tl := r.GetTimeline()
	test.ExpectEquality(t, tl.Available, 3)
	test.ExpectEquality(t, tl.Taken, 10)
	test.ExpectEquality(t, tl.String(), "3 snapshots (3 frames)")

	// oldest entries have been forgotten
	test.DemandSuccess(t, r.Rewind())
	test.DemandSuccess(t, r.Rewind())
	test.DemandSuccess(t, r.Rewind())
	test.ExpectEquality(t, eng.Frame(), uint64(8))
	test.ExpectFailure(t, r.Rewind())
}

func TestDisabled(t *testing.T) {
	r, eng := setup(t)
	test.DemandSuccess(t, r.Prefs.Frequency.Set(1))
	test.DemandSuccess(t, r.Prefs.Enabled.Set(false))

	run(t, eng, r, 10)
	test.ExpectEquality(t, r.Len(), 0)

	test.DemandSuccess(t, r.Prefs.Enabled.Set(true))
	run(t, eng, r, 2)
	test.ExpectEquality(t, r.Len(), 2)

	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
}
