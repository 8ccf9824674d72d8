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

// Package rewind keeps a history of emulation states so that play can be
// wound back to an earlier point.
//
// Snapshots are taken with the engine's own SaveState() function every few
// frames, as set by the rewind.frequency preference. The history is a
// circular array and when it is full the oldest snapshot is forgotten.
package rewind

import (
	"bytes"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
)

// Sentinel error patterns.
const (
	NothingToRewind = "rewind: nothing to rewind to"
)

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	eng   emulation.Engine
	Prefs *Preferences

	// circular array of snapshots
	entries [][]byte
	start   int
	count   int

	// frames since the last snapshot
	frames int

	// number of snapshots taken since Reset(). used by Timeline()
	taken int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(eng emulation.Engine) (*Rewind, error) {
	r := &Rewind{eng: eng}

	var err error
	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}

	r.allocate()

	return r, nil
}

// allocate the circular array according to the capacity preference. all
// existing snapshots are forgotten.
func (r *Rewind) allocate() {
	n := r.Prefs.Capacity.Int()
	if n < 1 {
		n = 1
	}
	r.entries = make([][]byte, n)
	r.Reset()
}

// Reset removes all snapshots. This should be called whenever a new
// cartridge is loaded.
func (r *Rewind) Reset() {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.start = 0
	r.count = 0
	r.frames = 0
	r.taken = 0
}

// Len returns the number of snapshots in the history.
func (r *Rewind) Len() int {
	return r.count
}

// RecordFrame should be called after every frame executed by the engine. A
// snapshot is taken every rewind.frequency frames.
func (r *Rewind) RecordFrame() error {
	if !r.Prefs.Enabled.Bool() {
		return nil
	}

	r.frames++
	if r.frames < r.Prefs.Frequency.Int() {
		return nil
	}
	r.frames = 0

	return r.snapshot()
}

func (r *Rewind) snapshot() error {
	var b bytes.Buffer
	if err := r.eng.SaveState(&b); err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	idx := (r.start + r.count) % len(r.entries)
	if r.count == len(r.entries) {
		// full. overwrite the oldest entry
		r.start = (r.start + 1) % len(r.entries)
	} else {
		r.count++
	}
	r.entries[idx] = b.Bytes()
	r.taken++

	return nil
}

// Rewind restores the most recent snapshot and removes it from the
// history. Returns the NothingToRewind error if the history is empty.
func (r *Rewind) Rewind() error {
	if r.count == 0 {
		return curated.Errorf(NothingToRewind)
	}

	idx := (r.start + r.count - 1) % len(r.entries)
	s := r.entries[idx]

	if err := r.eng.LoadState(bytes.NewReader(s)); err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	r.entries[idx] = nil
	r.count--
	r.frames = 0

	logger.Logf(logger.Allow, "rewind", "rewound (%d remaining)", r.count)

	return nil
}
