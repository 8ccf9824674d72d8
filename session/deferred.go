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

package session

// Actions are performed when the Deferred queue is drained.
type Actions interface {
	SaveState(slot int)
	LoadState(slot int)
	LoadMovie()
	SaveMovie()
	StopMovie()
	Pause()
}

// Deferred is a set of one-shot requests. Requests can be made at any time
// and are performed when Drain() is called. A request made more than once
// before Drain() is performed only once.
type Deferred struct {
	saveState bool
	loadState bool
	movieLoad bool
	movieSave bool
	movieStop bool
	pause     bool
	quit      bool

	saveSlot int
	loadSlot int
}

// RequestSaveState requests a quicksave to the slot.
func (d *Deferred) RequestSaveState(slot int) {
	d.saveState = true
	d.saveSlot = slot
}

// RequestLoadState requests a quickload from the slot.
func (d *Deferred) RequestLoadState(slot int) {
	d.loadState = true
	d.loadSlot = slot
}

// RequestMovieLoad requests that movie playback begins.
func (d *Deferred) RequestMovieLoad() {
	d.movieLoad = true
}

// RequestMovieSave requests that movie recording begins.
func (d *Deferred) RequestMovieSave() {
	d.movieSave = true
}

// RequestMovieStop requests that movie recording or playback ends.
func (d *Deferred) RequestMovieStop() {
	d.movieStop = true
}

// RequestPause requests that play is paused.
func (d *Deferred) RequestPause() {
	d.pause = true
}

// RequestQuit requests that the program ends. The quit request is not
// drained with the other requests. It is checked by the play loop with
// QuitRequested().
func (d *Deferred) RequestQuit() {
	d.quit = true
}

// QuitRequested returns true if RequestQuit() has been called.
func (d *Deferred) QuitRequested() bool {
	return d.quit
}

// Pending returns true if any request other than quit is waiting.
func (d *Deferred) Pending() bool {
	return d.saveState || d.loadState || d.movieLoad || d.movieSave || d.movieStop || d.pause
}

// Clear forgets every waiting request except quit.
func (d *Deferred) Clear() {
	*d = Deferred{quit: d.quit}
}

// Drain performs every waiting request in the order: save state, load state,
// load movie, save movie, stop movie, pause. Each request is cleared
// immediately after it is performed. Returns the number of requests
// performed.
func (d *Deferred) Drain(a Actions) int {
	n := 0

	if d.saveState {
		a.SaveState(d.saveSlot)
		d.saveState = false
		n++
	}

	if d.loadState {
		a.LoadState(d.loadSlot)
		d.loadState = false
		n++
	}

	if d.movieLoad {
		a.LoadMovie()
		d.movieLoad = false
		n++
	}

	if d.movieSave {
		a.SaveMovie()
		d.movieSave = false
		n++
	}

	if d.movieStop {
		a.StopMovie()
		d.movieStop = false
		n++
	}

	if d.pause {
		a.Pause()
		d.pause = false
		n++
	}

	return n
}
