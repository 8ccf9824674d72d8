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

package playmode

import (
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/recorder"
	"github.com/nstfront/nstfront/session"
)

// actions implements the session.Actions interface. The actions are only
// performed by Drain(), which the controller only calls in the playing mode.
type actions struct {
	pl *Controller
}

func (a actions) SaveState(slot int) {
	if _, err := a.pl.lc.SaveState(slot); err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}
	a.pl.note(notifications.NotifyStateSaved, "State Saved")
}

func (a actions) LoadState(slot int) {
	if _, err := a.pl.lc.LoadState(slot); err != nil {
		if curated.Is(err, session.StateNotFound) {
			a.pl.note(notifications.NotifyNoState, "No State to Load")
			return
		}
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	// the rewind history and any recording belong to the state we have just
	// left
	a.pl.stopMovie()
	if a.pl.rewind != nil {
		a.pl.rewind.Reset()
	}
	a.pl.gate.SetLimit(a.pl.sess.Region.FrameRate())

	a.pl.note(notifications.NotifyStateLoaded, "State Loaded")
}

func (a actions) LoadMovie() {
	a.pl.stopMovie()

	pth, err := a.pl.moviePath()
	if err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	plb, err := recorder.NewPlayback(pth)
	if err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	if err := plb.Restore(a.pl.lc.Engine(), a.pl.sess.Hash); err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	a.pl.lc.SyncRegion()
	a.pl.gate.SetLimit(a.pl.sess.Region.FrameRate())

	a.pl.plb = plb
	a.pl.note(notifications.NotifyMoviePlayback, "Movie playback")
}

func (a actions) SaveMovie() {
	a.pl.stopMovie()

	pth, err := a.pl.moviePath()
	if err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	rec, err := recorder.NewRecorder(pth, a.pl.lc.Engine(), a.pl.sess.Hash)
	if err != nil {
		a.pl.note(notifications.NotifyError, err.Error())
		return
	}

	a.pl.rec = rec
	a.pl.note(notifications.NotifyMovieRecord, "Movie recording")
}

func (a actions) StopMovie() {
	if a.pl.stopMovie() {
		a.pl.note(notifications.NotifyMovieStop, "Movie stopped")
	}
}

func (a actions) Pause() {
	a.pl.audio.Pause()
	a.pl.stopMovie()
	a.pl.sess.Playing = false
	a.pl.note(notifications.NotifyPause, "Paused")
}

// moviePath returns the movie filename for the loaded cartridge.
func (pl *Controller) moviePath() (string, error) {
	return paths.ResourcePath(paths.Movie, pl.sess.GameBaseName+".nsm")
}

// stopMovie ends any recording or playback. Returns true if there was a movie
// to stop.
func (pl *Controller) stopMovie() bool {
	stopped := false

	if pl.rec != nil {
		if err := pl.rec.End(); err != nil {
			logger.Log(logger.Allow, "controller", err)
		}
		pl.rec = nil
		stopped = true
	}

	if pl.plb != nil {
		logger.Logf(logger.Allow, "controller", "playback stopped at %s", pl.plb)
		pl.plb = nil
		stopped = true
	}

	return stopped
}
