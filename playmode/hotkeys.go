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
	"fmt"

	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/userinput"
)

// command performs a hotkey command. Commands that change the state of the
// emulation in a way that must not happen mid-frame are deferred until the
// queue is next drained.
func (pl *Controller) command(cmd userinput.Command) {
	slot := pl.controllers.Slot()

	switch cmd {
	case userinput.CommandQuit:
		pl.sess.Pending.RequestQuit()

	case userinput.CommandQuickSave:
		pl.sess.Pending.RequestSaveState(slot)

	case userinput.CommandQuickLoad:
		pl.sess.Pending.RequestLoadState(slot)

	case userinput.CommandSelectSlot:
		pl.note(notifications.NotifySlot, fmt.Sprintf("Slot %d", slot))

	case userinput.CommandMovieSave:
		pl.sess.Pending.RequestMovieSave()

	case userinput.CommandMovieLoad:
		pl.sess.Pending.RequestMovieLoad()

	case userinput.CommandMovieStop:
		pl.sess.Pending.RequestMovieStop()

	case userinput.CommandPause:
		if pl.sess.Playing {
			pl.sess.Pending.RequestPause()
		} else {
			pl.resume()
		}

	case userinput.CommandSoftReset:
		pl.reset(false)

	case userinput.CommandHardReset:
		pl.reset(true)

	case userinput.CommandFlipSide:
		pl.media(pl.lc.FlipSide)

	case userinput.CommandSwitchDisk:
		pl.media(pl.lc.SwitchDisk)

	case userinput.CommandRewind:
		pl.doRewind()
	}
}

// resume play after a pause.
func (pl *Controller) resume() {
	if !pl.sess.Loaded {
		return
	}

	pl.startAudio()

	// the limiter would otherwise try to catch up on the frames missed while
	// paused
	pl.gate.SetLimit(pl.sess.Region.FrameRate())

	pl.sess.Playing = true
	pl.note(notifications.NotifyResume, "Resumed")
}

func (pl *Controller) reset(hard bool) {
	// a movie does not survive a reset
	pl.stopMovie()

	if err := pl.lc.ResetMachine(hard); err != nil {
		pl.note(notifications.NotifyError, err.Error())
		return
	}

	if pl.rewind != nil {
		pl.rewind.Reset()
	}

	if hard {
		pl.note(notifications.NotifyReset, "Hard reset")
	} else {
		pl.note(notifications.NotifyReset, "Soft reset")
	}
}

// media performs a disk system operation and reports the new disk and side.
func (pl *Controller) media(op func() error) {
	if err := op(); err != nil {
		logger.Log(logger.Allow, "controller", err)
		pl.note(notifications.NotifyError, err.Error())
		return
	}
	pl.note(notifications.NotifyDisk, pl.lc.DiskInfo())
}
