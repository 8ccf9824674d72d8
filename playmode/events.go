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
	"path/filepath"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/gui"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/selectscreen"
	"github.com/nstfront/nstfront/session"
	"github.com/nstfront/nstfront/userinput"
	"github.com/nstfront/nstfront/wavwriter"
)

// selecting handles an event while the selection screen is showing.
func (pl *Controller) selecting(ev userinput.Event) error {
	if pl.controllers.Bindings().Menu(ev) == userinput.MenuBack {
		pl.sess.Pending.RequestQuit()
		return nil
	}

	pl.sess.Mode = pl.screen.HandleEvent(ev)
	if pl.sess.Mode == emulation.ModeSelected {
		pl.selected()
	}

	return nil
}

// selected loads the highlighted entry in the catalog. The selected mode is
// left before this function returns, either for playing on success or for
// selecting on failure.
func (pl *Controller) selected() {
	pth, err := pl.cat.CurrentPath()
	if err != nil {
		pl.note(notifications.NotifyLoadError, err.Error())
		pl.sess.Mode = emulation.ModeSelecting
		return
	}

	if err := pl.play(pth); err != nil {
		pl.sess.Mode = emulation.ModeSelecting
	}
}

// play loads the cartridge and prepares the gui for the playing mode. On
// error the selection screen, if there is one, is left as it was.
func (pl *Controller) play(filename string) error {
	if err := pl.lc.Load(filename); err != nil {
		pl.note(notifications.NotifyLoadError, session.LoadErrorMessage(err))
		return err
	}

	if err := pl.video.CreateSurface(pl.sess.Region); err != nil {
		pl.lc.Unload()
		pl.note(notifications.NotifyError, err.Error())
		return err
	}

	if pl.screen != nil {
		pl.screen.Destroy()
		pl.screen = nil
	}

	pl.startAudio()
	pl.startWav()

	pl.sess.Pending.Clear()
	pl.controllers.Reset()
	if pl.rewind != nil {
		pl.rewind.Reset()
	}
	pl.gate.SetLimit(pl.sess.Region.FrameRate())

	pl.sess.Mode = emulation.ModePlaying
	pl.sess.Playing = true

	pl.note(notifications.NotifyLoaded, filepath.Base(filename))
	if info := pl.lc.DiskInfo(); info != "" {
		pl.note(notifications.NotifyDisk, info)
	}

	return nil
}

// startAudio opens the audio device. The absence of audio is not fatal.
func (pl *Controller) startAudio() {
	err := pl.audio.Init(gui.AudioParams{
		SampleRate: pl.sampleRate(),
		Region:     pl.sess.Region,
	})
	if err != nil {
		logger.Log(logger.Allow, "controller", err)
	}
}

// the sample rate of the engine's audio is only known once a frame has been
// executed.
const defaultSampleRate = 48000

func (pl *Controller) sampleRate() int {
	if pl.audioOut.SampleRate > 0 {
		return pl.audioOut.SampleRate
	}
	return defaultSampleRate
}

func (pl *Controller) startWav() {
	if !pl.wavCapture {
		return
	}

	pth, err := paths.ResourcePath(paths.Wav, pl.sess.GameBaseName+".wav")
	if err != nil {
		logger.Log(logger.Allow, "controller", err)
		return
	}

	pl.wav, err = wavwriter.New(pth)
	if err != nil {
		logger.Log(logger.Allow, "controller", err)
	}
}

func (pl *Controller) endWav() {
	if pl.wav == nil {
		return
	}
	if err := pl.wav.End(); err != nil {
		logger.Log(logger.Allow, "controller", err)
	}
	pl.wav = nil
}

// enterSelecting creates a new selection screen. The catalog is rebuilt by
// the screen.
func (pl *Controller) enterSelecting() error {
	r, err := pl.newRenderer()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl.screen = selectscreen.NewScreen(pl.cat, r, pl.controllers.Bindings())
	pl.sess.Mode = emulation.ModeSelecting

	return nil
}

// back leaves the playing mode for the selection screen.
func (pl *Controller) back() error {
	pl.sess.Pending.Clear()
	pl.stopMovie()
	pl.endWav()

	pl.lc.Unload()
	pl.video.DestroySurface()
	pl.audio.Deinit()

	return pl.enterSelecting()
}

// playing handles an event while a cartridge is being played.
func (pl *Controller) playing(ev userinput.Event) error {
	cmd := pl.controllers.Process(ev)
	if cmd == userinput.CommandNone {
		return nil
	}

	logger.Log(logger.Allow, "controller", cmd)

	if cmd == userinput.CommandBack {
		return pl.back()
	}

	pl.command(cmd)

	return nil
}

// note sends a notification, logging any error.
func (pl *Controller) note(notice notifications.Notice, message string) {
	if err := pl.notify.Notify(notice, message); err != nil {
		logger.Log(logger.Allow, "controller", err)
	}
}
