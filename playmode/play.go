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
	"time"

	"github.com/nstfront/nstfront/catalog"
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/gui"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/performance/limiter"
	"github.com/nstfront/nstfront/recorder"
	"github.com/nstfront/nstfront/rewind"
	"github.com/nstfront/nstfront/selectscreen"
	"github.com/nstfront/nstfront/session"
	"github.com/nstfront/nstfront/userinput"
	"github.com/nstfront/nstfront/wavwriter"
)

// Config is the collection of parts that make up the Controller. All fields
// except Rewind, BindingsFile, Sleep and WavCapture must be set.
type Config struct {
	Lifecycle *session.Lifecycle
	Catalog   *catalog.Catalog

	Video  gui.Video
	Audio  gui.Audio
	Events gui.Events

	// creates the renderer for a new selection screen. called every time the
	// selection screen is entered
	NewRenderer func() (selectscreen.Renderer, error)

	Gate     limiter.Gate
	Bindings userinput.Bindings
	Notify   notifications.Notify

	// a nil rewind disables the rewind hotkey
	Rewind *rewind.Rewind

	// bindings are written to this file on shutdown. empty string to
	// disable
	BindingsFile string

	// audio for each play session is written to the wav directory
	WavCapture bool

	// defaults to time.Sleep
	Sleep func(time.Duration)
}

// Controller is the state machine moving the session between the selection
// screen and play.
type Controller struct {
	sess *session.Session
	lc   *session.Lifecycle
	cat  *catalog.Catalog

	video  gui.Video
	audio  gui.Audio
	events gui.Events

	newRenderer func() (selectscreen.Renderer, error)
	screen      *selectscreen.Screen

	gate         limiter.Gate
	controllers  *userinput.Controllers
	bindingsFile string
	notify       notifications.Notify

	rewind *rewind.Rewind

	// at most one of these will be non-nil
	rec *recorder.Recorder
	plb *recorder.Playback

	// input used during movie playback. the live controller state is not
	// touched by playback
	movieInput emulation.InputState

	wavCapture bool
	wav        *wavwriter.WavWriter

	audioOut emulation.AudioOutput

	sleep func(time.Duration)

	Prefs *Preferences

	// set once Shutdown() has been called
	ended bool
}

// NewController is the preferred method of initialisation for the Controller
// type. The controller is not ready to use until Start() has been called.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Lifecycle == nil || cfg.Catalog == nil {
		return nil, curated.Errorf("playmode: incomplete configuration")
	}
	if cfg.Video == nil || cfg.Audio == nil || cfg.Events == nil {
		return nil, curated.Errorf("playmode: incomplete configuration")
	}
	if cfg.NewRenderer == nil || cfg.Gate == nil || cfg.Notify == nil {
		return nil, curated.Errorf("playmode: incomplete configuration")
	}

	pl := &Controller{
		sess:         cfg.Lifecycle.Session(),
		lc:           cfg.Lifecycle,
		cat:          cfg.Catalog,
		video:        cfg.Video,
		audio:        cfg.Audio,
		events:       cfg.Events,
		newRenderer:  cfg.NewRenderer,
		gate:         cfg.Gate,
		controllers:  userinput.NewControllers(cfg.Bindings),
		bindingsFile: cfg.BindingsFile,
		notify:       cfg.Notify,
		rewind:       cfg.Rewind,
		wavCapture:   cfg.WavCapture,
		sleep:        cfg.Sleep,
	}

	if pl.sleep == nil {
		pl.sleep = time.Sleep
	}

	var err error
	pl.Prefs, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	return pl, nil
}

// Session returns the session being controlled.
func (pl *Controller) Session() *session.Session {
	return pl.sess
}

// Screen returns the selection screen. It is nil unless the session is in
// the selecting mode.
func (pl *Controller) Screen() *selectscreen.Screen {
	return pl.screen
}

// Start the controller. If filename is not empty the cartridge image is
// loaded and played immediately. Otherwise, or if the image cannot be
// loaded, the selection screen is shown.
func (pl *Controller) Start(filename string) error {
	if filename != "" {
		if err := pl.play(filename); err == nil {
			return nil
		}
	}
	return pl.enterSelecting()
}

// Run calls Tick() until the program is to end. Shutdown() will have been
// called by the time Run() returns.
func (pl *Controller) Run() error {
	for {
		running, err := pl.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// Tick performs one iteration of the polling loop. Returns false once a quit
// has been requested and the shutdown sequence has been performed.
func (pl *Controller) Tick() (bool, error) {
	if pl.ended {
		return false, nil
	}

	for !pl.sess.Pending.QuitRequested() {
		ev, ok := pl.events.Poll()
		if !ok {
			break
		}

		if _, ok := ev.(userinput.EventQuit); ok {
			pl.sess.Pending.RequestQuit()
			break
		}

		var err error
		switch pl.sess.Mode {
		case emulation.ModeSelecting:
			err = pl.selecting(ev)
		case emulation.ModePlaying:
			err = pl.playing(ev)
		}
		if err != nil {
			pl.sess.Pending.RequestQuit()
			return false, curated.Errorf("playmode: %v", pl.shutdownWith(err))
		}
	}

	if pl.sess.Pending.QuitRequested() {
		return false, pl.Shutdown()
	}

	if pl.sess.Mode == emulation.ModePlaying {
		if pl.sess.Playing {
			if pl.gate.Admit() {
				pl.frame()
			} else {
				pl.sleep(time.Millisecond)
			}
		}
		pl.sess.Pending.Drain(actions{pl: pl})
	}

	if !pl.sess.Playing {
		pl.sleep(time.Duration(pl.Prefs.Idle.Int()) * time.Millisecond)
	}

	return true, nil
}

// frame executes one frame of emulation. The video buffer is only held for
// the duration of the call to ExecuteFrame().
func (pl *Controller) frame() {
	input := pl.controllers.State()

	if pl.plb != nil {
		ok, err := pl.plb.NextFrame(&pl.movieInput)
		if err != nil {
			logger.Log(logger.Allow, "controller", err)
		}
		if ok {
			input = &pl.movieInput
		} else {
			pl.stopMovie()
			pl.note(notifications.NotifyMovieStop, "Movie ended")
		}
	}

	vid, err := pl.video.LockFrame()
	if err != nil {
		logger.Log(logger.Allow, "controller", err)
		return
	}

	err = pl.lc.Engine().ExecuteFrame(vid, &pl.audioOut, input)
	pl.video.UnlockFrame()

	if err != nil {
		logger.Log(logger.Allow, "controller", err)
		return
	}

	pl.audio.Play(pl.audioOut.Samples)

	if pl.wav != nil {
		if err := pl.wav.Write(&pl.audioOut); err != nil {
			logger.Log(logger.Allow, "controller", err)
			pl.endWav()
		}
	}

	if pl.rec != nil {
		if err := pl.rec.RecordFrame(input); err != nil {
			logger.Log(logger.Allow, "controller", err)
			pl.stopMovie()
		}
	}

	if pl.rewind != nil {
		if err := pl.rewind.RecordFrame(); err != nil {
			logger.Log(logger.Allow, "controller", err)
		}
	}
}

// Shutdown the session. The cartridge is unloaded, the gui torn down and the
// bindings and preferences saved. It is safe to call more than once.
func (pl *Controller) Shutdown() error {
	return pl.shutdownWith(nil)
}

// shutdownWith performs the shutdown sequence and returns the first error
// from either the cause or the sequence itself.
func (pl *Controller) shutdownWith(cause error) error {
	if pl.ended {
		return cause
	}
	pl.ended = true

	logger.Log(logger.Allow, "controller", "shutting down")

	pl.stopMovie()
	pl.endWav()

	if pl.screen != nil {
		pl.screen.Destroy()
		pl.screen = nil
	}

	pl.lc.Unload()
	pl.video.DestroySurface()
	pl.audio.Deinit()

	err := cause
	keep := func(e error) {
		if e != nil {
			logger.Log(logger.Allow, "controller", e)
			if err == nil {
				err = e
			}
		}
	}

	if pl.bindingsFile != "" {
		keep(userinput.SaveBindingsFile(pl.controllers.Bindings(), pl.bindingsFile))
	}
	keep(pl.lc.Prefs.Save())
	keep(pl.Prefs.Save())
	if pl.rewind != nil {
		keep(pl.rewind.Prefs.Save())
	}

	return err
}
