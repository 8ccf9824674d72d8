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

package playmode_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nstfront/nstfront/catalog"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/emulation/null"
	"github.com/nstfront/nstfront/gui"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/playmode"
	"github.com/nstfront/nstfront/rewind"
	"github.com/nstfront/nstfront/selectscreen"
	"github.com/nstfront/nstfront/session"
	"github.com/nstfront/nstfront/test"
	"github.com/nstfront/nstfront/userinput"
)

func ines(pal bool) []byte {
	h := make([]byte, 16)
	copy(h, "NES\x1a")
	h[4] = 1
	h[5] = 1
	if pal {
		h[9] = 0x01
	}
	return append(h, make([]byte, 16384+8192)...)
}

// a header that promises more data than the file contains
func corrupt() []byte {
	d := ines(false)
	d[4] = 2
	return d
}

type events struct {
	queue []userinput.Event
}

func (ev *events) Poll() (userinput.Event, bool) {
	if len(ev.queue) == 0 {
		return nil, false
	}
	e := ev.queue[0]
	ev.queue = ev.queue[1:]
	return e, true
}

func (ev *events) push(e ...userinput.Event) {
	ev.queue = append(ev.queue, e...)
}

type video struct {
	buffer   emulation.VideoOutput
	creates  int
	destroys int
	locked   bool
	frames   int
}

func (v *video) CreateSurface(_ emulation.Region) error {
	v.creates++
	v.buffer = emulation.NewVideoOutput()
	return nil
}

func (v *video) DestroySurface() {
	v.destroys++
}

func (v *video) LockFrame() (emulation.VideoOutput, error) {
	v.locked = true
	return v.buffer, nil
}

func (v *video) UnlockFrame() {
	v.locked = false
	v.frames++
}

type audio struct {
	inits   int
	deinits int
	played  int
	paused  bool
}

func (a *audio) Init(_ gui.AudioParams) error {
	a.inits++
	a.paused = false
	return nil
}

func (a *audio) Deinit() { a.deinits++ }
func (a *audio) Play(_ []int16) { a.played++ }
func (a *audio) Pause() { a.paused = true }

type renderer struct {
	destroyed bool
}

func (r *renderer) Clear() {}
func (r *renderer) Header(_ string) {}
func (r *renderer) Row(_ int, _ string) {}
func (r *renderer) Present() {}
func (r *renderer) Destroy() { r.destroyed = true }

type gate struct {
	limit int
	deny  bool
}

func (g *gate) Admit() bool { return !g.deny }
func (g *gate) SetLimit(fps int) { g.limit = fps }

type notes struct {
	list []notifications.Notice
}

func (n *notes) Notify(notice notifications.Notice, _ string) error {
	n.list = append(n.list, notice)
	return nil
}

func (n *notes) last() notifications.Notice {
	if len(n.list) == 0 {
		return ""
	}
	return n.list[len(n.list)-1]
}

type harness struct {
	pl        *playmode.Controller
	eng       *null.Engine
	cat       *catalog.Catalog
	events    *events
	video     *video
	audio     *audio
	renderers []*renderer
	gate      *gate
	notes     *notes
	sleeps    []time.Duration
	bindings  string
	romdir    string
}

func newHarness(t *testing.T, files map[string][]byte, rwd bool) *harness {
	t.Helper()

	t.Setenv(paths.EnvHome, filepath.Join(t.TempDir(), "nst"))
	test.DemandSuccess(t, paths.Prepare())

	h := &harness{
		events: &events{},
		video:  &video{},
		audio:  &audio{},
		gate:   &gate{},
		notes:  &notes{},
		romdir: t.TempDir(),
	}

	for n, d := range files {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(h.romdir, n), d, 0o644))
	}

	base, err := paths.BasePath()
	test.DemandSuccess(t, err)
	h.bindings = filepath.Join(base, "input.toml")

	p, err := session.NewPreferences()
	test.DemandSuccess(t, err)
	h.eng = null.NewEngine(nil)
	lc := session.NewLifecycle(&session.Session{}, h.eng, p)

	h.cat = catalog.NewCatalog(h.romdir, true)

	cfg := playmode.Config{
		Lifecycle: lc,
		Catalog:   h.cat,
		Video:     h.video,
		Audio:     h.audio,
		Events:    h.events,
		NewRenderer: func() (selectscreen.Renderer, error) {
			r := &renderer{}
			h.renderers = append(h.renderers, r)
			return r, nil
		},
		Gate:         h.gate,
		Bindings:     userinput.DefaultBindings(),
		Notify:       h.notes,
		BindingsFile: h.bindings,
		Sleep: func(d time.Duration) {
			h.sleeps = append(h.sleeps, d)
		},
	}

	if rwd {
		cfg.Rewind, err = rewind.NewRewind(h.eng)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, cfg.Rewind.Prefs.Frequency.Set(1))
	}

	h.pl, err = playmode.NewController(cfg)
	test.DemandSuccess(t, err)

	return h
}

// tick calls Tick() and demands that the controller is still running.
func (h *harness) tick(t *testing.T) {
	t.Helper()
	running, err := h.pl.Tick()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, running)
}

func key(k string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: true}
}

var confirm = key("Return")
var back = key("Escape")

// start the harness in the playing mode with the first catalog entry.
func (h *harness) play(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, h.pl.Start(""))
	h.events.push(confirm)
	h.tick(t)
	test.DemandEquality(t, h.pl.Session().Mode, emulation.ModePlaying)
}

func TestLoadFailure(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": corrupt(),
		"b.nes": ines(false),
	}, false)

	test.DemandSuccess(t, h.pl.Start(""))
	test.ExpectEquality(t, h.pl.Session().Mode, emulation.ModeSelecting)
	test.ExpectEquality(t, len(h.renderers), 1)

	h.events.push(confirm)
	h.tick(t)

	sess := h.pl.Session()
	test.ExpectEquality(t, sess.Mode, emulation.ModeSelecting)
	test.ExpectFailure(t, sess.Loaded)
	test.ExpectFailure(t, sess.Playing)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyLoadError)

	// the selection screen is unchanged
	test.ExpectSuccess(t, h.pl.Screen() != nil)
	test.ExpectFailure(t, h.renderers[0].destroyed)
	test.ExpectEquality(t, len(h.renderers), 1)
	test.ExpectEquality(t, h.cat.Len(), 2)
	test.ExpectEquality(t, h.cat.Selected(), 0)

	// nothing for playing was created
	test.ExpectEquality(t, h.video.creates, 0)
	test.ExpectEquality(t, h.audio.inits, 0)

	// the idle sleep is used while selecting
	test.ExpectEquality(t, h.sleeps[len(h.sleeps)-1], 16*time.Millisecond)

	// the second entry can still be played
	h.events.push(key("Down"), confirm)
	h.tick(t)
	test.ExpectEquality(t, sess.Mode, emulation.ModePlaying)
	test.ExpectEquality(t, sess.GameBaseName, "b")
}

func TestLoadSuccess(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(true),
		"b.nes": ines(false),
	}, false)

	h.play(t)

	sess := h.pl.Session()
	test.ExpectSuccess(t, sess.Loaded)
	test.ExpectSuccess(t, sess.Playing)
	test.ExpectEquality(t, sess.Region, emulation.PAL)
	test.ExpectEquality(t, h.gate.limit, 50)
	test.ExpectEquality(t, h.pl.Screen() == nil, true)
	test.ExpectSuccess(t, h.renderers[0].destroyed)
	test.ExpectEquality(t, h.video.creates, 1)
	test.ExpectEquality(t, h.audio.inits, 1)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyLoaded)

	// the frame was executed in the same tick as the load
	test.ExpectEquality(t, h.eng.Frame(), uint64(1))
	test.ExpectEquality(t, h.video.frames, 1)
	test.ExpectFailure(t, h.video.locked)
	test.ExpectEquality(t, h.audio.played, 1)

	h.tick(t)
	h.tick(t)
	test.ExpectEquality(t, h.eng.Frame(), uint64(3))

	// frames are not run if the gate does not admit them
	h.gate.deny = true
	h.tick(t)
	test.ExpectEquality(t, h.eng.Frame(), uint64(3))
}

func TestStartWithFile(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)

	test.DemandSuccess(t, h.pl.Start(filepath.Join(h.romdir, "a.nes")))
	test.ExpectEquality(t, h.pl.Session().Mode, emulation.ModePlaying)
	test.ExpectEquality(t, len(h.renderers), 0)
	test.ExpectEquality(t, h.gate.limit, 60)

	h2 := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)

	test.DemandSuccess(t, h2.pl.Start(filepath.Join(h2.romdir, "missing.nes")))
	test.ExpectEquality(t, h2.pl.Session().Mode, emulation.ModeSelecting)
	test.ExpectEquality(t, len(h2.renderers), 1)
	test.ExpectEquality(t, h2.notes.last(), notifications.NotifyLoadError)
}

func TestBack(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)

	// add a file to show that the catalog is rebuilt
	test.DemandSuccess(t, os.WriteFile(filepath.Join(h.romdir, "b.nes"), ines(false), 0o644))

	h.events.push(back)
	h.tick(t)

	sess := h.pl.Session()
	test.ExpectEquality(t, sess.Mode, emulation.ModeSelecting)
	test.ExpectFailure(t, sess.Loaded)
	test.ExpectFailure(t, sess.Playing)
	test.ExpectFailure(t, h.eng.Loaded())
	test.ExpectEquality(t, h.video.destroys, 1)
	test.ExpectEquality(t, h.audio.deinits, 1)
	test.ExpectEquality(t, len(h.renderers), 2)
	test.ExpectEquality(t, h.cat.Len(), 2)

	// the joystick back button does the same thing
	h.events.push(confirm)
	h.tick(t)
	test.DemandEquality(t, sess.Mode, emulation.ModePlaying)
	h.events.push(userinput.EventGamepadButton{Button: 4, Down: true})
	h.tick(t)
	test.ExpectEquality(t, sess.Mode, emulation.ModeSelecting)
	test.ExpectEquality(t, len(h.renderers), 3)
}

func TestQuit(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)

	// back while selecting quits
	test.DemandSuccess(t, h.pl.Start(""))
	h.events.push(back)
	running, err := h.pl.Tick()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, running)
	test.ExpectSuccess(t, h.renderers[0].destroyed)
	test.ExpectSuccess(t, h.pl.Session().Pending.QuitRequested())

	// the bindings have been saved
	_, err = os.Stat(h.bindings)
	test.ExpectSuccess(t, err)

	// ticking after the end does nothing
	running, err = h.pl.Tick()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, running)
}

func TestQuitWhilePlaying(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)

	// events after the quit event are not processed
	h.events.push(userinput.EventQuit{}, key("F5"))
	test.DemandSuccess(t, h.pl.Run())

	test.ExpectFailure(t, h.pl.Session().Loaded)
	test.ExpectFailure(t, h.eng.Loaded())
	test.ExpectEquality(t, h.video.destroys, 1)
	test.ExpectEquality(t, h.audio.deinits, 1)
	test.ExpectEquality(t, len(h.events.queue), 1)

	pth, err := paths.ResourcePath("", "preferences")
	test.DemandSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(h.bindings)
	test.ExpectSuccess(t, err)

	// the quit hotkey is the same as closing the window
	h2 := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h2.play(t)
	h2.events.push(key("Q"))
	running, err := h2.pl.Tick()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, running)
	test.ExpectFailure(t, h2.eng.Loaded())
}

func TestQuickSave(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)

	// the state is saved after the frame in the same tick
	h.events.push(key("F5"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyStateSaved)
	sum := h.eng.Checksum()

	pth, err := paths.ResourcePath(paths.State, "a_1.nst")
	test.DemandSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	// the save is not repeated
	saved := len(h.notes.list)
	h.tick(t)
	h.tick(t)
	test.ExpectEquality(t, len(h.notes.list), saved)
	test.ExpectInequality(t, h.eng.Checksum(), sum)

	h.events.push(key("F7"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyStateLoaded)
	test.ExpectEquality(t, h.eng.Checksum(), sum)

	// slot two has never been saved
	h.events.push(key("2"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifySlot)

	h.events.push(key("F7"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyNoState)
	test.ExpectEquality(t, h.pl.Session().Mode, emulation.ModePlaying)
	test.ExpectSuccess(t, h.pl.Session().Loaded)
}

func TestQuickLoadRegion(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)
	test.ExpectEquality(t, h.gate.limit, 60)

	// a state saved while running as PAL
	h.eng.SetRegion(emulation.PAL)
	h.events.push(key("F5"))
	h.tick(t)
	test.DemandEquality(t, h.notes.last(), notifications.NotifyStateSaved)
	h.eng.SetRegion(emulation.NTSC)

	// pacing follows the loaded state
	h.events.push(key("F7"))
	h.tick(t)
	test.DemandEquality(t, h.notes.last(), notifications.NotifyStateLoaded)
	test.ExpectEquality(t, h.pl.Session().Region, emulation.PAL)
	test.ExpectEquality(t, h.gate.limit, 50)
}

func TestPause(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)

	h.events.push(key("P"))
	h.tick(t)
	sess := h.pl.Session()
	test.ExpectFailure(t, sess.Playing)
	test.ExpectEquality(t, sess.Mode, emulation.ModePlaying)
	test.ExpectSuccess(t, h.audio.paused)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyPause)

	frame := h.eng.Frame()
	h.sleeps = h.sleeps[:0]
	h.tick(t)
	test.ExpectEquality(t, h.eng.Frame(), frame)
	test.ExpectEquality(t, len(h.sleeps), 1)

	h.events.push(key("P"))
	h.tick(t)
	test.ExpectSuccess(t, sess.Playing)
	test.ExpectFailure(t, h.audio.paused)
	test.ExpectEquality(t, h.audio.inits, 2)
	test.ExpectEquality(t, h.eng.Frame(), frame+1)
}

func TestMovie(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)

	h.events.push(key("F9"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyMovieRecord)

	// the input recorded by the movie
	h.events.push(key("X"))
	h.tick(t)
	h.events.push(userinput.EventKeyboard{Key: "X"})
	h.tick(t)
	h.tick(t)

	h.events.push(key("F11"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyMovieStop)
	sum := h.eng.Checksum()

	pth, err := paths.ResourcePath(paths.Movie, "a.nsm")
	test.DemandSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)

	// stopping when nothing is recording says nothing
	n := len(h.notes.list)
	h.events.push(key("F11"))
	h.tick(t)
	test.ExpectEquality(t, len(h.notes.list), n)

	h.events.push(key("F10"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyMoviePlayback)

	// four frames were recorded. the tick that started playback executed
	// its frame before the movie was loaded
	for i := 0; i < 4; i++ {
		h.tick(t)
	}
	test.ExpectEquality(t, h.eng.Checksum(), sum)

	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyMovieStop)
}

func TestRewind(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, true)
	h.play(t)

	h.tick(t)
	h.tick(t)

	h.events.push(key("Backspace"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyRewind)
}

func TestReset(t *testing.T) {
	h := newHarness(t, map[string][]byte{
		"a.nes": ines(false),
	}, false)
	h.play(t)
	h.tick(t)

	h.events.push(key("F3"))
	h.tick(t)
	test.ExpectEquality(t, h.notes.last(), notifications.NotifyReset)

	// the reset happened before this tick's frame
	test.ExpectEquality(t, h.eng.Frame(), uint64(1))
}
