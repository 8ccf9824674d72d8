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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/nstfront/nstfront/catalog"
	"github.com/nstfront/nstfront/emulation/null"
	"github.com/nstfront/nstfront/gui/sdlaudio"
	"github.com/nstfront/nstfront/gui/sdlplay"
	"github.com/nstfront/nstfront/gui/sdlselect"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/modalflag"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/paths"
	"github.com/nstfront/nstfront/performance"
	"github.com/nstfront/nstfront/performance/limiter"
	"github.com/nstfront/nstfront/playmode"
	"github.com/nstfront/nstfront/prefs"
	"github.com/nstfront/nstfront/rewind"
	"github.com/nstfront/nstfront/selectscreen"
	"github.com/nstfront/nstfront/session"
	"github.com/nstfront/nstfront/statsview"
	"github.com/nstfront/nstfront/userinput"
	"github.com/nstfront/nstfront/version"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// the disk system BIOS is looked for in the base resource directory.
const biosFile = "disksys.rom"

// the input bindings file in the base resource directory.
const bindingsFile = "input.toml"

// the font used by the selection screen. the fallback font is used if this
// cannot be found.
const defaultFont = "PressStart2P.ttf"

// SDL requires that all window and event handling happens on the thread that
// initialised it. that thread is the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// commonPrefs adds the flags that are shared by the play and performance
// modes. they override the preferences on disk.
func commonPrefs(md *modalflag.Modes) {
	md.AddPref("softpatch", "session.softpatch", "apply .ips or .ups patches found beside the cartridge image (true or false)")
	md.AddPref("region", "session.favoredsystem", "favored system: NTSC, PAL or AUTO")
}

func play(md *modalflag.Modes) error {
	md.NewMode()
	commonPrefs(md)
	md.AddPref("romdir", "catalog.romdir", "directory listed by the selection screen")
	md.AddPref("sorted", "catalog.sorted", "sort the selection screen by name (true or false)")
	scale := md.AddFloat64("scale", 0.0, "window scaling")
	font := md.AddString("font", defaultFont, "font used by the selection screen")
	wav := md.AddBool("wav", false, "record audio to the wav directory")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", availability(statsview.Available())))
	prof := md.AddString("profile", "none", "run through the profiler: cpu, mem or block")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp("The optional argument is a cartridge image to play immediately.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}
	switch profile {
	case performance.ProfileNone, performance.ProfileCPU, performance.ProfileMem, performance.ProfileBlock:
	default:
		return fmt.Errorf("only one profile type can be used in %s mode", md)
	}

	if s := md.Prefs(); s != "" {
		prefs.PushCommandLineStack(s)
	}

	if err := paths.Prepare(); err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.RunProfiler(profile, ".", func() error {
		return run(md.GetArg(0), float32(*scale), *font, *wav)
	})
}

// run the play loop until the user quits.
func run(filename string, scale float32, font string, wav bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf: %w", err)
	}
	defer ttf.Quit()

	lc, err := lifecycle()
	if err != nil {
		return err
	}

	catPrefs, err := catalog.NewPreferences()
	if err != nil {
		return err
	}

	bindingsPath, err := paths.ResourcePath("", bindingsFile)
	if err != nil {
		return err
	}

	bindings, err := userinput.LoadBindingsFile(bindingsPath)
	if err != nil {
		// carry on with the default bindings but do not overwrite the file
		// the user will want to correct
		logger.Log(logger.Allow, "nstfront", err)
		bindingsPath = ""
	}

	rwd, err := rewind.NewRewind(lc.Engine())
	if err != nil {
		return err
	}

	events := sdlplay.NewEvents()
	defer events.Close()

	pl, err := playmode.NewController(playmode.Config{
		Lifecycle: lc,
		Catalog:   catPrefs.NewCatalog(),
		Video:     sdlplay.NewSdlPlay(scale),
		Audio:     sdlaudio.NewAudio(),
		Events:    events,
		NewRenderer: func() (selectscreen.Renderer, error) {
			return sdlselect.NewSelect(font)
		},
		Gate:         limiter.NewFPSLimiter(lc.Session().Region.FrameRate()),
		Bindings:     bindings,
		Notify:       notifications.NewLog(os.Stderr),
		Rewind:       rwd,
		BindingsFile: bindingsPath,
		WavCapture:   wav,
	})
	if err != nil {
		return err
	}

	if err := pl.Start(filename); err != nil {
		_ = pl.Shutdown()
		return err
	}

	if err := pl.Run(); err != nil {
		return err
	}

	return catPrefs.Save()
}

// lifecycle creates the engine and the session lifecycle around it.
func lifecycle() (*session.Lifecycle, error) {
	sessPrefs, err := session.NewPreferences()
	if err != nil {
		return nil, err
	}

	pth, err := paths.ResourcePath("", biosFile)
	if err != nil {
		return nil, err
	}

	// a missing BIOS only matters when a disk image is loaded. the engine
	// will report that
	bios, err := os.ReadFile(pth)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log(logger.Allow, "nstfront", err)
	}

	return session.NewLifecycle(&session.Session{}, null.NewEngine(bios), sessPrefs), nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	commonPrefs(md)
	duration := md.AddString("duration", "5s", "run duration")
	prof := md.AddString("profile", "none", "produce profiling reports: cpu, mem, block or a comma separated list")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	profile, err := performance.ParseProfileString(*prof)
	if err != nil {
		return err
	}

	if s := md.Prefs(); s != "" {
		prefs.PushCommandLineStack(s)
	}

	if err := paths.Prepare(); err != nil {
		return err
	}

	lc, err := lifecycle()
	if err != nil {
		return err
	}

	return performance.Check(md.Output, profile, lc, md.GetArg(0), *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display the vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	inf := version.Get()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, inf.Number)
	if *revision {
		fmt.Fprintln(md.Output, inf.Revision)
	}

	return nil
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "not available in this build"
}
