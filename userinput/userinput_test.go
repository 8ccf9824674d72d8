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

package userinput_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/test"
	"github.com/nstfront/nstfront/userinput"
)

func TestKeyboardPads(t *testing.T) {
	c := userinput.NewControllers(userinput.DefaultBindings())

	cmd := c.Process(userinput.EventKeyboard{Key: "X", Down: true})
	test.ExpectEquality(t, cmd, userinput.CommandNone)
	test.ExpectSuccess(t, c.State().Pressed(0, emulation.ButtonA))
	test.ExpectFailure(t, c.State().Pressed(1, emulation.ButtonA))

	c.Process(userinput.EventKeyboard{Key: "I", Down: true})
	test.ExpectSuccess(t, c.State().Pressed(1, emulation.ButtonUp))

	c.Process(userinput.EventKeyboard{Key: "X", Down: false})
	test.ExpectFailure(t, c.State().Pressed(0, emulation.ButtonA))

	c.Reset()
	test.ExpectEquality(t, *c.State(), emulation.InputState{})
}

func TestHotkeys(t *testing.T) {
	c := userinput.NewControllers(userinput.DefaultBindings())

	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "F5", Down: true}), userinput.CommandQuickSave)
	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "F7", Down: true}), userinput.CommandQuickLoad)
	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "Escape", Down: true}), userinput.CommandBack)
	test.ExpectEquality(t, c.Process(userinput.EventQuit{}), userinput.CommandQuit)

	// releases and repeats are not commands
	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "F5", Down: false}), userinput.CommandNone)
	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "F5", Down: true, Repeat: true}), userinput.CommandNone)

	test.ExpectEquality(t, c.Slot(), 1)
	test.ExpectEquality(t, c.Process(userinput.EventKeyboard{Key: "3", Down: true}), userinput.CommandSelectSlot)
	test.ExpectEquality(t, c.Slot(), 3)
}

func TestGamepad(t *testing.T) {
	c := userinput.NewControllers(userinput.DefaultBindings())

	c.Process(userinput.EventGamepadButton{ID: 1, Button: 7, Down: true})
	test.ExpectSuccess(t, c.State().Pressed(1, emulation.ButtonStart))

	c.Process(userinput.EventGamepadDPad{ID: 0, Direction: userinput.DPadLeftUp})
	test.ExpectSuccess(t, c.State().Pressed(0, emulation.ButtonLeft|emulation.ButtonUp))

	c.Process(userinput.EventGamepadDPad{ID: 0, Direction: userinput.DPadDown})
	test.ExpectFailure(t, c.State().Pressed(0, emulation.ButtonLeft))
	test.ExpectSuccess(t, c.State().Pressed(0, emulation.ButtonDown))

	c.Process(userinput.EventGamepadDPad{ID: 0, Direction: userinput.DPadCentre})
	test.ExpectEquality(t, c.State().Pads[0], emulation.Button(0))

	test.ExpectEquality(t, c.Process(userinput.EventGamepadButton{ID: 0, Button: 4, Down: true}), userinput.CommandBack)
}

func TestMouse(t *testing.T) {
	c := userinput.NewControllers(userinput.DefaultBindings())
	c.Process(userinput.EventMouseMotion{X: 100, Y: 20})
	c.Process(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	test.ExpectEquality(t, c.State().MouseX, int16(100))
	test.ExpectEquality(t, c.State().MouseY, int16(20))
	test.ExpectSuccess(t, c.State().MouseButton)
}

func TestMenu(t *testing.T) {
	b := userinput.DefaultBindings()

	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Up", Down: true}), userinput.MenuUp)
	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Down", Down: true, Repeat: true}), userinput.MenuDown)
	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Return", Down: true}), userinput.MenuConfirm)
	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Return", Down: true, Repeat: true}), userinput.MenuNone)
	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Return", Down: false}), userinput.MenuNone)
	test.ExpectEquality(t, b.Menu(userinput.EventKeyboard{Key: "Escape", Down: true}), userinput.MenuBack)
	test.ExpectEquality(t, b.Menu(userinput.EventGamepadDPad{Direction: userinput.DPadUp}), userinput.MenuUp)
	test.ExpectEquality(t, b.Menu(userinput.EventGamepadDPad{Direction: userinput.DPadDown}), userinput.MenuDown)
	test.ExpectEquality(t, b.Menu(userinput.EventGamepadButton{Button: 0, Down: true}), userinput.MenuConfirm)
	test.ExpectEquality(t, b.Menu(userinput.EventGamepadButton{Button: 4, Down: true}), userinput.MenuBack)
	test.ExpectEquality(t, b.Menu(userinput.EventWindowResize{Width: 10, Height: 10}), userinput.MenuResize)
	test.ExpectEquality(t, b.Menu(userinput.EventMouseMotion{}), userinput.MenuNone)
}

func TestBindingsPersistence(t *testing.T) {
	b := userinput.DefaultBindings()
	b.Player1.A = "C"
	b.Hotkeys.Slots = []string{"F1"}

	var buf bytes.Buffer
	test.DemandSuccess(t, userinput.SaveBindings(b, &buf))

	l, err := userinput.LoadBindings(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Player1.A, "C")
	test.ExpectEquality(t, l.Player1.B, "Z")
	test.ExpectEquality(t, len(l.Hotkeys.Slots), 1)

	// partial files take defaults for everything not mentioned
	l, err = userinput.LoadBindings(strings.NewReader("[Player1]\nA = \"V\"\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Player1.A, "V")
	test.ExpectEquality(t, l.Hotkeys.QuickSave, "F5")

	_, err = userinput.LoadBindings(strings.NewReader("[[[not toml"))
	test.ExpectFailure(t, err)
}

func TestBindingsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "input.toml")

	// missing file is not an error
	b, err := userinput.LoadBindingsFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Player1.A, "X")

	b.Player2.Start = "Tab"
	test.DemandSuccess(t, userinput.SaveBindingsFile(b, fn))

	b, err = userinput.LoadBindingsFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Player2.Start, "Tab")
}
