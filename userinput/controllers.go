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

package userinput

import (
	"github.com/nstfront/nstfront/emulation"
)

// Command is a request to change the session rather than the emulated
// machine. Commands are returned by Controllers.Process() when a hotkey is
// pressed.
type Command int

// List of valid Command values.
const (
	CommandNone Command = iota
	CommandBack
	CommandQuit
	CommandQuickSave
	CommandQuickLoad
	CommandSelectSlot
	CommandMovieSave
	CommandMovieLoad
	CommandMovieStop
	CommandPause
	CommandSoftReset
	CommandHardReset
	CommandFlipSide
	CommandSwitchDisk
	CommandRewind
)

func (c Command) String() string {
	switch c {
	case CommandBack:
		return "back"
	case CommandQuit:
		return "quit"
	case CommandQuickSave:
		return "quicksave"
	case CommandQuickLoad:
		return "quickload"
	case CommandSelectSlot:
		return "select slot"
	case CommandMovieSave:
		return "movie save"
	case CommandMovieLoad:
		return "movie load"
	case CommandMovieStop:
		return "movie stop"
	case CommandPause:
		return "pause"
	case CommandSoftReset:
		return "soft reset"
	case CommandHardReset:
		return "hard reset"
	case CommandFlipSide:
		return "flip side"
	case CommandSwitchDisk:
		return "switch disk"
	case CommandRewind:
		return "rewind"
	}
	return "none"
}

// Controllers keeps the state of the emulated controller ports, updated by
// events passed to Process().
type Controllers struct {
	bindings Bindings
	state    emulation.InputState

	// the most recently selected quicksave slot. slots are numbered from 1
	slot int

	// the direction of each gamepad hat. we need to remember this so that
	// the buttons for a previous direction can be released
	dpad map[int]DPadDirection
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(bindings Bindings) *Controllers {
	return &Controllers{
		bindings: bindings,
		slot:     1,
		dpad:     make(map[int]DPadDirection),
	}
}

// Bindings returns the bindings in use.
func (c *Controllers) Bindings() Bindings {
	return c.bindings
}

// State returns the current state of the controller ports.
func (c *Controllers) State() *emulation.InputState {
	return &c.state
}

// Slot returns the currently selected quicksave slot.
func (c *Controllers) Slot() int {
	return c.slot
}

// Reset releases all buttons.
func (c *Controllers) Reset() {
	c.state = emulation.InputState{}
	clear(c.dpad)
}

// Process the event, updating the controller state. If the event is a hotkey
// the corresponding Command is returned and the controller state is left
// unchanged.
func (c *Controllers) Process(ev Event) Command {
	switch ev := ev.(type) {
	case EventQuit:
		return CommandQuit

	case EventKeyboard:
		if ev.Down && !ev.Repeat {
			if cmd := c.hotkey(ev.Key); cmd != CommandNone {
				return cmd
			}
		}
		c.key(0, c.bindings.Player1, ev)
		c.key(1, c.bindings.Player2, ev)

	case EventGamepadButton:
		if ev.Down && ev.Button == c.bindings.Joystick.Back {
			return CommandBack
		}
		c.button(ev)

	case EventGamepadDPad:
		c.hat(ev)

	case EventMouseButton:
		if ev.Button == MouseButtonLeft {
			c.state.MouseButton = ev.Down
		}

	case EventMouseMotion:
		c.state.MouseX = ev.X
		c.state.MouseY = ev.Y
	}

	return CommandNone
}

func (c *Controllers) hotkey(key string) Command {
	h := c.bindings.Hotkeys

	for i, s := range h.Slots {
		if key == s {
			c.slot = i + 1
			return CommandSelectSlot
		}
	}

	switch key {
	case h.Back:
		return CommandBack
	case h.Quit:
		return CommandQuit
	case h.QuickSave:
		return CommandQuickSave
	case h.QuickLoad:
		return CommandQuickLoad
	case h.MovieSave:
		return CommandMovieSave
	case h.MovieLoad:
		return CommandMovieLoad
	case h.MovieStop:
		return CommandMovieStop
	case h.Pause:
		return CommandPause
	case h.SoftReset:
		return CommandSoftReset
	case h.HardReset:
		return CommandHardReset
	case h.FlipSide:
		return CommandFlipSide
	case h.SwitchDisk:
		return CommandSwitchDisk
	case h.Rewind:
		return CommandRewind
	}

	return CommandNone
}

func (c *Controllers) key(pad int, m Keymapping, ev EventKeyboard) {
	var b emulation.Button

	switch ev.Key {
	case m.A:
		b = emulation.ButtonA
	case m.B:
		b = emulation.ButtonB
	case m.Select:
		b = emulation.ButtonSelect
	case m.Start:
		b = emulation.ButtonStart
	case m.Up:
		b = emulation.ButtonUp
	case m.Down:
		b = emulation.ButtonDown
	case m.Left:
		b = emulation.ButtonLeft
	case m.Right:
		b = emulation.ButtonRight
	default:
		return
	}

	c.state.Set(pad, b, ev.Down)
}

func (c *Controllers) button(ev EventGamepadButton) {
	var b emulation.Button

	switch ev.Button {
	case c.bindings.Joystick.A:
		b = emulation.ButtonA
	case c.bindings.Joystick.B:
		b = emulation.ButtonB
	case c.bindings.Joystick.Select:
		b = emulation.ButtonSelect
	case c.bindings.Joystick.Start:
		b = emulation.ButtonStart
	default:
		return
	}

	c.state.Set(ev.ID, b, ev.Down)
}

func (c *Controllers) hat(ev EventGamepadDPad) {
	const all = emulation.ButtonUp | emulation.ButtonDown | emulation.ButtonLeft | emulation.ButtonRight

	c.state.Set(ev.ID, all, false)
	c.dpad[ev.ID] = ev.Direction

	var b emulation.Button
	switch ev.Direction {
	case DPadUp:
		b = emulation.ButtonUp
	case DPadDown:
		b = emulation.ButtonDown
	case DPadLeft:
		b = emulation.ButtonLeft
	case DPadRight:
		b = emulation.ButtonRight
	case DPadLeftUp:
		b = emulation.ButtonLeft | emulation.ButtonUp
	case DPadLeftDown:
		b = emulation.ButtonLeft | emulation.ButtonDown
	case DPadRightUp:
		b = emulation.ButtonRight | emulation.ButtonUp
	case DPadRightDown:
		b = emulation.ButtonRight | emulation.ButtonDown
	default:
		return
	}

	c.state.Set(ev.ID, b, true)
}
