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

package sdlplay

import (
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Events implements the gui.Events interface.
type Events struct {
	joysticks map[sdl.JoystickID]*sdl.Joystick

	// joystick instance IDs are converted to a player index
	players map[sdl.JoystickID]int
}

// NewEvents is the preferred method of initialisation for the Events type.
// All joysticks attached when the function is called are opened.
func NewEvents() *Events {
	ev := &Events{
		joysticks: make(map[sdl.JoystickID]*sdl.Joystick),
		players:   make(map[sdl.JoystickID]int),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		ev.open(i)
	}

	return ev
}

func (ev *Events) open(index int) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		logger.Logf(logger.Allow, "sdlplay", "cannot open joystick %d", index)
		return
	}
	id := joy.InstanceID()
	if _, ok := ev.joysticks[id]; ok {
		joy.Close()
		return
	}
	ev.joysticks[id] = joy
	ev.players[id] = len(ev.players) % emulation.NumPads
	logger.Logf(logger.Allow, "sdlplay", "joystick: %s", joy.Name())
}

// Close all joysticks.
func (ev *Events) Close() {
	for id, joy := range ev.joysticks {
		joy.Close()
		delete(ev.joysticks, id)
	}
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

func hatDirection(v uint8) userinput.DPadDirection {
	switch v {
	case sdl.HAT_UP:
		return userinput.DPadUp
	case sdl.HAT_DOWN:
		return userinput.DPadDown
	case sdl.HAT_LEFT:
		return userinput.DPadLeft
	case sdl.HAT_RIGHT:
		return userinput.DPadRight
	case sdl.HAT_LEFTUP:
		return userinput.DPadLeftUp
	case sdl.HAT_LEFTDOWN:
		return userinput.DPadLeftDown
	case sdl.HAT_RIGHTUP:
		return userinput.DPadRightUp
	case sdl.HAT_RIGHTDOWN:
		return userinput.DPadRightDown
	}
	return userinput.DPadCentre
}

// Poll implements the gui.Events interface. SDL events that have no meaning
// to the userinput package are skipped.
func (ev *Events) Poll() (userinput.Event, bool) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return nil, false
		}

		switch e := e.(type) {
		case *sdl.QuitEvent:
			return userinput.EventQuit{}, true

		case *sdl.KeyboardEvent:
			return userinput.EventKeyboard{
				Key:    sdl.GetKeyName(e.Keysym.Sym),
				Mod:    keyMod(),
				Down:   e.Type == sdl.KEYDOWN,
				Repeat: e.Repeat != 0,
			}, true

		case *sdl.JoyButtonEvent:
			return userinput.EventGamepadButton{
				ID:     ev.players[e.Which],
				Button: int(e.Button),
				Down:   e.State == sdl.PRESSED,
			}, true

		case *sdl.JoyHatEvent:
			return userinput.EventGamepadDPad{
				ID:        ev.players[e.Which],
				Direction: hatDirection(e.Value),
			}, true

		case *sdl.JoyDeviceAddedEvent:
			ev.open(int(e.Which))

		case *sdl.MouseButtonEvent:
			b := userinput.MouseButtonNone
			switch e.Button {
			case sdl.BUTTON_LEFT:
				b = userinput.MouseButtonLeft
			case sdl.BUTTON_RIGHT:
				b = userinput.MouseButtonRight
			case sdl.BUTTON_MIDDLE:
				b = userinput.MouseButtonMiddle
			}
			return userinput.EventMouseButton{
				Button: b,
				Down:   e.Type == sdl.MOUSEBUTTONDOWN,
			}, true

		case *sdl.MouseMotionEvent:
			return userinput.EventMouseMotion{
				X: int16(e.X),
				Y: int16(e.Y),
			}, true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				return userinput.EventWindowResize{
					Width:  int(e.Data1),
					Height: int(e.Data2),
				}, true
			}
		}
	}
}
