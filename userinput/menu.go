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

// MenuAction is the meaning of an event when the selection screen is
// showing.
type MenuAction int

// List of valid MenuAction values.
const (
	MenuNone MenuAction = iota
	MenuUp
	MenuDown
	MenuConfirm
	MenuBack
	MenuResize
)

func (a MenuAction) String() string {
	switch a {
	case MenuUp:
		return "up"
	case MenuDown:
		return "down"
	case MenuConfirm:
		return "confirm"
	case MenuBack:
		return "back"
	case MenuResize:
		return "resize"
	}
	return "none"
}

// Menu returns the meaning of the event to the selection screen. Only button
// presses count, releases are ignored. Held keys repeat navigation but do not
// repeat confirm or back.
func (b Bindings) Menu(ev Event) MenuAction {
	switch ev := ev.(type) {
	case EventKeyboard:
		if !ev.Down {
			return MenuNone
		}
		switch ev.Key {
		case b.Player1.Up:
			return MenuUp
		case b.Player1.Down:
			return MenuDown
		}
		if ev.Repeat {
			return MenuNone
		}
		switch ev.Key {
		case b.Hotkeys.Confirm:
			return MenuConfirm
		case b.Hotkeys.Back:
			return MenuBack
		}

	case EventGamepadDPad:
		switch ev.Direction {
		case DPadUp:
			return MenuUp
		case DPadDown:
			return MenuDown
		}

	case EventGamepadButton:
		if !ev.Down {
			return MenuNone
		}
		switch ev.Button {
		case b.Joystick.Confirm:
			return MenuConfirm
		case b.Joystick.Back:
			return MenuBack
		}

	case EventWindowResize:
		return MenuResize
	}

	return MenuNone
}
