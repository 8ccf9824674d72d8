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

// Event represents all the different types of input event that are of
// interest to the front end.
type Event interface{}

// KeyMod identifies the modifier key held when a key event occurred.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModAlt
	KeyModCtrl
)

// EventKeyboard is sent for key presses and releases.
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// MouseButton identifies the mouse button in an EventMouseButton.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is sent for mouse button presses and releases.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. Coordinates are in the
// emulated screen space.
type EventMouseMotion struct {
	X int16
	Y int16
}

// DPadDirection is the direction of a gamepad hat.
type DPadDirection int

// List of valid DPadDirection values.
const (
	DPadCentre DPadDirection = iota
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	DPadLeftUp
	DPadLeftDown
	DPadRightUp
	DPadRightDown
)

// EventGamepadDPad is sent when the direction of a gamepad hat changes. The
// ID is the index of the gamepad.
type EventGamepadDPad struct {
	ID        int
	Direction DPadDirection
}

// EventGamepadButton is sent for gamepad button presses and releases. The
// button number is the number reported by the device.
type EventGamepadButton struct {
	ID     int
	Button int
	Down   bool
}

// EventWindowResize is sent when the window has changed size.
type EventWindowResize struct {
	Width  int
	Height int
}

// EventQuit is sent when the window has been closed.
type EventQuit struct{}
