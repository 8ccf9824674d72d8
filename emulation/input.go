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

package emulation

// Button is a bit in the state of a standard pad.
type Button uint8

// List of pad buttons.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// NumPads is the number of pads supported by InputState.
const NumPads = 2

// InputState is the state of the input devices at the start of a frame.
type InputState struct {
	Pads [NumPads]Button

	MouseX      int16
	MouseY      int16
	MouseButton bool
}

// Set or clear button for the numbered pad. Pads out of range are ignored.
func (in *InputState) Set(pad int, b Button, down bool) {
	if pad < 0 || pad >= NumPads {
		return
	}
	if down {
		in.Pads[pad] |= b
	} else {
		in.Pads[pad] &^= b
	}
}

// Pressed returns true if button b on pad is down.
func (in *InputState) Pressed(pad int, b Button) bool {
	if pad < 0 || pad >= NumPads {
		return false
	}
	return in.Pads[pad]&b == b
}

// InputSize is the number of bytes used by MarshalBinary.
const InputSize = NumPads + 5

// MarshalBinary encodes the input state in a fixed number of bytes.
func (in InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, InputSize)
	for i := range in.Pads {
		b[i] = byte(in.Pads[i])
	}
	b[NumPads] = byte(in.MouseX)
	b[NumPads+1] = byte(in.MouseX >> 8)
	b[NumPads+2] = byte(in.MouseY)
	b[NumPads+3] = byte(in.MouseY >> 8)
	if in.MouseButton {
		b[NumPads+4] = 1
	}
	return b, nil
}

// UnmarshalBinary decodes data created by MarshalBinary.
func (in *InputState) UnmarshalBinary(b []byte) error {
	if len(b) != InputSize {
		return ResultCorruptFile
	}
	for i := range in.Pads {
		in.Pads[i] = Button(b[i])
	}
	in.MouseX = int16(uint16(b[NumPads]) | uint16(b[NumPads+1])<<8)
	in.MouseY = int16(uint16(b[NumPads+2]) | uint16(b[NumPads+3])<<8)
	in.MouseButton = b[NumPads+4] != 0
	return nil
}
