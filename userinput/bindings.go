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
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/nstfront/nstfront/curated"

	"github.com/BurntSushi/toml"
)

// Keymapping assigns keys to the buttons of an emulated pad.
type Keymapping struct {
	A      string
	B      string
	Select string
	Start  string
	Up     string
	Down   string
	Left   string
	Right  string
}

// Joymapping assigns gamepad buttons to the buttons of an emulated pad, and
// to the confirm/back actions of the selection screen.
type Joymapping struct {
	A       int
	B       int
	Select  int
	Start   int
	Confirm int
	Back    int
}

// Hotkeys are the keys that control the session rather than the emulated
// machine.
type Hotkeys struct {
	Confirm    string
	Back       string
	Quit       string
	QuickSave  string
	QuickLoad  string
	Slots      []string
	MovieSave  string
	MovieLoad  string
	MovieStop  string
	Pause      string
	SoftReset  string
	HardReset  string
	FlipSide   string
	SwitchDisk string
	Rewind     string
}

// Bindings is the persisted input configuration.
type Bindings struct {
	Player1  Keymapping
	Player2  Keymapping
	Joystick Joymapping
	Hotkeys  Hotkeys
}

// DefaultBindings returns the input configuration used when none has been
// saved.
func DefaultBindings() Bindings {
	return Bindings{
		Player1: Keymapping{
			A:      "X",
			B:      "Z",
			Select: "Right Shift",
			Start:  "Return",
			Up:     "Up",
			Down:   "Down",
			Left:   "Left",
			Right:  "Right",
		},
		Player2: Keymapping{
			A:      "H",
			B:      "G",
			Select: "Y",
			Start:  "U",
			Up:     "I",
			Down:   "K",
			Left:   "J",
			Right:  "L",
		},
		Joystick: Joymapping{
			A:       1,
			B:       0,
			Select:  6,
			Start:   7,
			Confirm: 0,
			Back:    4,
		},
		Hotkeys: Hotkeys{
			Confirm:    "Return",
			Back:       "Escape",
			Quit:       "Q",
			QuickSave:  "F5",
			QuickLoad:  "F7",
			Slots:      []string{"1", "2", "3", "4"},
			MovieSave:  "F9",
			MovieLoad:  "F10",
			MovieStop:  "F11",
			Pause:      "P",
			SoftReset:  "F2",
			HardReset:  "F3",
			FlipSide:   "F12",
			SwitchDisk: "F4",
			Rewind:     "Backspace",
		},
	}
}

// SaveBindings writes the bindings in TOML format.
func SaveBindings(b Bindings, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(b); err != nil {
		return curated.Errorf("userinput: %v", err)
	}
	return nil
}

// LoadBindings reads bindings in TOML format. Values missing from the input
// take the default value.
func LoadBindings(r io.Reader) (Bindings, error) {
	b := DefaultBindings()
	if _, err := toml.NewDecoder(r).Decode(&b); err != nil {
		return DefaultBindings(), curated.Errorf("userinput: %v", err)
	}
	return b, nil
}

// LoadBindingsFile is like LoadBindings but reads from the named file. A
// missing file is not an error and the default bindings are returned.
func LoadBindingsFile(filename string) (Bindings, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultBindings(), nil
		}
		return DefaultBindings(), curated.Errorf("userinput: %v", err)
	}
	defer f.Close()
	return LoadBindings(f)
}

// SaveBindingsFile is like SaveBindings but writes to the named file.
func SaveBindingsFile(b Bindings, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("userinput: %v", err)
	}
	err = SaveBindings(b, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf("userinput: %v", cerr)
	}
	return err
}
