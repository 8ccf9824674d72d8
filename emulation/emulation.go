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

import (
	"io"
)

// Engine is the emulation engine as seen by the front end. Methods that can
// fail return an error. Errors that originate in the engine are of type
// Result.
type Engine interface {
	// Load hands an image to the engine. The patch argument is optional and
	// is applied to the image before the engine sees it. The FileIO
	// implementation is retained by the engine and used for battery RAM and
	// disk writes for the lifetime of the loaded image.
	Load(image io.Reader, system FavoredSystem, patch io.Reader, fio FileIO) error

	// Unload removes the image. The engine is powered off first if required.
	Unload()

	// Loaded returns true if an image is resident.
	Loaded() bool

	Power(on bool) error
	Reset(hard bool) error

	// ExecuteFrame runs the engine for exactly one frame. The video buffer is
	// only valid for the duration of the call.
	ExecuteFrame(video VideoOutput, audio *AudioOutput, input *InputState) error

	SaveState(w io.Writer) error
	LoadState(r io.Reader) error

	// DesiredRegion is the region the loaded image is intended for.
	DesiredRegion() Region
	SetRegion(region Region)
	Region() Region

	// IsDisk returns true if the loaded image is removable media (a disk
	// system image). Media() returns nil if IsDisk() is false.
	IsDisk() bool
	Media() Media
}

// Media is the removable media attached to the engine.
type Media interface {
	Insert(disk int, side int) error
	Eject() error
	ChangeSide() error
	CanChangeSide() bool
	CurrentDisk() int
	CurrentSide() int
	NumDisks() int
	NumSides() int
}

// FileIO is used by the engine to read and write the files that belong to a
// loaded image. Each function opens the file on demand. A function that
// returns an error satisfying errors.Is(err, fs.ErrNotExist) indicates that
// there is nothing to load, which is not an error condition for the engine.
type FileIO interface {
	LoadBattery() (io.ReadCloser, error)
	SaveBattery() (io.WriteCloser, error)
	LoadDiskPatch() (io.ReadCloser, error)
	SaveDiskPatch() (io.WriteCloser, error)
}

// Region is the timing profile of the emulated machine.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	switch r {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return "unknown region"
}

// FrameRate returns the number of frames per second for the region.
func (r Region) FrameRate() int {
	if r == PAL {
		return 50
	}
	return 60
}

// FavoredSystem is the user's region preference. FavorAuto means that the
// region specified by the image should be used.
type FavoredSystem int

// List of valid FavoredSystem values.
const (
	FavorAuto FavoredSystem = iota
	FavorNTSC
	FavorPAL
)

func (f FavoredSystem) String() string {
	switch f {
	case FavorNTSC:
		return "NTSC"
	case FavorPAL:
		return "PAL"
	}
	return "AUTO"
}

// ParseFavoredSystem converts the string form of a FavoredSystem. Unknown
// strings are treated as FavorAuto.
func ParseFavoredSystem(s string) FavoredSystem {
	switch s {
	case "NTSC", "ntsc":
		return FavorNTSC
	case "PAL", "pal":
		return FavorPAL
	}
	return FavorAuto
}

// Mode is the control state of the front end.
type Mode int

// List of valid Mode values. ModeSelected is transitional and never survives
// a full iteration of the play loop.
const (
	ModeSelecting Mode = iota
	ModeSelected
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModeSelecting:
		return "selecting"
	case ModeSelected:
		return "selected"
	case ModePlaying:
		return "playing"
	}
	return "unknown mode"
}
