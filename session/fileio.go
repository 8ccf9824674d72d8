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

package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// fileIO implements the emulation.FileIO interface using the paths in the
// session.
type fileIO struct {
	sess *Session
}

func (fio *fileIO) LoadBattery() (io.ReadCloser, error) {
	return os.Open(fio.sess.SavePath)
}

func (fio *fileIO) SaveBattery() (io.WriteCloser, error) {
	return os.Create(fio.sess.SavePath)
}

// LoadDiskPatch opens the UPS patch for the disk image or, if there is none,
// the IPS patch.
func (fio *fileIO) LoadDiskPatch() (io.ReadCloser, error) {
	f, err := os.Open(fmt.Sprintf("%s.ups", fio.sess.RootPath))
	if errors.Is(err, fs.ErrNotExist) {
		return os.Open(fmt.Sprintf("%s.ips", fio.sess.RootPath))
	}
	return f, err
}

func (fio *fileIO) SaveDiskPatch() (io.WriteCloser, error) {
	return os.Create(fmt.Sprintf("%s.ups", fio.sess.RootPath))
}
