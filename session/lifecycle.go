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
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/nstfront/nstfront/cartridgeloader"
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
)

// Lifecycle performs the operations that change the session.
type Lifecycle struct {
	sess  *Session
	eng   emulation.Engine
	Prefs *Preferences
}

// NewLifecycle is the preferred method of initialisation for the Lifecycle
// type.
func NewLifecycle(sess *Session, eng emulation.Engine, prefs *Preferences) *Lifecycle {
	return &Lifecycle{
		sess:  sess,
		eng:   eng,
		Prefs: prefs,
	}
}

// Session returns the session being changed.
func (lc *Lifecycle) Session() *Session {
	return lc.sess
}

// Engine returns the emulation engine.
func (lc *Lifecycle) Engine() emulation.Engine {
	return lc.eng
}

// Load the cartridge image in filename. Any cartridge currently loaded is
// unloaded first. On success the machine is powered on.
//
// Errors are curated errors created with one of the load error patterns. On
// error the session is left with nothing loaded and the machine powered off.
func (lc *Lifecycle) Load(filename string) error {
	lc.Unload()

	if err := lc.ConfigurePaths(filename); err != nil {
		return curated.Errorf(InvalidFile, err)
	}

	ld := cartridgeloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		logger.Log(logger.Allow, "session", err)
		return curated.Errorf(CorruptFile, err)
	}

	var patch io.Reader
	if pth, ok := lc.FindSoftPatch(softPatchBase(filename)); ok {
		d, err := os.ReadFile(pth)
		if err != nil {
			logger.Logf(logger.Allow, "session", "soft patch: %v", err)
		} else {
			patch = bytes.NewReader(d)
		}
	}

	err := lc.eng.Load(bytes.NewReader(ld.Data), lc.Prefs.Favored(), patch, &fileIO{sess: lc.sess})
	if err != nil {
		lc.eng.Unload()
		err = loadError(err)
		logger.Log(logger.Allow, "session", err)
		return err
	}

	lc.DetectRegion()

	if lc.eng.IsDisk() {
		if err := lc.eng.Media().Insert(0, 0); err != nil {
			logger.Logf(logger.Allow, "session", "insert disk: %v", err)
		}
		logger.Log(logger.Allow, "session", lc.DiskInfo())
	}

	lc.sess.Hash = ld.Hash
	lc.sess.Loaded = true

	if err := lc.eng.Power(true); err != nil {
		lc.Unload()
		err = loadError(err)
		logger.Log(logger.Allow, "session", err)
		return err
	}

	logger.Logf(logger.Allow, "session", "loaded %s (%s)", ld.Name, lc.sess.Region)

	return nil
}

// Unload powers the machine off and removes the cartridge. It does nothing
// if nothing is loaded.
func (lc *Lifecycle) Unload() {
	if !lc.sess.Loaded {
		return
	}

	if err := lc.eng.Power(false); err != nil {
		logger.Logf(logger.Allow, "session", "power off: %v", err)
	}
	lc.eng.Unload()

	lc.sess.Loaded = false
	lc.sess.Playing = false

	logger.Logf(logger.Allow, "session", "unloaded %s", lc.sess.GameBaseName)
}

// DetectRegion sets the engine to the region the loaded image wants and
// records it in the session.
func (lc *Lifecycle) DetectRegion() emulation.Region {
	r := lc.eng.DesiredRegion()
	lc.eng.SetRegion(r)
	lc.sess.Region = r
	return r
}

// SyncRegion records the region the engine is running in. Used after the
// engine has been restored from a snapshot, which may have been taken in a
// different region.
func (lc *Lifecycle) SyncRegion() emulation.Region {
	lc.sess.Region = lc.eng.Region()
	return lc.sess.Region
}

// SaveState writes the engine state to the file for the quicksave slot. The
// path of the file is returned.
func (lc *Lifecycle) SaveState(slot int) (string, error) {
	if !lc.sess.Loaded {
		return "", curated.Errorf(NotLoaded)
	}

	pth, err := lc.QuickSavePath(slot)
	if err != nil {
		return "", curated.Errorf("session: save state: %v", err)
	}

	f, err := os.Create(pth)
	if err != nil {
		return "", curated.Errorf("session: save state: %v", err)
	}

	err = lc.eng.SaveState(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", curated.Errorf("session: save state: %v", err)
	}

	logger.Logf(logger.Allow, "session", "state saved: %s", pth)

	return pth, nil
}

// LoadState restores the engine state from the file for the quicksave slot.
// If the file does not exist the StateNotFound error is returned and nothing
// changes. The path of the file is returned.
func (lc *Lifecycle) LoadState(slot int) (string, error) {
	if !lc.sess.Loaded {
		return "", curated.Errorf(NotLoaded)
	}

	pth, err := lc.QuickSavePath(slot)
	if err != nil {
		return "", curated.Errorf("session: load state: %v", err)
	}

	if _, err := os.Stat(pth); errors.Is(err, fs.ErrNotExist) {
		return pth, curated.Errorf(StateNotFound, pth)
	}

	f, err := os.Open(pth)
	if err != nil {
		return pth, curated.Errorf("session: load state: %v", err)
	}
	defer f.Close()

	if err := lc.eng.LoadState(f); err != nil {
		return pth, curated.Errorf("session: load state: %v", err)
	}
	lc.SyncRegion()

	logger.Logf(logger.Allow, "session", "state loaded: %s", pth)

	return pth, nil
}

// ResetMachine resets the machine. Disk system images are returned to the
// first side of the first disk.
func (lc *Lifecycle) ResetMachine(hard bool) error {
	if !lc.sess.Loaded {
		return curated.Errorf(NotLoaded)
	}

	if err := lc.eng.Reset(hard); err != nil {
		return curated.Errorf("session: reset: %v", err)
	}

	if lc.eng.IsDisk() {
		m := lc.eng.Media()
		_ = m.Eject()
		if err := m.Insert(0, 0); err != nil {
			return curated.Errorf("session: reset: %v", err)
		}
	}

	return nil
}
