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

// Package catalog enumerates the game images that can be selected from the
// selection screen and tracks which one is highlighted.
package catalog

import (
	"path/filepath"

	"github.com/nstfront/nstfront/archivefs"
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/logger"
)

// Sentinel error patterns.
const (
	EmptySelection       = "catalog: nothing to select"
	DirectoryUnavailable = "catalog: directory unavailable: %v"
)

// Catalog is the list of images in the ROM directory.
type Catalog struct {
	dir    string
	sorted bool

	entries  []string
	selected int
}

// NewCatalog is the preferred method of initialisation for the Catalog type.
// The catalog is empty until Rebuild() is called. If sorted is false the
// entries will be in the order returned by the filesystem.
func NewCatalog(dir string, sorted bool) *Catalog {
	return &Catalog{
		dir:    dir,
		sorted: sorted,
	}
}

// Rebuild scans the directory and resets the selection to the first entry.
// Previous entries are discarded.
//
// If the directory cannot be read the catalog will be empty. The error is
// logged and returned but it is not fatal.
func (c *Catalog) Rebuild() error {
	c.entries = c.entries[:0]
	c.selected = 0

	l, err := archivefs.List(c.dir)
	if err != nil {
		err = curated.Errorf(DirectoryUnavailable, err)
		logger.Log(logger.Allow, "catalog", err)
		return err
	}

	if c.sorted {
		archivefs.Sort(l)
	}

	for _, e := range l {
		c.entries = append(c.entries, e.Name)
	}

	logger.Logf(logger.Allow, "catalog", "%d entries in %s", len(c.entries), c.dir)

	return nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entry names.
func (c *Catalog) Entries() []string {
	return append([]string{}, c.entries...)
}

// Selected returns the index of the selected entry. The value is meaningless
// if Len() is zero.
func (c *Catalog) Selected() int {
	return c.selected
}

// MoveUp selects the previous entry. There is no wrap around.
func (c *Catalog) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown selects the next entry. There is no wrap around.
func (c *Catalog) MoveDown() {
	if c.selected < len(c.entries)-1 {
		c.selected++
	}
}

// CurrentName returns the name of the selected entry.
func (c *Catalog) CurrentName() (string, error) {
	if len(c.entries) == 0 {
		return "", curated.Errorf(EmptySelection)
	}
	return c.entries[c.selected], nil
}

// CurrentPath returns the path of the selected entry.
func (c *Catalog) CurrentPath() (string, error) {
	n, err := c.CurrentName()
	if err != nil {
		return "", err
	}
	return filepath.Join(c.dir, n), nil
}

// Dir returns the directory scanned by the catalog.
func (c *Catalog) Dir() string {
	return c.dir
}
