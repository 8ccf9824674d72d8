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

package selectscreen

import (
	"fmt"

	"github.com/nstfront/nstfront/catalog"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/userinput"
)

// Header is drawn above the list of games.
const Header = "----------Select A Game----------"

// MaxNameLength is the number of characters of an entry name that will be
// shown. Longer names are truncated.
const MaxNameLength = 49

// Row markers.
const (
	SelectedMarker   = ">  "
	UnselectedMarker = "   "
)

// Renderer is the drawing surface for the selection screen.
type Renderer interface {
	Clear()
	Header(text string)
	Row(n int, text string)
	Present()
	Destroy()
}

// Screen is the game selection screen.
type Screen struct {
	catalog  *catalog.Catalog
	renderer Renderer
	bindings userinput.Bindings
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The catalog is rebuilt and the screen is drawn.
func NewScreen(cat *catalog.Catalog, renderer Renderer, bindings userinput.Bindings) *Screen {
	scr := &Screen{
		catalog:  cat,
		renderer: renderer,
		bindings: bindings,
	}

	// an unavailable directory is logged by the catalog and leaves it empty
	_ = scr.catalog.Rebuild()
	scr.Render()

	return scr
}

// Catalog returns the catalog being presented.
func (scr *Screen) Catalog() *catalog.Catalog {
	return scr.catalog
}

// Row returns the text for the entry at index n, exactly as it will be
// drawn.
func (scr *Screen) Row(n int, name string) string {
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	if n == scr.catalog.Selected() {
		return fmt.Sprintf("%s%s", SelectedMarker, name)
	}
	return fmt.Sprintf("%s%s", UnselectedMarker, name)
}

// Render redraws the entire screen.
func (scr *Screen) Render() {
	scr.renderer.Clear()
	scr.renderer.Header(Header)
	for i, n := range scr.catalog.Entries() {
		scr.renderer.Row(i, scr.Row(i, n))
	}
	scr.renderer.Present()
}

// HandleEvent returns the mode the session should be in after the event.
// Confirming a selection returns ModeSelected. The screen makes no decision
// about the back control, that is the responsibility of the caller.
func (scr *Screen) HandleEvent(ev userinput.Event) emulation.Mode {
	switch scr.bindings.Menu(ev) {
	case userinput.MenuResize:
		scr.Render()
	case userinput.MenuUp:
		scr.catalog.MoveUp()
		scr.Render()
	case userinput.MenuDown:
		scr.catalog.MoveDown()
		scr.Render()
	case userinput.MenuConfirm:
		if scr.catalog.Len() == 0 {
			logger.Log(logger.Allow, "selectscreen", "nothing to confirm")
			return emulation.ModeSelecting
		}
		return emulation.ModeSelected
	}
	return emulation.ModeSelecting
}

// Destroy the screen's renderer.
func (scr *Screen) Destroy() {
	scr.renderer.Destroy()
}
