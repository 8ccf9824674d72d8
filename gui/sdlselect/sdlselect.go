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

// Package sdlselect implements the selectscreen.Renderer interface using SDL
// and SDL_ttf. The selection screen has a window of its own which is
// destroyed when a cartridge starts playing.
//
// Text is drawn with the font file named in the call to NewSelect(). If the
// font cannot be opened then the Go Mono font is used instead.
package sdlselect

import (
	"strings"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/selectscreen"
	"github.com/nstfront/nstfront/version"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gomono"
)

// font sizes for the header and for the rows.
const (
	headerSize = 24
	rowSize    = 16
)

// window dimensions when first opened.
const (
	windowWidth  = 800
	windowHeight = 600
)

// space around the edge of the window.
const margin = 10

var (
	background = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	foreground = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	highlight  = sdl.Color{R: 255, G: 200, B: 0, A: 255}
)

// Select implements the selectscreen.Renderer interface.
type Select struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	header *ttf.Font
	row    *ttf.Font

	headerHeight int32
	rowHeight    int32
}

// NewSelect is the preferred method of initialisation for the Select type.
// SDL video and SDL_ttf must have been initialised.
func NewSelect(fontPath string) (*Select, error) {
	sel := &Select{}

	var err error

	sel.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowWidth, windowHeight,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlselect: %v", err)
	}

	sel.renderer, err = sdl.CreateRenderer(sel.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		sel.Destroy()
		return nil, curated.Errorf("sdlselect: %v", err)
	}

	sel.header, err = openFont(fontPath, headerSize)
	if err != nil {
		sel.Destroy()
		return nil, err
	}

	sel.row, err = openFont(fontPath, rowSize)
	if err != nil {
		sel.Destroy()
		return nil, err
	}

	sel.headerHeight = int32(sel.header.Height()) + margin*2
	sel.rowHeight = int32(sel.row.Height()) + 2

	return sel, nil
}

// openFont opens the font at the path or the fallback font if that is not
// possible.
func openFont(path string, size int) (*ttf.Font, error) {
	if path != "" {
		f, err := ttf.OpenFont(path, size)
		if err == nil {
			return f, nil
		}
		logger.Logf(logger.Allow, "sdlselect", "%v: using fallback font", err)
	}

	rw, err := sdl.RWFromMem(gomono.TTF)
	if err != nil {
		return nil, curated.Errorf("sdlselect: %v", err)
	}

	f, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, curated.Errorf("sdlselect: %v", err)
	}

	return f, nil
}

// Clear implements the selectscreen.Renderer interface.
func (sel *Select) Clear() {
	_ = sel.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	_ = sel.renderer.Clear()
}

// Header implements the selectscreen.Renderer interface.
func (sel *Select) Header(text string) {
	sel.text(sel.header, text, margin, foreground)
}

// Row implements the selectscreen.Renderer interface. Rows that do not fit in
// the window are not drawn.
func (sel *Select) Row(n int, text string) {
	y := sel.headerHeight + int32(n)*sel.rowHeight

	_, h := sel.window.GetSize()
	if y+sel.rowHeight > h {
		return
	}

	col := foreground
	if strings.HasPrefix(text, selectscreen.SelectedMarker) {
		col = highlight
	}

	sel.text(sel.row, text, y, col)
}

func (sel *Select) text(font *ttf.Font, text string, y int32, col sdl.Color) {
	if text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, col)
	if err != nil {
		logger.Log(logger.Allow, "sdlselect", err)
		return
	}
	defer surface.Free()

	texture, err := sel.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		logger.Log(logger.Allow, "sdlselect", err)
		return
	}
	defer texture.Destroy()

	dst := &sdl.Rect{X: margin, Y: y, W: surface.W, H: surface.H}
	if err := sel.renderer.Copy(texture, nil, dst); err != nil {
		logger.Log(logger.Allow, "sdlselect", err)
	}
}

// Present implements the selectscreen.Renderer interface.
func (sel *Select) Present() {
	sel.renderer.Present()
}

// Destroy implements the selectscreen.Renderer interface.
func (sel *Select) Destroy() {
	if sel.header != nil {
		sel.header.Close()
		sel.header = nil
	}
	if sel.row != nil {
		sel.row.Close()
		sel.row = nil
	}
	if sel.renderer != nil {
		_ = sel.renderer.Destroy()
		sel.renderer = nil
	}
	if sel.window != nil {
		_ = sel.window.Destroy()
		sel.window = nil
	}
}
