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

package sdlplay

import (
	"fmt"

	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the default size of each emulated pixel in screen pixels.
const defaultScale = 3

// the aspect bias of a pixel on the emulated screen
const pixelAspect = 8.0 / 7.0

// SdlPlay is a simple SDL implementation of the gui.Video interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale  float32
	locked bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. SDL
// video must have been initialised.
func NewSdlPlay(scale float32) *SdlPlay {
	if scale <= 0 {
		scale = defaultScale
	}
	return &SdlPlay{scale: scale}
}

// CreateSurface implements the gui.Video interface.
func (scr *SdlPlay) CreateSurface(region emulation.Region) error {
	scr.DestroySurface()

	w := int32(float32(emulation.ScreenWidth) * scr.scale * pixelAspect)
	h := int32(float32(emulation.ScreenHeight) * scr.scale)

	var err error

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, region),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.DestroySurface()
		return curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to fill the window
	err = scr.renderer.SetLogicalSize(int32(float32(emulation.ScreenWidth)*pixelAspect), emulation.ScreenHeight)
	if err != nil {
		scr.DestroySurface()
		return curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the emulated screen. we copy the pixels to
	// it every frame
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		emulation.ScreenWidth,
		emulation.ScreenHeight)
	if err != nil {
		scr.DestroySurface()
		return curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "surface created (%dx%d)", w, h)

	return nil
}

// DestroySurface implements the gui.Video interface. It is safe to call
// even if the surface has not been created.
func (scr *SdlPlay) DestroySurface() {
	if scr.locked {
		scr.texture.Unlock()
		scr.locked = false
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
}

// LockFrame implements the gui.Video interface.
func (scr *SdlPlay) LockFrame() (emulation.VideoOutput, error) {
	if scr.texture == nil {
		return emulation.VideoOutput{}, curated.Errorf("sdlplay: no surface")
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return emulation.VideoOutput{}, curated.Errorf("sdlplay: %v", err)
	}
	scr.locked = true

	return emulation.VideoOutput{
		Pixels: pixels,
		Pitch:  pitch,
	}, nil
}

// UnlockFrame implements the gui.Video interface.
func (scr *SdlPlay) UnlockFrame() {
	if !scr.locked {
		return
	}
	scr.texture.Unlock()
	scr.locked = false

	if err := scr.renderer.Clear(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	scr.renderer.Present()
}
