// This file is part of Emulate6502.
//
// Emulate6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emulate6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emulate6502.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package sdlscreen presents the contents of a video.Pixels framebuffer in an
// SDL window.
//
// SDL requires that the window is created and serviced from the main
// thread. The Screen type must therefore only be used from the main
// goroutine, with the emulation running in another goroutine. For example:
//
//	scr, err := sdlscreen.NewScreen("Emulate6502", px, 1.0)
//	...
//	defer scr.Destroy()
//
//	go runEmulation()
//
//	for scr.Service() {
//		time.Sleep(sdlscreen.ServiceInterval)
//	}
package sdlscreen

import (
	"time"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/hardware/video"
	"github.com/veandco/go-sdl2/sdl"
)

// ServiceInterval is the suggested period between calls to Service().
const ServiceInterval = time.Second / 60

// Screen is a simple SDL window showing the most recent frame.
//
// MUST ONLY be used from the main thread.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	px *video.Pixels

	// the frame number of the most recent frame copied to the texture
	lastFrame int
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The window is sized to the pixels dimensions multiplied by the scale.
//
// MUST ONLY be called from the main thread.
func NewScreen(title string, px *video.Pixels, scale float32) (*Screen, error) {
	if scale <= 0 {
		scale = 1.0
	}

	scr := &Screen{
		px:        px,
		lastFrame: -1,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	w, h := px.Dimensions()

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(w)*scale), int32(float32(h)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// the format matches the byte order of the video.Pixels type
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(w), int32(h))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	return scr, nil
}

// Destroy the window and release SDL resources.
//
// MUST ONLY be called from the main thread.
func (scr *Screen) Destroy() {
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
	sdl.Quit()
}

// Service processes pending window events and presents the most recent frame
// if it has changed since the last call. Returns false if the window has been
// closed.
//
// MUST ONLY be called from the main thread.
func (scr *Screen) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false
			}
		}
	}

	var err error
	scr.px.BorrowFrame(func(pixels []uint8, frame int) {
		if frame == scr.lastFrame {
			return
		}
		scr.lastFrame = frame
		err = scr.texture.Update(nil, pixels, scr.px.Pitch())
	})
	if err != nil {
		return true
	}

	_ = scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()

	return true
}
