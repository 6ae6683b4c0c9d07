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

package video

import (
	"sync"
)

// Framebuffer is the destination for pixels drawn by the VideoSystem.
type Framebuffer interface {
	Dimensions() (width int, height int)

	// SetPixel is called with 0xRRGGBB colours. Coordinates outside of the
	// framebuffer should be ignored
	SetPixel(x int, y int, colour uint32)

	// NewFrame is called after the last scanline of a frame has been drawn
	NewFrame()
}

// Default dimensions of the Pixels type.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// Pixels is an in-memory implementation of Framebuffer. Pixels are stored as
// four bytes in the order red, green, blue, alpha.
//
// Pixels are drawn to a back buffer, which is copied to the front buffer when
// NewFrame() is called. The front buffer can be borrowed from another
// goroutine.
type Pixels struct {
	width  int
	height int

	back []uint8

	crit  sync.Mutex
	front []uint8
	frame int
}

// NewPixels is the preferred method of initialisation for the Pixels type.
func NewPixels(width int, height int) *Pixels {
	return &Pixels{
		width:  width,
		height: height,
		back:   make([]uint8, width*height*4),
		front:  make([]uint8, width*height*4),
	}
}

// Dimensions implements the Framebuffer interface.
func (px *Pixels) Dimensions() (int, int) {
	return px.width, px.height
}

// Pitch returns the number of bytes in each row of pixels.
func (px *Pixels) Pitch() int {
	return px.width * 4
}

// SetPixel implements the Framebuffer interface.
func (px *Pixels) SetPixel(x int, y int, colour uint32) {
	if x < 0 || y < 0 || x >= px.width || y >= px.height {
		return
	}
	i := (y*px.width + x) * 4
	px.back[i] = uint8(colour >> 16)
	px.back[i+1] = uint8(colour >> 8)
	px.back[i+2] = uint8(colour)
	px.back[i+3] = 0xff
}

// NewFrame implements the Framebuffer interface.
func (px *Pixels) NewFrame() {
	px.crit.Lock()
	defer px.crit.Unlock()
	copy(px.front, px.back)
	px.frame++
}

// Frame returns the number of completed frames.
func (px *Pixels) Frame() int {
	px.crit.Lock()
	defer px.crit.Unlock()
	return px.frame
}

// BorrowFrame gives the provided function the critical section and access to
// the most recently completed frame. The slice must not be retained after the
// function returns.
func (px *Pixels) BorrowFrame(f func(pixels []uint8, frame int)) {
	px.crit.Lock()
	defer px.crit.Unlock()
	f(px.front, px.frame)
}

// Colour returns the 0xRRGGBB colour of the pixel in the most recently
// completed frame.
func (px *Pixels) Colour(x int, y int) uint32 {
	px.crit.Lock()
	defer px.crit.Unlock()
	if x < 0 || y < 0 || x >= px.width || y >= px.height {
		return 0
	}
	i := (y*px.width + x) * 4
	return uint32(px.front[i])<<16 | uint32(px.front[i+1])<<8 | uint32(px.front[i+2])
}
