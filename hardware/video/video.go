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
	"fmt"

	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
)

// Offsets of the control registers.
const (
	RegBaseLo = 0x00
	RegBaseHi = 0x01
	RegMode   = 0x20
)

// Mode 2 geometry.
const (
	Mode2        = 0x02
	Mode2Width   = 160
	Mode2Height  = 120
	Mode2RowSize = Mode2Width / 2
)

// VideoSystem is the bus device that controls the display.
type VideoSystem struct {
	// display memory is read through the bus
	mem bus.Memory
	fb  Framebuffer

	base uint16
	mode uint8

	// the next scanline to be rendered
	scanline int

	// each emulated pixel is drawn as a block of scaleX by scaleY pixels
	scaleX int
	scaleY int
}

// NewVideoSystem is the preferred method of initialisation for the VideoSystem
// type. Pixels are scaled to fill the framebuffer as closely as possible.
func NewVideoSystem(mem bus.Memory, fb Framebuffer) *VideoSystem {
	vs := &VideoSystem{
		mem:    mem,
		fb:     fb,
		scaleX: 1,
		scaleY: 1,
	}

	w, h := fb.Dimensions()
	if w >= Mode2Width {
		vs.scaleX = w / Mode2Width
	}
	if h >= Mode2Height {
		vs.scaleY = h / Mode2Height
	}

	return vs
}

func (vs *VideoSystem) String() string {
	return fmt.Sprintf("mode=%#02x base=%#04x scanline=%d", vs.mode, vs.base, vs.scanline)
}

// Plumb a new Memory instance into the video system.
func (vs *VideoSystem) Plumb(mem bus.Memory) {
	vs.mem = mem
}

// Read implements the bus.Device interface. The control registers are write
// only.
func (vs *VideoSystem) Read(_ uint16) uint8 {
	return 0
}

// Write implements the bus.Device interface.
func (vs *VideoSystem) Write(offset uint16, data uint8) {
	switch offset {
	case RegBaseLo:
		vs.base = (vs.base & 0xff00) | uint16(data)
	case RegBaseHi:
		vs.base = (vs.base & 0x00ff) | (uint16(data) << 8)
	case RegMode:
		vs.mode = data
	}
}

// Base returns the base address of display memory.
func (vs *VideoSystem) Base() uint16 {
	return vs.base
}

// Framebuffer returns the framebuffer being drawn to.
func (vs *VideoSystem) Framebuffer() Framebuffer {
	return vs.fb
}

// Mode returns the current display mode.
func (vs *VideoSystem) Mode() uint8 {
	return vs.mode
}

// Scanline returns the number of the next scanline to be rendered.
func (vs *VideoSystem) Scanline() int {
	return vs.scanline
}

// RenderScanline draws the next scanline to the framebuffer. Does nothing if
// the current mode does not produce an image. Returns true if the scanline was
// the last in the frame.
func (vs *VideoSystem) RenderScanline() bool {
	if vs.mode != Mode2 {
		return false
	}

	row := vs.base + uint16(vs.scanline*Mode2RowSize)
	for x := 0; x < Mode2RowSize; x++ {
		b := vs.mem.Read(row + uint16(x))
		vs.plot(x*2, Palette[b>>4])
		vs.plot(x*2+1, Palette[b&0x0f])
	}

	vs.scanline++
	if vs.scanline >= Mode2Height {
		vs.scanline = 0
		vs.fb.NewFrame()
		return true
	}

	return false
}

// RenderFrame draws scanlines until the end of the current frame.
func (vs *VideoSystem) RenderFrame() {
	if vs.mode != Mode2 {
		return
	}
	for !vs.RenderScanline() {
	}
}

func (vs *VideoSystem) plot(x int, colour uint32) {
	for sy := 0; sy < vs.scaleY; sy++ {
		for sx := 0; sx < vs.scaleX; sx++ {
			vs.fb.SetPixel(x*vs.scaleX+sx, vs.scanline*vs.scaleY+sy, colour)
		}
	}
}
