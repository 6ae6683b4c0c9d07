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

// Package video implements the memory mapped video system. The VideoSystem
// type is a bus device with three write-only control registers:
//
//	offset 0x00	low byte of the base address of display memory
//	offset 0x01	high byte of the base address of display memory
//	offset 0x20	display mode
//
// Reading any offset returns zero.
//
// The display is built one scanline at a time with RenderScanline(). Only
// mode 2 produces an image. Mode 2 is 160x120 pixels with four bits per pixel,
// two pixels per byte with the high nibble on the left. Each row of the image
// is 80 bytes long and rows are stored consecutively from the base address.
//
// Pixels are drawn to a Framebuffer. The Pixels type is a Framebuffer that can
// be safely shared with a display running in another goroutine.
package video
