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

package video_test

import (
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/hardware/memory/ram"
	"github.com/jetsetilly/emulate6502/hardware/video"
	"github.com/jetsetilly/emulate6502/test"
)

func newSystem(t *testing.T) (*bus.Bus, *video.VideoSystem, *video.Pixels) {
	t.Helper()

	b := bus.NewBus()
	px := video.NewPixels(video.DefaultWidth, video.DefaultHeight)
	vs := video.NewVideoSystem(b, px)
	b.Register(0xfe00, 0xfeff, vs)
	b.Register(0x0000, 0xffff, ram.NewRAM(ram.Size))

	return b, vs, px
}

func TestRegisters(t *testing.T) {
	b, vs, _ := newSystem(t)

	b.Write(0xfe00, 0x34)
	b.Write(0xfe01, 0x12)
	b.Write(0xfe20, video.Mode2)
	test.ExpectEquality(t, vs.Base(), 0x1234)
	test.ExpectEquality(t, vs.Mode(), video.Mode2)

	// changing the low byte leaves the high byte alone
	b.Write(0xfe00, 0x00)
	test.ExpectEquality(t, vs.Base(), 0x1200)

	// registers are write only
	test.ExpectEquality(t, b.Read(0xfe00), 0x00)
	test.ExpectEquality(t, b.Read(0xfe20), 0x00)

	// the registers are not backed by the RAM underneath
	b.Write(0xfe10, 0xff)
	test.ExpectEquality(t, b.Read(0xfe10), 0x00)
}

func TestNoImageInOtherModes(t *testing.T) {
	_, vs, px := newSystem(t)
	test.ExpectFailure(t, vs.RenderScanline())
	test.ExpectEquality(t, vs.Scanline(), 0)
	vs.RenderFrame()
	test.ExpectEquality(t, px.Frame(), 0)
}

func TestMode2(t *testing.T) {
	b, vs, px := newSystem(t)

	b.Write(0xfe00, 0x00)
	b.Write(0xfe01, 0x30)
	b.Write(0xfe20, video.Mode2)

	// first two pixels of the first row are red and green
	b.Write(0x3000, 0x12)

	// last two pixels of the second row are white and grey
	b.Write(0x3000+video.Mode2RowSize*2-1, 0x78)

	test.ExpectFailure(t, vs.RenderScanline())
	test.ExpectEquality(t, vs.Scanline(), 1)

	vs.RenderFrame()
	test.ExpectEquality(t, vs.Scanline(), 0)
	test.ExpectEquality(t, px.Frame(), 1)

	// 160x120 is scaled by 4x3 to fill the framebuffer
	test.ExpectEquality(t, px.Colour(0, 0), 0xff0000)
	test.ExpectEquality(t, px.Colour(3, 2), 0xff0000)
	test.ExpectEquality(t, px.Colour(4, 0), 0x00ff00)
	test.ExpectEquality(t, px.Colour(8, 0), 0x000000)
	test.ExpectEquality(t, px.Colour(639-4, 3), 0xffffff)
	test.ExpectEquality(t, px.Colour(639, 5), 0x555555)

	// the scanline counter wraps after the last line
	for i := 0; i < video.Mode2Height-1; i++ {
		test.ExpectFailure(t, vs.RenderScanline())
	}
	test.ExpectSuccess(t, vs.RenderScanline())
	test.ExpectEquality(t, px.Frame(), 2)
}

func TestPixelsOutOfRange(t *testing.T) {
	px := video.NewPixels(4, 4)
	px.SetPixel(-1, 0, 0xffffff)
	px.SetPixel(4, 0, 0xffffff)
	px.SetPixel(3, 3, 0x123456)
	px.NewFrame()
	test.ExpectEquality(t, px.Colour(3, 3), 0x123456)
	test.ExpectEquality(t, px.Colour(4, 4), 0)
	test.ExpectEquality(t, px.Pitch(), 16)

	px.BorrowFrame(func(pixels []uint8, frame int) {
		test.ExpectEquality(t, len(pixels), 64)
		test.ExpectEquality(t, frame, 1)
		test.ExpectEquality(t, pixels[len(pixels)-1], 0xff)
	})
}
