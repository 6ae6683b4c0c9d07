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

package hardware_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emulate6502/govern"
	"github.com/jetsetilly/emulate6502/hardware"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/hardware/video"
	"github.com/jetsetilly/emulate6502/romloader"
	"github.com/jetsetilly/emulate6502/test"
)

func newMachine(t *testing.T, layout hardware.Layout, program []byte) *hardware.Machine {
	t.Helper()

	m, err := hardware.NewMachine(nil, layout, nil)
	test.DemandSuccess(t, err)

	_, err = romloader.LoadBytes(m.Mem, 0x0400, program)
	test.DemandSuccess(t, err)
	bus.SetVector(m.Mem, bus.Reset, 0x0400)

	m.SetUncapped(true)
	m.Reset()

	return m
}

func TestLayout(t *testing.T) {
	l, err := hardware.ParseLayout("MICRO")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, hardware.LayoutMicro)

	l, err = hardware.ParseLayout("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, hardware.LayoutFlat)

	_, err = hardware.ParseLayout("bbc")
	test.ExpectFailure(t, err)
}

func TestFlat(t *testing.T) {
	m := newMachine(t, hardware.LayoutFlat, []byte{0xa9, 0x69, 0x8d, 0x00, 0xfe})
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x0400))
	test.ExpectEquality(t, len(m.Mem.Bindings()), 1)
	test.ExpectEquality(t, m.ROM == nil, true)
	test.ExpectEquality(t, m.Video == nil, true)

	test.ExpectEquality(t, m.Step(), 2)
	test.ExpectEquality(t, m.Step(), 4)

	// in the flat layout, video addresses are ordinary RAM
	test.ExpectEquality(t, m.RAM.Read(0xfe00), uint8(0x69))
	test.ExpectSuccess(t, strings.HasPrefix(m.String(), "flat layout"))
}

func TestMicro(t *testing.T) {
	m := newMachine(t, hardware.LayoutMicro, []byte{0xea})
	test.ExpectEquality(t, len(m.Mem.Bindings()), 3)

	// load a ROM bank from a file
	dir := t.TempDir()
	filename := filepath.Join(dir, "basic.rom")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0x4c, 0x00, 0x80}, 0o644))
	test.ExpectSuccess(t, m.Attach(romloader.NewLoader(filename, hardware.ROMOrigin)))
	test.ExpectEquality(t, m.ROM.NumBanks(), 1)
	test.ExpectEquality(t, m.ROM.Selected(), 0)

	test.ExpectEquality(t, m.Mem.Read(0x8000), uint8(0x4c))

	// writes to the ROM are ignored and the RAM underneath is not visible
	m.Mem.Write(0x8000, 0xff)
	test.ExpectEquality(t, m.Mem.Read(0x8000), uint8(0x4c))
	test.ExpectEquality(t, m.RAM.Read(0x8000), uint8(0x00))

	// RAM is visible either side of the ROM
	m.Mem.Write(0xc000, 0x01)
	test.ExpectEquality(t, m.Mem.Read(0xc000), uint8(0x01))
	m.Mem.Write(0x7fff, 0x02)
	test.ExpectEquality(t, m.Mem.Read(0x7fff), uint8(0x02))

	// the video registers are write-only
	m.Mem.Write(0xfe20, video.Mode2)
	test.ExpectEquality(t, m.Video.Mode(), uint8(video.Mode2))
	test.ExpectEquality(t, m.Mem.Read(0xfe20), uint8(0x00))
	test.ExpectEquality(t, m.RAM.Read(0xfe20), uint8(0x00))

	// data loaded to other addresses is written to the bus
	test.ExpectSuccess(t, m.Attach(romloader.Loader{Origin: 0x2000, Data: []byte{0xaa}}))
	test.ExpectEquality(t, m.Mem.Read(0x2000), uint8(0xaa))
}

func TestVideoClocking(t *testing.T) {
	m := newMachine(t, hardware.LayoutMicro, []byte{
		0xa9, 0x02, 0x8d, 0x20, 0xfe, // LDA #$02; STA $fe20
		0xa9, 0x00, 0x8d, 0x00, 0xfe, // LDA #$00; STA $fe00
		0xa9, 0x10, 0x8d, 0x01, 0xfe, // LDA #$10; STA $fe01
		0x4c, 0x0f, 0x04, // JMP $040f
	})

	for i := 0; i < video.Mode2Width*video.Mode2Height/2; i++ {
		m.Mem.Write(0x1000+uint16(i), 0x12)
	}

	px, ok := m.Video.Framebuffer().(*video.Pixels)
	test.DemandSuccess(t, ok)

	for i := 0; i < 100000 && px.Frame() == 0; i++ {
		m.Step()
	}

	test.DemandEquality(t, px.Frame(), 1)
	test.ExpectEquality(t, m.Video.Base(), uint16(0x1000))
	test.ExpectEquality(t, px.Colour(0, 0), video.Palette[1])
	test.ExpectEquality(t, px.Colour(3, 2), video.Palette[1])
	test.ExpectEquality(t, px.Colour(4, 0), video.Palette[2])
	test.ExpectEquality(t, px.Colour(639, 359), video.Palette[2])
}

func TestRunUntil(t *testing.T) {
	m := newMachine(t, hardware.LayoutFlat, []byte{0xa2, 0x05, 0xca, 0xd0, 0xfd, 0xea})

	ok, err := m.RunUntil(context.Background(), 0x0405, 0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.CPU.X.Value(), uint8(0x00))

	// instruction limit reached before break address
	m.Reset()
	ok, err = m.RunUntil(context.Background(), 0x0405, 3)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, m.CPU.X.Value(), uint8(0x04))

	// starting at the break address runs the loop once
	m = newMachine(t, hardware.LayoutFlat, []byte{0xe8, 0x4c, 0x00, 0x04})
	ok, err = m.RunUntil(context.Background(), 0x0400, 0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.CPU.X.Value(), uint8(0x01))
}

func TestRun(t *testing.T) {
	m := newMachine(t, hardware.LayoutFlat, []byte{0xe8, 0x4c, 0x00, 0x04})

	var n int
	err := m.Run(context.Background(), func() (govern.State, error) {
		n++
		switch n {
		case 1:
			return govern.Paused, nil
		case 10:
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// nine instructions are run because the first call to continueCheck()
	// paused the emulation for one iteration. five of those are INX
	test.ExpectEquality(t, m.CPU.X.Value(), uint8(0x05))

	// unsupported state
	err = m.Run(context.Background(), func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunCancel(t *testing.T) {
	m := newMachine(t, hardware.LayoutFlat, []byte{0x4c, 0x00, 0x04})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, nil)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))

	_, err = m.RunUntil(ctx, 0x1234, 0)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
}

func TestSpeed(t *testing.T) {
	m, err := hardware.NewMachine(nil, hardware.LayoutFlat, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Rate(), 1000.0)

	test.ExpectSuccess(t, m.Instance.Prefs.Speed.Set(4.0))
	test.ExpectEquality(t, m.Rate(), 4000.0)

	test.ExpectFailure(t, m.Instance.Prefs.Speed.Set(0.0))
	test.ExpectEquality(t, m.Rate(), 4000.0)

	m.SetUncapped(true)
	test.ExpectEquality(t, m.Rate(), 0.0)
	m.SetUncapped(false)
	test.ExpectEquality(t, m.Rate(), 4000.0)

	// changing speed while uncapped does not turn pacing back on
	m.SetUncapped(true)
	test.ExpectSuccess(t, m.Instance.Prefs.Speed.Set(2.0))
	test.ExpectEquality(t, m.Rate(), 0.0)
	m.SetUncapped(false)
	test.ExpectEquality(t, m.Rate(), 2000.0)
}
