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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/hardware/cpu"
	"github.com/jetsetilly/emulate6502/hardware/instance"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/hardware/memory/pagedrom"
	"github.com/jetsetilly/emulate6502/hardware/memory/ram"
	"github.com/jetsetilly/emulate6502/hardware/video"
	"github.com/jetsetilly/emulate6502/performance/limiter"
	"github.com/jetsetilly/emulate6502/prefs"
	"github.com/jetsetilly/emulate6502/romloader"
)

// Layout specifies the arrangement of devices on the bus.
type Layout int

// List of valid Layout values.
const (
	LayoutFlat Layout = iota
	LayoutMicro
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutMicro:
		return "micro"
	}
	return ""
}

// ParseLayout converts a string to a Layout value.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return LayoutFlat, nil
	case "micro":
		return LayoutMicro, nil
	}
	return LayoutFlat, curated.Errorf("hardware: unknown layout (%s)", s)
}

// Address ranges of the devices in the micro layout.
const (
	VideoOrigin = uint16(0xfe00)
	VideoMemtop = uint16(0xfeff)
	ROMOrigin   = uint16(0x8000)
	ROMMemtop   = ROMOrigin + pagedrom.BankSize - 1
)

// CyclesPerScanline is the number of CPU cycles between the rendering of
// each video scanline.
const CyclesPerScanline = 64

// Machine is the main container for the emulated components.
type Machine struct {
	Instance *instance.Instance
	Layout   Layout

	CPU *cpu.CPU
	Mem *bus.Bus
	RAM *ram.RAM

	// nil in the flat layout
	ROM   *pagedrom.PagedROM
	Video *video.VideoSystem

	limiter *limiter.Limiter

	// changes to the speed preference do not affect the limiter while
	// uncapped is true
	uncapped bool

	// cycles consumed since the last video scanline
	videoCycles int
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The framebuffer argument is only used by the micro layout. If it
// is nil then an instance of video.Pixels will be created.
//
// The machine has not been reset. Call Reset() once any ROM data has been
// attached.
func NewMachine(ins *instance.Instance, layout Layout, fb video.Framebuffer) (*Machine, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(nil, nil)
		if err != nil {
			return nil, curated.Errorf("hardware: %v", err)
		}
	}

	m := &Machine{
		Instance: ins,
		Layout:   layout,
		Mem:      bus.NewBus(),
		RAM:      ram.NewRAM(ram.Size),
	}

	switch layout {
	case LayoutFlat:
		m.Mem.Register(0x0000, 0xffff, m.RAM)

	case LayoutMicro:
		if fb == nil {
			fb = video.NewPixels(video.DefaultWidth, video.DefaultHeight)
		}
		m.Video = video.NewVideoSystem(m.Mem, fb)
		m.ROM = pagedrom.NewPagedROM()

		// order is important. the RAM must be registered last
		m.Mem.Register(VideoOrigin, VideoMemtop, m.Video)
		m.Mem.Register(ROMOrigin, ROMMemtop, m.ROM)
		m.Mem.Register(0x0000, 0xffff, m.RAM)

	default:
		return nil, curated.Errorf("hardware: unsupported layout (%d)", layout)
	}

	m.CPU = cpu.NewCPU(ins, m.Mem)

	m.limiter = limiter.NewLimiter(limiter.NominalRate)
	m.limiter.SetSpeed(ins.Prefs.Speed.Get().(float64))
	ins.Prefs.Speed.SetHookPost(func(v prefs.Value) error {
		if !m.uncapped {
			m.limiter.SetSpeed(v.(float64))
		}
		return nil
	})

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s layout\n%s", m.Layout, m.Mem)
}

// Reset the CPU. The PC is loaded from the reset vector.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.videoCycles = 0
}

// Attach loaded ROM data to the bus at the loader's origin address. In the
// micro layout, data with an origin of ROMOrigin is added as a new ROM bank
// rather than being written to the bus. The first bank to be added is
// selected.
func (m *Machine) Attach(ld romloader.Loader) error {
	if !ld.HasLoaded() {
		if err := ld.Load(); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}

	if m.ROM != nil && ld.Origin == ROMOrigin {
		bank, err := m.ROM.AddBank(ld.Data)
		if err != nil {
			return curated.Errorf("hardware: %v", err)
		}
		if m.ROM.Selected() == -1 {
			m.ROM.SelectBank(bank)
		}
		return nil
	}

	if err := ld.Attach(m.Mem); err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	return nil
}

// SetUncapped turns pacing on or off. When pacing is turned on the rate is
// set by the speed preference.
func (m *Machine) SetUncapped(uncapped bool) {
	m.uncapped = uncapped
	if uncapped {
		m.limiter.SetRate(0)
	} else {
		m.limiter.SetSpeed(m.Instance.Prefs.Speed.Get().(float64))
	}
}

// Rate returns the pacing rate in cycles per second. A value of zero means
// that the emulation is not paced.
func (m *Machine) Rate() float64 {
	return m.limiter.Rate()
}
