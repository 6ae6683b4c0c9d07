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
	"context"
	"time"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// the period of time to wait between calls to continueCheck() when the
// emulation is paused
const pausedWait = 10 * time.Millisecond

// Step the emulation one CPU instruction. The video system is clocked by the
// number of cycles consumed by the instruction. Returns the number of cycles
// consumed. Step() does not pace the emulation.
func (m *Machine) Step() int {
	cycles := m.CPU.Step()

	if m.Video != nil {
		m.videoCycles += cycles
		for m.videoCycles >= CyclesPerScanline {
			m.videoCycles -= CyclesPerScanline
			m.Video.RenderScanline()
		}
	}

	return cycles
}

// Run sets the emulation running at the speed set by the speed preference.
// The continueCheck function is called after every instruction. A nil
// continueCheck function means that the emulation runs until the context is
// cancelled.
//
// The context is checked every PerformanceBrake instructions. The context
// error is returned if the context is cancelled.
func (m *Machine) Run(ctx context.Context, continueCheck govern.RunFunc) error {
	if continueCheck == nil {
		continueCheck = govern.AlwaysRunning
	}

	m.limiter.Reset()

	var err error
	var brake int

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			m.limiter.Pace(m.Step())
		case govern.Paused:
			time.Sleep(pausedWait)
			m.limiter.Reset()
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunUntil runs the emulation, at the speed set by the speed preference,
// until the PC is exactly equal to the break address. The PC is checked after
// each instruction and never during an instruction, so at least one
// instruction is always executed. A maxInstructions value of zero or less
// means there is no limit to the number of instructions.
//
// Returns true if the break address was reached. The context error is returned
// if the context is cancelled.
func (m *Machine) RunUntil(ctx context.Context, breakAddress uint16, maxInstructions int) (bool, error) {
	m.limiter.Reset()

	var brake int

	for n := 0; maxInstructions <= 0 || n < maxInstructions; n++ {
		m.limiter.Pace(m.Step())

		if m.CPU.PC.Address() == breakAddress {
			return true, nil
		}

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			default:
			}
		}
	}

	return false, nil
}
