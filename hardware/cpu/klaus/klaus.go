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

// Package klaus runs the 6502 functional test written by Klaus Dormann.
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binary is a complete 64KiB memory image. Execution starts at
// 0x0400 and the test signals failure or success by looping forever on a
// single instruction. The address of the success loop depends on how the
// binary was assembled. The default success address is that of the binary
// published in the repository, which includes the decimal mode tests. The
// CPU does not emulate decimal mode so the published binary fails at the
// first decimal test. A binary assembled with disable_decimal set to 1 will
// succeed at a different address.
package klaus

import (
	"fmt"
	"time"

	"github.com/jetsetilly/emulate6502/hardware/cpu"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/romloader"
)

// Options for the Run() function.
type Options struct {
	// address at which the binary is loaded
	LoadAddress uint16

	// address of the first instruction
	Origin uint16

	// address of the success loop
	Success uint16

	// the maximum number of instructions to execute. zero or less means no
	// limit
	MaxInstructions int

	// the number of instructions to keep a record of. the record is useful
	// when the test fails
	History int
}

// DefaultOptions are suitable for the published binary.
var DefaultOptions = Options{
	LoadAddress:     0x0000,
	Origin:          0x0400,
	Success:         0x3469,
	MaxInstructions: 0,
	History:         15,
}

// Report is the result of the Run() function.
type Report struct {
	Success bool

	// the address of the loop that ended the test
	TrapAddress uint16

	Instructions int
	Cycles       uint64
	Elapsed      time.Duration

	// the last instructions executed with the state of the CPU after each
	// instruction. oldest first
	History []string
}

func (r Report) String() string {
	if r.Success {
		return fmt.Sprintf("success at %#04x (%d instructions, %d cycles, %s)",
			r.TrapAddress, r.Instructions, r.Cycles, r.Elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("failure at %#04x (%d instructions, %d cycles, %s)",
		r.TrapAddress, r.Instructions, r.Cycles, r.Elapsed.Round(time.Millisecond))
}

// Load the binary into memory at the LoadAddress.
func Load(mem bus.Memory, filename string, opts Options) error {
	return romloader.LoadFile(mem, opts.LoadAddress, filename)
}

// Run the functional test. The binary should already have been loaded into
// the memory used by the CPU. The CPU is reset before the test begins.
func Run(mc *cpu.CPU, opts Options) Report {
	var r Report

	history := make([]string, 0, opts.History)
	record := func() {
		if opts.History <= 0 {
			return
		}
		if len(history) == opts.History {
			copy(history, history[1:])
			history = history[:len(history)-1]
		}
		history = append(history, fmt.Sprintf("%s\t%s", mc.LastResult.String(), mc.String()))
	}

	mc.Reset()
	mc.LoadPC(opts.Origin)

	startTime := time.Now()
	trapped := false

	for opts.MaxInstructions <= 0 || r.Instructions < opts.MaxInstructions {
		addr := mc.PC.Address()

		mc.Step()
		r.Instructions++
		record()

		// "Loop on program counter determines error or successful completion
		// of test"
		if mc.PC.Address() == addr {
			r.TrapAddress = addr
			r.Success = addr == opts.Success
			trapped = true
			break
		}
	}

	if !trapped {
		r.TrapAddress = mc.PC.Address()
	}

	r.Elapsed = time.Since(startTime)
	r.Cycles = mc.ElapsedCycles
	r.History = history

	return r
}
