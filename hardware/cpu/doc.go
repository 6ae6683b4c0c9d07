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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The CPU type requires an implementation of the bus.Memory interface. The
// bus.Bus type is the normal implementation but anything that can read and
// write bytes will do.
//
// The bread-and-butter of the CPU type is the Step() function. It executes
// exactly one instruction and returns the number of cycles consumed.
//
//	mc := cpu.NewCPU(ins, mem)
//	mc.Reset()
//
//	numCycles := 0
//	for {
//		numCycles += mc.Step()
//	}
//
// StepN(), RunCycles() and RunUntil() are conveniences built on top of
// Step(). None of them pace execution against real time. Pacing is the job
// of the hardware package.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for details. Very useful
// for monitors.
//
// Opcodes that have no definition in the instruction table execute as a one
// cycle no-op. The CPU never returns an error.
package cpu
