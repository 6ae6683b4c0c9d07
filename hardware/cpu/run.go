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

package cpu

// StepN executes n instructions and returns the total number of cycles used.
func (mc *CPU) StepN(n int) int {
	var cycles int
	for i := 0; i < n; i++ {
		cycles += mc.Step()
	}
	return cycles
}

// RunCycles executes whole instructions until at least budget cycles have been
// used. Instructions are never split so the returned number of cycles can be
// larger than the budget.
func (mc *CPU) RunCycles(budget int) int {
	var cycles int
	for cycles < budget {
		cycles += mc.Step()
	}
	return cycles
}

// RunUntil executes instructions until the PC is exactly equal to
// breakAddress. The PC is checked after each instruction and never during an
// instruction, so at least one instruction is always executed. A
// maxInstructions value of zero or less means there is no limit to the number
// of instructions executed.
//
// Returns true if the break address was reached.
func (mc *CPU) RunUntil(breakAddress uint16, maxInstructions int) bool {
	for n := 0; maxInstructions <= 0 || n < maxInstructions; n++ {
		mc.Step()
		if mc.PC.Address() == breakAddress {
			return true
		}
	}
	return false
}
