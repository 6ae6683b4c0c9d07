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

package execution

import (
	"github.com/jetsetilly/emulate6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// address of the first byte of the instruction
	Address uint16

	// nil if the opcode is undocumented
	Defn *instructions.Definition

	// the opcode as read from memory. useful when Defn is nil
	OpCode uint8

	// the number of bytes read during instruction decode. the padding byte
	// of the BRK instruction is not counted
	ByteCount int

	// the operand of the instruction. for branch instructions this is the
	// unextended 8bit offset
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the
	// same as Defn.Cycles but in the case of page faults and branches this
	// value may be different
	Cycles int

	// whether an extra cycle was required because an index crossed a page
	PageFault bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether the branch instruction was taken
	BranchSuccess bool

	// whether the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
