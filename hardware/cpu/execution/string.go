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
	"fmt"
	"strings"

	"github.com/jetsetilly/emulate6502/hardware/cpu/instructions"
)

// String returns the instruction as disassembly, for example:
//
//	0200 LDA #$69
//
// Branch targets are shown as absolute addresses.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x ", r.Address))

	if r.Defn == nil {
		s.WriteString(fmt.Sprintf("??? (%02x)", r.OpCode))
		return s.String()
	}

	s.WriteString(r.Defn.Operator.String())

	if operand := r.Operand(); operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	return s.String()
}

// Operand returns the operand of the instruction in conventional assembler
// notation.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d)
	case instructions.Relative:
		// target is relative to the address of the following instruction
		target := r.Address + 2 + uint16(int8(d))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", d)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", d)
	}

	return ""
}

// Notes returns additional information about the execution of the
// instruction. Empty string if there is nothing noteworthy.
func (r Result) Notes() string {
	var n []string
	if r.PageFault {
		n = append(n, "page-fault")
	}
	if r.CPUBug != NoBug {
		n = append(n, string(r.CPUBug))
	}
	if r.Defn != nil && r.Defn.IsBranch() {
		if r.BranchSuccess {
			n = append(n, "branch taken")
		} else {
			n = append(n, "branch not taken")
		}
	}
	return strings.Join(n, "; ")
}
