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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/cpu/execution"
	"github.com/jetsetilly/emulate6502/hardware/cpu/instructions"
	"github.com/jetsetilly/emulate6502/test"
)

func TestString(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{Address: 0x0200, Defn: defs[0xa9], InstructionData: 0x69}
	test.ExpectEquality(t, r.String(), "0200 LDA #$69")

	r = execution.Result{Address: 0x0300, Defn: defs[0x91], InstructionData: 0x10}
	test.ExpectEquality(t, r.String(), "0300 STA ($10),Y")

	r = execution.Result{Address: 0x0300, Defn: defs[0x0a]}
	test.ExpectEquality(t, r.String(), "0300 ASL A")

	// branch backwards by two is a branch to self
	r = execution.Result{Address: 0x0400, Defn: defs[0xd0], InstructionData: 0xfe}
	test.ExpectEquality(t, r.String(), "0400 BNE $0400")

	r = execution.Result{Address: 0x0500, OpCode: 0x02}
	test.ExpectEquality(t, r.String(), "0500 ??? (02)")
}

func TestValidity(t *testing.T) {
	defs := instructions.GetDefinitions()

	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Defn: defs[0xa9], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())

	// page sensitive instruction with a page fault takes an extra cycle
	r = execution.Result{Defn: defs[0xbd], ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	// page fault on an instruction that is not page sensitive
	r = execution.Result{Defn: defs[0x9d], ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectFailure(t, r.IsValid())

	// branches can take up to two extra cycles
	r = execution.Result{Defn: defs[0xd0], ByteCount: 2, Cycles: 4, PageFault: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r = execution.Result{OpCode: 0x02, ByteCount: 1, Cycles: 1, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r.Reset()
	test.ExpectFailure(t, r.Final)
}

func TestNotes(t *testing.T) {
	defs := instructions.GetDefinitions()
	r := execution.Result{Defn: defs[0xd0], PageFault: true, BranchSuccess: true}
	test.ExpectEquality(t, r.Notes(), "page-fault; branch taken")

	r = execution.Result{Defn: defs[0x6c], CPUBug: execution.JmpIndirectAddressingBug}
	test.ExpectEquality(t, r.Notes(), string(execution.JmpIndirectAddressingBug))
}
