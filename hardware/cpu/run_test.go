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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/emulate6502/test"
)

func TestStepN(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0400, false)
	mem.putInstructions(0x0400, 0xa2, 0x00, 0xe8, 0xe8, 0x4c, 0x03, 0x04)

	test.ExpectEquality(t, mc.StepN(3), 6)
	test.ExpectEquality(t, mc.X.Value(), uint8(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0404))

	test.ExpectEquality(t, mc.StepN(0), 0)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0404))
}

func TestRunCycles(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0000, false)
	mem.putInstructions(0x0000, 0xa9, 0x69)
	test.ExpectEquality(t, mc.RunCycles(2), 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x69))

	mc, mem = newTestCPU(t, 0x0000, false)
	mem.putInstructions(0x0000, 0xa9, 0xff, 0x69, 0x01)
	test.ExpectEquality(t, mc.RunCycles(4), 4)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	testStatus(t, mc, "nv-bdIZC")

	// instructions are never split so the budget can be exceeded
	mc, mem = newTestCPU(t, 0x0400, false)
	mem.putInstructions(0x0400, 0xa2, 0x00, 0xe8, 0xe8, 0x4c, 0x03, 0x04)
	test.ExpectEquality(t, mc.RunCycles(3), 4)
	test.ExpectEquality(t, mc.X.Value(), uint8(1))
}

func TestRunUntil(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0400, false)
	mem.putInstructions(0x0400, 0xa2, 0x00, 0xe8, 0xe8, 0x4c, 0x03, 0x04)

	test.ExpectSuccess(t, mc.RunUntil(0x0403, 0))
	test.ExpectEquality(t, mc.X.Value(), uint8(1))

	// already at the break address. the loop body runs once before the
	// break address is reached again
	test.ExpectSuccess(t, mc.RunUntil(0x0403, 0))
	test.ExpectEquality(t, mc.X.Value(), uint8(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0403))

	// never reached
	test.ExpectFailure(t, mc.RunUntil(0x0400, 10))
	test.ExpectEquality(t, mc.X.Value(), uint8(7))
}

func TestRunUntilLoopHead(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0400, false)

	// INX; JMP $0400
	mem.putInstructions(0x0400, 0xe8, 0x4c, 0x00, 0x04)

	test.ExpectSuccess(t, mc.RunUntil(0x0400, 0))
	test.ExpectEquality(t, mc.X.Value(), uint8(1))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0400))

	// a limit of one instruction stops before the loop completes
	test.ExpectFailure(t, mc.RunUntil(0x0400, 1))
	test.ExpectEquality(t, mc.X.Value(), uint8(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0401))
}
