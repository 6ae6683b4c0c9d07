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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/cpu/instructions"
	"github.com/jetsetilly/emulate6502/test"
)

func TestDefinitions(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var n int
	for i, d := range defs {
		if d == nil {
			continue
		}
		n++

		// table is indexed by opcode
		test.ExpectEquality(t, int(d.OpCode), i)

		// only indexed read instructions are sensitive to page crossing
		if d.PageSensitive {
			test.ExpectEquality(t, d.Effect, instructions.Read, d)
		}

		// number of bytes is consistent with the addressing mode
		switch d.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			test.ExpectEquality(t, d.Bytes, 1, d)
		case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.Indirect:
			test.ExpectEquality(t, d.Bytes, 3, d)
		default:
			test.ExpectEquality(t, d.Bytes, 2, d)
		}
	}
	test.ExpectEquality(t, n, 151)
}

func TestSpotCheck(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0xa9].Operator, instructions.Lda)
	test.ExpectEquality(t, defs[0xa9].AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defs[0x6c].AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defs[0x20].Effect, instructions.Subroutine)
	test.ExpectSuccess(t, defs[0xd0].IsBranch())
	test.ExpectFailure(t, defs[0x4c].IsBranch())
	test.ExpectEquality(t, defs[0x02], nil)
	test.ExpectEquality(t, defs[0xff], nil)
}

func TestMnemonics(t *testing.T) {
	test.ExpectEquality(t, instructions.Adc.String(), "ADC")
	test.ExpectEquality(t, instructions.Tya.String(), "TYA")

	op, ok := instructions.OperatorFromMnemonic("jsr")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.Jsr)

	_, ok = instructions.OperatorFromMnemonic("KIL")
	test.ExpectFailure(t, ok)
}
