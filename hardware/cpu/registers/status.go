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

package registers

import (
	"strings"
)

// Bit masks for the status register.
const (
	MaskCarry            = 0x01
	MaskZero             = 0x02
	MaskInterruptDisable = 0x04
	MaskDecimalMode      = 0x08
	MaskBreak            = 0x10
	MaskUnused           = 0x20
	MaskOverflow         = 0x40
	MaskSign             = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The unused bit is not stored and is always 1 when the register is
// converted to a value.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, set rune, unset rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to the power-on state. Only the interrupt disable flag is
// set.
func (sr *StatusRegister) Reset() {
	sr.Load(MaskUnused | MaskInterruptDisable)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= MaskSign
	}
	if sr.Overflow {
		v |= MaskOverflow
	}
	if sr.Break {
		v |= MaskBreak
	}
	if sr.DecimalMode {
		v |= MaskDecimalMode
	}
	if sr.InterruptDisable {
		v |= MaskInterruptDisable
	}
	if sr.Zero {
		v |= MaskZero
	}
	if sr.Carry {
		v |= MaskCarry
	}

	return v | MaskUnused
}

// Load converts an 8 bit value (taken from the stack, for example) to the
// StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&MaskSign == MaskSign
	sr.Overflow = v&MaskOverflow == MaskOverflow
	sr.Break = v&MaskBreak == MaskBreak
	sr.DecimalMode = v&MaskDecimalMode == MaskDecimalMode
	sr.InterruptDisable = v&MaskInterruptDisable == MaskInterruptDisable
	sr.Zero = v&MaskZero == MaskZero
	sr.Carry = v&MaskCarry == MaskCarry
}
