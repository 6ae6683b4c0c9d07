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

// Package registers implements the three types of register found in the 6502:
// the 8bit data Register, the 16bit ProgramCounter and the StatusRegister.
// The StackPointer is an 8bit register that addresses page one of memory.
//
// The arithmetic and logical functions of the Register type do not affect the
// status register. It is the responsibility of the caller to update the flags
// as appropriate. For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// All arithmetic wraps. No operation in this package can fail.
package registers
