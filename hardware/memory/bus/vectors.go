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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package bus

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. The BRK
// instruction also jumps through this vector.
const IRQ = uint16(0xfffe)

// BRK is an alias for IRQ.
const BRK = IRQ

// StackPage is the page of memory used by the stack.
const StackPage = uint16(0x0100)

// Vector reads a little-endian address from the address and the address
// following it.
func Vector(mem Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// SetVector writes a little-endian address to the address and the address
// following it.
func SetVector(mem Memory, address uint16, target uint16) {
	mem.Write(address, uint8(target))
	mem.Write(address+1, uint8(target>>8))
}
