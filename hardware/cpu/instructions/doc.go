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

// Package instructions defines the instruction set of the 6502. Each of the
// documented opcodes has a Definition, which records the operator, the
// addressing mode, the number of bytes in the instruction and the minimum
// number of cycles the instruction takes.
//
// Opcodes that are not documented have no definition. The GetDefinitions()
// function returns a table of 256 entries indexed by opcode, with nil entries
// for undocumented opcodes.
package instructions
