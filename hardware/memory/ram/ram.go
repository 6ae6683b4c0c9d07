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

// Package ram implements a flat area of read/write memory that can be
// attached to the bus.
package ram

import (
	"fmt"
	"strings"
)

// Size of a RAM device that covers the entire address space.
const Size = 0x10000

// RAM is a flat array of bytes. Offsets outside of the array will cause a
// panic so the device must never be registered with a range larger than its
// size.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The size
// argument is the number of bytes in the device.
func NewRAM(size int) *RAM {
	return &RAM{
		memory: make([]uint8, size),
	}
}

// Size returns the number of bytes in the device.
func (r *RAM) Size() int {
	return len(r.memory)
}

// Read implements the bus.Device interface.
func (r *RAM) Read(offset uint16) uint8 {
	return r.memory[offset]
}

// Write implements the bus.Device interface.
func (r *RAM) Write(offset uint16, data uint8) {
	r.memory[offset] = data
}

// Clear sets every byte to zero.
func (r *RAM) Clear() {
	clear(r.memory)
}

// String returns the first page of the device as a hex table.
func (r *RAM) String() string {
	return r.Page(0)
}

// Page returns the numbered 256 byte page of the device as a hex table.
func (r *RAM) Page(page uint8) string {
	origin := int(page) << 8

	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		row := origin + y*16
		if row >= len(r.memory) {
			break
		}
		s.WriteString(fmt.Sprintf("%03X- | ", row>>4))
		for x := 0; x < 16 && row+x < len(r.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", r.memory[row+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
