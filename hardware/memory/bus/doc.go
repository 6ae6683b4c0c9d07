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

// Package bus defines the address bus of the machine. The Bus type routes
// every address in the 16bit address space to at most one Device.
//
// Devices are registered with an inclusive address range. When the CPU reads
// or writes an address, the bindings are searched in the order they were
// registered and the first binding whose range contains the address is used.
// The address is translated to an offset from the start of the range before
// being passed to the device. Overlapping ranges are not rejected. A later
// registration can never shadow an earlier one, which can be used to place a
// small device "on top" of a larger one.
//
// Addresses that are not covered by any binding read as zero. Writes to those
// addresses are dropped.
package bus
