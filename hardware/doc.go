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

// Package hardware is the base package for the emulated machine. The Machine
// type puts together the CPU, the bus and the devices attached to the bus.
//
// There are two memory layouts. The flat layout is 64KiB of RAM and nothing
// else. This is the layout used for conformance testing. The micro layout
// places a video system and a bank switched ROM in front of the RAM:
//
//	0xfe00 - 0xfeff	video system control registers
//	0x8000 - 0xbfff	paged ROM
//	0x0000 - 0xffff	RAM
//
// The bus gives priority to the device that was registered first so the RAM
// is only visible where no other device is mapped.
//
// The Run() and RunUntil() functions pace the emulation according to the
// speed preference. The Step() function is not paced.
package hardware
