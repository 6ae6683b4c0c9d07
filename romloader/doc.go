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

// Package romloader loads ROM images and other binary blobs into the address
// space of the emulated machine.
//
// The Loader type reads the data from a local file or from a HTTP URL and
// records the SHA1 hash of the data. The Attach() function copies the loaded
// data into memory.
//
//	ld := romloader.NewLoader("program.bin", 0x0400)
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//	err = ld.Attach(mem)
//
// LoadBytes() can be used when the data is already in memory. The write address
// is clamped at 0xffff so any data beyond the end of memory is written to
// 0xffff.
package romloader
