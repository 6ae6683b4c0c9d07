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

package video

// Palette of the 16 colours available in mode 2. Colours are 0xRRGGBB.
var Palette = [16]uint32{
	0x000000, // black
	0xff0000, // red
	0x00ff00, // green
	0xffff00, // yellow
	0x0000ff, // blue
	0xff00ff, // magenta
	0x00ffff, // cyan
	0xffffff, // white
	0x555555,
	0xaa0000,
	0x00aa00,
	0xaaaa00,
	0x0000aa,
	0xaa00aa,
	0x00aaaa,
	0xaaaaaa,
}
