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

// Package govern defines the types that define the current condition of the
// emulation. The two conditions are Mode and State.
//
// Run loops are given a function that returns the State the emulation should
// be in. The emulation continues while the State is Running, waits while the
// State is Paused, and stops when the State is Ending.
package govern
