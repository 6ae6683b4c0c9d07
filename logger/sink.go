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

package logger

// Sink is the logging capability given to the emulated hardware. Logging
// through a Sink never affects the state of the emulation.
type Sink interface {
	Log(perm Permission, tag string, detail any)
	Logf(perm Permission, tag string, pattern string, args ...any)
}

type discard struct{}

func (discard) Log(Permission, string, any) {}

func (discard) Logf(Permission, string, string, ...any) {}

// Discard is a Sink that drops every entry.
var Discard Sink = discard{}
