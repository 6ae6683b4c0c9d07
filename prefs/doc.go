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

// Package prefs holds typed preference values. A value is created as the zero
// value of its type (Bool or Float) and updated with Set(). Set() accepts the
// native Go type or a string, so that values can come straight from the
// command line.
//
// Hooks can be attached to a value. The pre hook is called before the value is
// stored and can reject the new value by returning an error. The post hook is
// called after the value has been stored.
//
// The command line stack allows preferences to be specified on the command
// line in the form:
//
//	"key::value; key::value"
//
// The most recent group pushed with PushCommandLineStack() is consulted by
// GetCommandLinePref(). Preferences are not persisted to disk.
package prefs
