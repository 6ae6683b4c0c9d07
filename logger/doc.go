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

// Package logger is the logging package used throughout the emulator. Entries
// are stored in memory and written out on request with Write() or Tail().
//
// A single central logger is available through the package level functions.
// Additional loggers can be created with NewLogger() where that is useful,
// test code for instance.
//
// The Sink interface is the view of the logger that the emulated hardware is
// given. The Discard sink can be used when log entries are not wanted, for
// headless or performance critical runs.
//
// Every log request takes a Permission argument. Entries are only added if the
// permission allows it. The Allow value always allows logging.
package logger
