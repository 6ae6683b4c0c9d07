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

// Package monitor implements a simple machine-code monitor for the emulated
// machine. Commands are read from an implementation of the terminal.Terminal
// interface and the results printed back to the same terminal.
//
// Commands are case insensitive. Addresses and data values are hexadecimal
// and may be prefixed with "$" or "0x". Decimal values are prefixed with "#".
// The HELP command lists the available commands.
//
// The RUN and CONT commands can be interrupted by sending a value to the
// IntEvents channel. The channel would normally be connected to the
// interrupt signal with signal.Notify().
package monitor
