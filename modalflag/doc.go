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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "monitor")
//	_, _ = md.Parse()
//
// After Parse() the Mode() function returns the selected sub-mode, or the
// first sub-mode in the list if none was specified. Sub-mode comparisons are
// case insensitive and Mode() always returns an upper case string.
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed with a further call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0400, "load address")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		run(*origin, md.RemainingArgs())
//	}
//
// AddAddress() is the only flag type not found in the flag package. The
// values are interpreted as hexadecimal.
package modalflag
