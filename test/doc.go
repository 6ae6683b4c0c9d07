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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report a failure with t.Fatalf() and
// should be used when the tested value is needed by the rest of the test.
//
// Success and failure are interpreted according to type. A bool is a success
// if it is true and an error is a success if it is nil. The nil value is
// always considered a success because that is how a nil error is seen when
// passed as an interface.
//
// The RingWriter and CompareWriter types implement io.Writer and are used to
// capture output for later inspection.
package test
