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

// Package functional_test runs the 6502 functional test as defined by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binary is not supplied. Copy 6502_functional_test.bin into the
// testdata directory to run the test. The binary published in the repository
// includes the decimal mode tests, which will fail. Assemble the test with
// disable_decimal set to 1 and set the EMULATE6502_KLAUS_SUCCESS environment
// variable to the success address found in the listing file.
package functional_test
