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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf(), which takes a pattern
// and placeholder values in the same way as fmt.Errorf().
//
// The pattern is the identity of the error:
//
//	err := curated.Errorf("romloader: %v", e)
//	if curated.Is(err, "romloader: %v") {
//		...
//	}
//
// Has() looks for the pattern anywhere in the chain of curated errors. Errors
// created with the %w verb can also be unwrapped with the errors package in
// the standard library.
//
// The Error() function removes duplicate adjacent parts of the message, so
// that wrapping an error with the same prefix twice does not repeat the
// prefix.
package curated
