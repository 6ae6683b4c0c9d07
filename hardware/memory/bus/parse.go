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

package bus

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/emulate6502/curated"
)

// ParseAddress converts a string to an address. The string is interpreted as
// hexadecimal and may be prefixed with "$" or "0x". Decimal values must be
// prefixed with "#".
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 16
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	case strings.HasPrefix(s, "#"):
		s = s[1:]
		base = 10
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf("bus: not a valid address (%s)", s)
	}

	return uint16(v), nil
}

// ParseData converts a string to an 8 bit value. The same prefixes as
// ParseAddress() are accepted.
func ParseData(s string) (uint8, error) {
	v, err := ParseAddress(s)
	if err != nil || v > 0xff {
		return 0, curated.Errorf("bus: not a valid data value (%s)", s)
	}
	return uint8(v), nil
}
