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

// Package preferences collates the preference values used by the emulated
// hardware.
package preferences

import (
	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/prefs"
)

// Keys used to find hardware preferences on the command line stack.
const (
	KeyJmpIndirectBug = "cpu.jmpbug"
	KeySpeed          = "cpu.speed"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// emulate the page wrap bug in the indirect JMP instruction. when the low
	// byte of the pointer is 0xff the high byte of the target is read from
	// the start of the same page
	JmpIndirectBug prefs.Bool

	// speed multiplier used when pacing the emulation. has no effect on the
	// emulation itself. must be greater than zero
	Speed prefs.Float
}

func (p *Preferences) String() string {
	return KeyJmpIndirectBug + "::" + p.JmpIndirectBug.String() + "; " + KeySpeed + "::" + p.Speed.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are set to their defaults and then to any values found on the
// command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Speed.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return curated.Errorf(prefs.InvalidValue, v)
		}
		return nil
	})

	p.SetDefaults()

	if ok, v := prefs.GetCommandLinePref(KeyJmpIndirectBug); ok {
		if err := p.JmpIndirectBug.Set(v); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	if ok, v := prefs.GetCommandLinePref(KeySpeed); ok {
		if err := p.Speed.Set(v); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the default values are known to be valid
	_ = p.JmpIndirectBug.Set(false)
	_ = p.Speed.Set(1.0)
}
