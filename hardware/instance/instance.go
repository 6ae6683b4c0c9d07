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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the machine, but are not the machine itself.
package instance

import (
	"github.com/jetsetilly/emulate6502/hardware/preferences"
	"github.com/jetsetilly/emulate6502/logger"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine.
type Instance struct {
	// the preferences of the running instance. can be shared with other
	// instances of the emulation
	Prefs *preferences.Preferences

	// where the hardware sends log entries. never nil
	Log logger.Sink
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// A nil prefs argument will cause a new Preferences instance to be created. A
// nil log argument will cause log entries to be discarded.
func NewInstance(prefs *preferences.Preferences, log logger.Sink) (*Instance, error) {
	ins := &Instance{
		Prefs: prefs,
		Log:   log,
	}

	if ins.Prefs == nil {
		var err error
		ins.Prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	if ins.Log == nil {
		ins.Log = logger.Discard
	}

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
}
