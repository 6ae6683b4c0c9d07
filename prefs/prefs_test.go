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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/prefs"
	"github.com/jetsetilly/emulate6502/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("no"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)

	test.ExpectSuccess(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectEquality(t, v.String(), "1.5")

	test.ExpectSuccess(t, v.Set("2.25"))
	test.ExpectEquality(t, v.Get().(float64), 2.25)

	err := v.Set("fast")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))

	test.ExpectFailure(t, v.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Float
	var post float64

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) <= 0 {
			return curated.Errorf(prefs.InvalidValue, nv)
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set(4.0))
	test.ExpectEquality(t, post, 4.0)

	// rejected by pre hook. value is unchanged and post hook is not called
	err := v.Set(-1.0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
	test.ExpectEquality(t, v.Get().(float64), 4.0)
	test.ExpectEquality(t, post, 4.0)

	var b prefs.Bool
	b.SetHookPost(func(nv prefs.Value) error {
		return fmt.Errorf("post hook error")
	})
	test.ExpectFailure(t, b.Set(true))

	// the value is stored even though the post hook failed
	test.ExpectEquality(t, b.Get().(bool), true)
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("cpu.jmpbug::true; cpu.speed::2.0; badentry")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("cpu.jmpbug")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")

	// entries are removed when they are asked for
	ok, _ = prefs.GetCommandLinePref("cpu.jmpbug")
	test.ExpectFailure(t, ok)

	// a new group hides the earlier group
	prefs.PushCommandLineStack("cpu.speed::4")
	ok, v = prefs.GetCommandLinePref("cpu.speed")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "4")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// unused entries are returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.speed::2.0")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
