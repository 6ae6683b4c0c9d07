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

package performance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/emulate6502/hardware"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/performance"
	"github.com/jetsetilly/emulate6502/test"
)

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(2000, 2.0, 1000)
	test.ExpectEquality(t, rate, 1000.0)
	test.ExpectEquality(t, accuracy, 100.0)

	rate, accuracy = performance.CalcRate(2000, 2.0, 0)
	test.ExpectEquality(t, rate, 1000.0)
	test.ExpectEquality(t, accuracy, 0.0)

	rate, _ = performance.CalcRate(2000, 0, 1000)
	test.ExpectEquality(t, rate, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	_, err = performance.ParseProfileString("disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	m, err := hardware.NewMachine(nil, hardware.LayoutFlat, nil)
	test.DemandSuccess(t, err)

	// JMP $0400
	m.Mem.Write(0x0400, 0x4c)
	m.Mem.Write(0x0401, 0x00)
	m.Mem.Write(0x0402, 0x04)
	bus.SetVector(m.Mem, bus.Reset, 0x0400)
	m.Reset()
	m.SetUncapped(true)

	var b bytes.Buffer
	err = performance.Check(&b, performance.ProfileNone, m, "10ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(b.String(), "uncapped\n"))
	test.ExpectSuccess(t, m.CPU.ElapsedCycles > 0)

	err = performance.Check(&b, performance.ProfileNone, m, "ten seconds")
	test.ExpectFailure(t, err)
}
