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

package functional_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/cpu"
	"github.com/jetsetilly/emulate6502/hardware/cpu/klaus"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/hardware/memory/ram"
	"github.com/jetsetilly/emulate6502/performance"
	"github.com/jetsetilly/emulate6502/test"
)

// whether to create a CPU profile of the host computer when running the test
const profiling = false

const binary = "6502_functional_test.bin"

// environment variable used to specify a success address other than the
// default. the value is interpreted as hexadecimal
const successEnv = "EMULATE6502_KLAUS_SUCCESS"

func TestFunctional(t *testing.T) {
	filename := filepath.Join("testdata", binary)
	if _, err := os.Stat(filename); err != nil {
		t.Skipf("%s not present in testdata directory", binary)
	}

	opts := klaus.DefaultOptions
	if s, ok := os.LookupEnv(successEnv); ok {
		v, err := strconv.ParseUint(s, 16, 16)
		test.DemandSuccess(t, err)
		opts.Success = uint16(v)
	}

	b := bus.NewBus()
	b.Register(0x0000, 0xffff, ram.NewRAM(ram.Size))
	test.DemandSuccess(t, klaus.Load(b, filename, opts))

	mc := cpu.NewCPU(nil, b)

	var r klaus.Report

	profile := performance.ProfileNone
	if profiling {
		profile = performance.ProfileCPU
	}

	err := performance.RunProfiler(profile, "functional_test", func() error {
		r = klaus.Run(mc, opts)
		return nil
	})
	test.DemandSuccess(t, err)

	t.Log(r.String())

	if !r.Success {
		for _, l := range r.History {
			t.Log(l)
		}
		t.Fail()
	}
}
