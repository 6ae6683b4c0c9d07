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

package klaus_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/cpu"
	"github.com/jetsetilly/emulate6502/hardware/cpu/klaus"
	"github.com/jetsetilly/emulate6502/hardware/memory/ram"
	"github.com/jetsetilly/emulate6502/test"
)

// a small program that counts down and then loops forever at 0x0407
var program = []byte{0xa2, 0x03, 0xca, 0xd0, 0xfd, 0xea, 0xea, 0x4c, 0x07, 0x04}

func setup(t *testing.T) (*cpu.CPU, klaus.Options) {
	t.Helper()

	dir := t.TempDir()
	filename := filepath.Join(dir, "trap.bin")
	test.DemandSuccess(t, os.WriteFile(filename, program, 0o644))

	opts := klaus.DefaultOptions
	opts.LoadAddress = 0x0400
	opts.Success = 0x0407
	opts.History = 4

	mem := ram.NewRAM(ram.Size)
	test.DemandSuccess(t, klaus.Load(mem, filename, opts))

	return cpu.NewCPU(nil, mem), opts
}

func TestSuccess(t *testing.T) {
	mc, opts := setup(t)

	r := klaus.Run(mc, opts)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.TrapAddress, uint16(0x0407))

	// LDX + 3*DEX + 3*BNE + 2*NOP + JMP
	test.ExpectEquality(t, r.Instructions, 10)
	test.ExpectEquality(t, len(r.History), 4)
	test.ExpectSuccess(t, strings.HasPrefix(r.History[3], "0407 JMP $0407"))
	test.ExpectSuccess(t, strings.HasPrefix(r.String(), "success at 0x0407"))
}

func TestFailure(t *testing.T) {
	mc, opts := setup(t)
	opts.Success = 0x3469

	r := klaus.Run(mc, opts)
	test.ExpectFailure(t, r.Success)
	test.ExpectEquality(t, r.TrapAddress, uint16(0x0407))
	test.ExpectSuccess(t, strings.HasPrefix(r.String(), "failure at 0x0407"))
}

func TestMaxInstructions(t *testing.T) {
	mc, opts := setup(t)
	opts.MaxInstructions = 3

	r := klaus.Run(mc, opts)
	test.ExpectFailure(t, r.Success)
	test.ExpectEquality(t, r.Instructions, 3)
	test.ExpectEquality(t, r.TrapAddress, uint16(0x0402))
}
