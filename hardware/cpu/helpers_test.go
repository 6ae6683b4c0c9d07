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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/cpu"
	"github.com/jetsetilly/emulate6502/hardware/instance"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/test"
)

type mockMem struct {
	internal []uint8

	// every address accessed since the last call to clearAccess()
	accessed []uint16
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.accessed = append(mem.accessed, address)
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.accessed = append(mem.accessed, address)
	mem.internal[address] = data
}

func (mem *mockMem) clearAccess() {
	mem.accessed = mem.accessed[:0]
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, fmt.Sprintf("address %#04x", address))
}

// newTestCPU creates a CPU with the reset vector pointing to origin. the CPU
// has been reset and is ready to go
func newTestCPU(t *testing.T, origin uint16, jmpBug bool) (*cpu.CPU, *mockMem) {
	t.Helper()

	ins, err := instance.NewInstance(nil, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()
	test.DemandSuccess(t, ins.Prefs.JmpIndirectBug.Set(jmpBug))

	mem := newMockMem()
	bus.SetVector(mem, bus.Reset, origin)

	mc := cpu.NewCPU(ins, mem)
	mc.Reset()
	mem.clearAccess()

	return mc, mem
}

// step executes a single instruction and checks the validity of the result.
// returns the number of cycles used
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles := mc.Step()
	test.ExpectSuccess(t, mc.LastResult.IsValid(), mc.LastResult.String())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)
	return cycles
}

func testStatus(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.String(), expected)
}
