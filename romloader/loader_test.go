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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/hardware/memory/ram"
	"github.com/jetsetilly/emulate6502/romloader"
	"github.com/jetsetilly/emulate6502/test"
)

func TestLoadBytes(t *testing.T) {
	mem := ram.NewRAM(ram.Size)

	n, err := romloader.LoadBytes(mem, 0x0400, []byte{0xa9, 0x69})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, mem.Read(0x0400), uint8(0xa9))
	test.ExpectEquality(t, mem.Read(0x0401), uint8(0x69))

	// no data
	_, err = romloader.LoadBytes(mem, 0x0400, []byte{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romloader.NoData))

	// the write address is clamped at the end of memory
	n, err = romloader.LoadBytes(mem, 0xfffe, []byte{0x01, 0x02, 0x03, 0x04})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x04))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	mem := ram.NewRAM(ram.Size)

	filename := filepath.Join(dir, "program.bin")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0xea, 0xea, 0x00}, 0o644))

	test.ExpectSuccess(t, romloader.LoadFile(mem, 0x8000, filename))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0xea))
	test.ExpectEquality(t, mem.Read(0x8002), uint8(0x00))

	// missing file
	err := romloader.LoadFile(mem, 0x8000, filepath.Join(dir, "missing.bin"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romloader.FileError))

	// empty file
	empty := filepath.Join(dir, "empty.bin")
	test.DemandSuccess(t, os.WriteFile(empty, []byte{}, 0o644))
	err = romloader.LoadFile(mem, 0x8000, empty)
	test.ExpectSuccess(t, curated.Is(err, romloader.NoData))
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "monitor.rom")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0x4c, 0x00, 0x80}, 0o644))

	ld := romloader.NewLoader(filename, 0x8000)
	test.ExpectEquality(t, ld.ShortName(), "monitor")
	test.ExpectEquality(t, ld.HasLoaded(), false)

	// attaching before loading fails
	mem := ram.NewRAM(ram.Size)
	test.ExpectFailure(t, ld.Attach(mem))

	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Hash), 40)
	test.ExpectSuccess(t, ld.Attach(mem))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x4c))

	// hash mismatch
	ld = romloader.NewLoader(filename, 0x8000)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.HashMismatch))
	test.ExpectEquality(t, ld.HasLoaded(), false)

	// unsupported scheme
	ld = romloader.NewLoader("ftp://example.com/monitor.rom", 0x8000)
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.FileError))
}
