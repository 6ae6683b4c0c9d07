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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/test"
)

// recorder is a device that records the most recent access.
type recorder struct {
	data       [256]uint8
	lastOffset uint16
	writes     int
}

func (r *recorder) Read(offset uint16) uint8 {
	r.lastOffset = offset
	return r.data[offset]
}

func (r *recorder) Write(offset uint16, data uint8) {
	r.lastOffset = offset
	r.data[offset] = data
	r.writes++
}

func TestUnmapped(t *testing.T) {
	b := bus.NewBus()
	test.ExpectEquality(t, b.Read(0x1234), 0)
	b.Write(0x1234, 0xff)
	test.ExpectEquality(t, b.Read(0x1234), 0)
	test.ExpectFailure(t, b.Mapped(0x1234))
}

func TestOffsetTranslation(t *testing.T) {
	b := bus.NewBus()
	r := &recorder{}
	b.Register(0x2000, 0x20ff, r)

	b.Write(0x2010, 0x42)
	test.ExpectEquality(t, r.lastOffset, 0x10)
	test.ExpectEquality(t, r.data[0x10], 0x42)
	test.ExpectEquality(t, b.Read(0x2010), 0x42)

	// edges of the range are inclusive
	b.Write(0x2000, 0x01)
	test.ExpectEquality(t, r.lastOffset, 0x00)
	b.Write(0x20ff, 0x02)
	test.ExpectEquality(t, r.lastOffset, 0xff)

	// just outside of the range
	b.Write(0x2100, 0x03)
	b.Write(0x1fff, 0x03)
	test.ExpectEquality(t, r.writes, 3)
}

func TestFirstMatchWins(t *testing.T) {
	b := bus.NewBus()
	small := &recorder{}
	large := &recorder{}

	b.Register(0x0010, 0x001f, small)
	b.Register(0x0000, 0x00ff, large)

	b.Write(0x0012, 0xaa)
	test.ExpectEquality(t, small.data[0x02], 0xaa)
	test.ExpectEquality(t, large.writes, 0)

	b.Write(0x0020, 0xbb)
	test.ExpectEquality(t, large.data[0x20], 0xbb)
	test.ExpectEquality(t, small.writes, 1)

	// a later binding never shadows an earlier one
	later := &recorder{}
	b.Register(0x0010, 0x0010, later)
	b.Write(0x0010, 0xcc)
	test.ExpectEquality(t, later.writes, 0)
	test.ExpectEquality(t, small.data[0x00], 0xcc)

	test.ExpectEquality(t, len(b.Bindings()), 3)
}

func TestSwappedRange(t *testing.T) {
	b := bus.NewBus()
	r := &recorder{}
	b.Register(0x00ff, 0x0000, r)
	b.Write(0x0001, 0x11)
	test.ExpectEquality(t, r.lastOffset, 0x01)
}

func TestVectors(t *testing.T) {
	b := bus.NewBus()
	r := &recorder{}
	b.Register(0xff00, 0xffff, r)

	bus.SetVector(b, bus.Reset, 0x1234)
	test.ExpectEquality(t, r.data[0xfc], 0x34)
	test.ExpectEquality(t, r.data[0xfd], 0x12)
	test.ExpectEquality(t, bus.Vector(b, bus.Reset), 0x1234)
	test.ExpectEquality(t, bus.Vector(b, bus.IRQ), 0x0000)
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"fe00", "$fe00", "0xfe00", "0XFE00", "#65024"} {
		a, err := bus.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, a, uint16(0xfe00), s)
	}

	_, err := bus.ParseAddress("10000")
	test.ExpectFailure(t, err)
	_, err = bus.ParseAddress("$")
	test.ExpectFailure(t, err)
	_, err = bus.ParseAddress("zz")
	test.ExpectFailure(t, err)

	d, err := bus.ParseData("$7f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x7f))
	_, err = bus.ParseData("100")
	test.ExpectFailure(t, err)
}
