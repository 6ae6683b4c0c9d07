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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package bus

import (
	"fmt"
	"strings"
)

// Device is implemented by anything that can be attached to the Bus. The
// offset is relative to the start of the range the device was registered
// with.
//
// A device must be able to satisfy every offset in the range it is registered
// with.
type Device interface {
	Read(offset uint16) uint8
	Write(offset uint16, data uint8)
}

// Memory defines the operations for the memory system when accessed from the
// CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Binding is a single entry in the Bus.
type Binding struct {
	Start  uint16
	End    uint16
	Device Device
}

func (b Binding) String() string {
	return fmt.Sprintf("%#04x-%#04x %T", b.Start, b.End, b.Device)
}

func (b Binding) contains(address uint16) bool {
	return address >= b.Start && address <= b.End
}

// Bus is an ordered list of bindings. The zero value is an empty bus and is
// ready for use.
type Bus struct {
	bindings []Binding
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) String() string {
	s := strings.Builder{}
	for _, d := range b.bindings {
		s.WriteString(d.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Register adds a device to the bus covering the inclusive range start to
// end. If start is greater than end the two values are swapped.
//
// Devices should be registered during setup only. Bindings are never removed.
func (b *Bus) Register(start uint16, end uint16, dev Device) {
	if start > end {
		start, end = end, start
	}
	b.bindings = append(b.bindings, Binding{Start: start, End: end, Device: dev})
}

// Bindings returns a copy of the list of bindings in registration order.
func (b *Bus) Bindings() []Binding {
	c := make([]Binding, len(b.bindings))
	copy(c, b.bindings)
	return c
}

// lookup returns the first binding that contains the address.
func (b *Bus) lookup(address uint16) (*Binding, bool) {
	for i := range b.bindings {
		if b.bindings[i].contains(address) {
			return &b.bindings[i], true
		}
	}
	return nil, false
}

// Read implements the Memory interface.
func (b *Bus) Read(address uint16) uint8 {
	if d, ok := b.lookup(address); ok {
		return d.Device.Read(address - d.Start)
	}
	return 0
}

// Write implements the Memory interface.
func (b *Bus) Write(address uint16, data uint8) {
	if d, ok := b.lookup(address); ok {
		d.Device.Write(address-d.Start, data)
	}
}

// Mapped returns true if the address is covered by a binding.
func (b *Bus) Mapped(address uint16) bool {
	_, ok := b.lookup(address)
	return ok
}
