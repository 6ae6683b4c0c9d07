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

// Package pagedrom implements a bank switched area of read-only memory. Any
// number of banks can be added to the device but only one bank is visible on
// the bus at any one time.
package pagedrom

import (
	"fmt"

	"github.com/jetsetilly/emulate6502/curated"
)

// BankSize is the size of each bank in bytes.
const BankSize = 0x4000

// Sentinal error patterns.
const (
	EmptyBank    = "pagedrom: bank is empty"
	BankTooLarge = "pagedrom: bank is too large (%d bytes)"
)

// PagedROM is a bank switched read-only memory device. Writes to the device
// are ignored. Reads return zero if no bank has been selected.
type PagedROM struct {
	banks    [][]uint8
	selected int
}

// NewPagedROM is the preferred method of initialisation for the PagedROM type.
func NewPagedROM() *PagedROM {
	return &PagedROM{
		selected: -1,
	}
}

func (rom *PagedROM) String() string {
	if rom.selected < 0 {
		return fmt.Sprintf("%d banks, none selected", len(rom.banks))
	}
	return fmt.Sprintf("%d banks, bank %d selected", len(rom.banks), rom.selected)
}

// AddBank adds a new bank of data to the end of the list of banks. Data
// shorter than BankSize is padded with zeroes. Returns the number of the new
// bank.
func (rom *PagedROM) AddBank(data []uint8) (int, error) {
	if len(data) == 0 {
		return -1, curated.Errorf(EmptyBank)
	}
	if len(data) > BankSize {
		return -1, curated.Errorf(BankTooLarge, len(data))
	}

	bank := make([]uint8, BankSize)
	copy(bank, data)
	rom.banks = append(rom.banks, bank)

	return len(rom.banks) - 1, nil
}

// NumBanks returns the number of banks that have been added.
func (rom *PagedROM) NumBanks() int {
	return len(rom.banks)
}

// SelectBank makes the numbered bank visible. Returns false if there is no such
// bank, in which case the current selection is unchanged.
func (rom *PagedROM) SelectBank(bank int) bool {
	if bank < 0 || bank >= len(rom.banks) {
		return false
	}
	rom.selected = bank
	return true
}

// Selected returns the currently selected bank or -1 if no bank is selected.
func (rom *PagedROM) Selected() int {
	return rom.selected
}

// Read implements the bus.Device interface.
func (rom *PagedROM) Read(offset uint16) uint8 {
	if rom.selected < 0 || int(offset) >= BankSize {
		return 0
	}
	return rom.banks[rom.selected][offset]
}

// Write implements the bus.Device interface. Writes are ignored.
func (rom *PagedROM) Write(_ uint16, _ uint8) {
}
