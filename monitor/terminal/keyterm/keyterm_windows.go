//go:build windows
// +build windows

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

package keyterm

import (
	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
)

// KeyTerminal is not available on Windows. Initialise() will always fail.
type KeyTerminal struct{}

// Initialise implements the terminal.Terminal interface.
func (kt *KeyTerminal) Initialise() error {
	return curated.Errorf("keyterm: not available on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (kt *KeyTerminal) CleanUp() {}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(_ bool) {}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(_ terminal.Style, _ string) {}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(_ string) (string, error) {
	return "", curated.Errorf(terminal.UserAbort)
}

// IsInteractive implements the terminal.Input interface.
func (kt *KeyTerminal) IsInteractive() bool {
	return false
}
