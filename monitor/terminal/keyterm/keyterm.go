//go:build !windows
// +build !windows

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

// Package keyterm implements the Terminal interface for the monitor. The
// terminal is put into cbreak mode so that keys can be processed as they are
// pressed. The cursor keys can be used to edit the input and to recall
// previous input.
//
// The terminal is opened with "github.com/pkg/term" and is not available on
// Windows.
package keyterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
	"github.com/pkg/term"
)

// KeyTerminal reads input from the controlling terminal one key at a time.
type KeyTerminal struct {
	tty    *term.Term
	reader *bufio.Reader
	output io.Writer

	ed       editor
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (kt *KeyTerminal) Initialise() error {
	var err error

	kt.tty, err = term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return curated.Errorf("keyterm: %v", err)
	}

	kt.reader = bufio.NewReader(kt.tty)
	kt.output = os.Stdout

	return nil
}

// CleanUp returns the terminal to the mode it was in before Initialise().
func (kt *KeyTerminal) CleanUp() {
	if kt.tty == nil {
		return
	}
	_ = kt.tty.Restore()
	_ = kt.tty.Close()
	kt.tty = nil
}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {
	kt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {
	if kt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		// input has already been drawn by the editor
		return
	case terminal.StyleError:
		fmt.Fprintf(kt.output, "\033[31m* %s\033[0m\n", s)
	case terminal.StyleHelp, terminal.StyleLog:
		fmt.Fprintf(kt.output, "\033[2m%s\033[0m\n", s)
	default:
		fmt.Fprintln(kt.output, s)
	}
}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(prompt string) (string, error) {
	return kt.ed.readLine(kt.reader, kt.output, prompt)
}

// IsInteractive implements the terminal.Input interface.
func (kt *KeyTerminal) IsInteractive() bool {
	return true
}
