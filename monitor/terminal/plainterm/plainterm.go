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

// Package plainterm implements the Terminal interface for the monitor. It's
// as simple as can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	// input and output default to stdin and stdout if they are nil when
	// Initialise() is called
	Input  io.Reader
	Output io.Writer

	scanner    *bufio.Scanner
	realInput  bool
	realOutput bool
	silenced   bool
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.Input == nil {
		pt.Input = os.Stdin
	}
	if pt.Output == nil {
		pt.Output = os.Stdout
	}

	if f, ok := pt.Input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := pt.Output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	pt.scanner = bufio.NewScanner(pt.Input)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		// the user's input is echoed by the real terminal
		if pt.realInput {
			return
		}
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	io.WriteString(pt.Output, s)
	io.WriteString(pt.Output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.realInput {
		io.WriteString(pt.Output, prompt)
	}

	if !pt.scanner.Scan() {
		if err := pt.scanner.Err(); err != nil {
			return "", curated.Errorf("plainterm: %v", err)
		}
		return "", curated.Errorf(terminal.UserAbort)
	}

	return pt.scanner.Text(), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}
