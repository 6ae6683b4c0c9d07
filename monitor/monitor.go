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

package monitor

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/hardware"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
)

// Monitor is the command line interface to the emulated machine.
type Monitor struct {
	machine *hardware.Machine
	term    terminal.Terminal

	// interrupt signals from the operating system. can be nil
	IntEvents chan os.Signal

	// the emulation halts when the PC reaches a breakpoint during a CONT
	// command
	breakpoints map[uint16]bool

	// context of the most recent call to Start()
	ctx context.Context
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *hardware.Machine, term terminal.Terminal) *Monitor {
	return &Monitor{
		machine:     m,
		term:        term,
		breakpoints: make(map[uint16]bool),
		ctx:         context.Background(),
	}
}

// Start the monitor's input loop. The terminal should have been initialised
// before calling the function. Returns when the QUIT command is entered, when
// there is no more input, or when the context is cancelled.
func (mon *Monitor) Start(ctx context.Context) error {
	mon.ctx = ctx

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserAbort) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		mon.term.TermPrintLine(terminal.StyleEcho, input)

		quit, err := mon.parseInput(input)
		if err != nil {
			mon.printLine(terminal.StyleError, "%v", err)
		}
		if quit {
			return nil
		}
	}
}

// Command runs a single line of input as though it had been entered at the
// terminal. Returns true if the command was QUIT.
func (mon *Monitor) Command(input string) (bool, error) {
	return mon.parseInput(input)
}

// Breakpoints returns the list of breakpoints in ascending order.
func (mon *Monitor) Breakpoints() []uint16 {
	l := make([]uint16, 0, len(mon.breakpoints))
	for a := range mon.breakpoints {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

func (mon *Monitor) prompt() string {
	return fmt.Sprintf("[ $%04x ] >> ", mon.machine.CPU.PC.Address())
}

// printLine is a wrapper for TermPrintLine(). Multi-line output is divided
// and printed one line at a time.
func (mon *Monitor) printLine(style terminal.Style, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		mon.term.TermPrintLine(style, l)
	}
}
