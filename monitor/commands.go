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
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/govern"
	"github.com/jetsetilly/emulate6502/hardware/cpu/execution"
	"github.com/jetsetilly/emulate6502/hardware/cpu/registers"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
	"github.com/jetsetilly/emulate6502/romloader"
)

// the number of instructions that the STEP command will print individually.
// larger step counts print only the final instruction
const maxStepPrint = 32

// the number of bytes printed on each line of the PEEK command
const peekRow = 16

// parseInput divides the input into tokens and runs the command. Returns
// true if the command was QUIT.
func (mon *Monitor) parseInput(input string) (bool, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return false, nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	limits, ok := commandArgs[command]
	if !ok {
		return false, curated.Errorf("%s is not a valid command", tokens[0])
	}
	if len(args) < limits[0] || (limits[1] >= 0 && len(args) > limits[1]) {
		return false, curated.Errorf("usage: %s %s", command, commandTemplate[command])
	}

	return mon.processTokens(command, args)
}

func (mon *Monitor) processTokens(command string, args []string) (bool, error) {
	switch command {
	case cmdHelp:
		if len(args) == 0 {
			mon.printHelp()
			return false, nil
		}
		c := strings.ToUpper(args[0])
		h, ok := helps[c]
		if !ok {
			return false, curated.Errorf("no help for %s", args[0])
		}
		mon.printLine(terminal.StyleHelp, "%s %s", c, commandTemplate[c])
		mon.printLine(terminal.StyleHelp, "  %s", h)

	case cmdQuit:
		return true, nil

	case cmdReset:
		mon.machine.Reset()
		mon.printLine(terminal.StyleFeedback, "%s", mon.machine.CPU)

	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = parseCount(args[0])
			if err != nil {
				return false, err
			}
		}
		var cycles int
		for i := 0; i < n; i++ {
			cycles += mon.machine.Step()
			if n <= maxStepPrint || i == n-1 {
				mon.printResult(mon.machine.CPU.LastResult)
			}
		}
		if n > 1 {
			mon.printLine(terminal.StyleFeedback, "%d instructions in %d cycles", n, cycles)
		}

	case cmdRun:
		address, err := bus.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		limit := 0
		if len(args) > 1 {
			limit, err = parseCount(args[1])
			if err != nil {
				return false, err
			}
		}
		return false, mon.runUntil(address, limit)

	case cmdCont:
		limit := 0
		if len(args) > 0 {
			var err error
			limit, err = parseCount(args[0])
			if err != nil {
				return false, err
			}
		}
		return false, mon.cont(limit)

	case cmdBreak:
		if len(args) == 0 {
			l := mon.Breakpoints()
			if len(l) == 0 {
				mon.printLine(terminal.StyleFeedback, "no breakpoints")
			}
			for _, a := range l {
				mon.printLine(terminal.StyleFeedback, "$%04x", a)
			}
			return false, nil
		}
		address, err := bus.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		mon.breakpoints[address] = true
		mon.printLine(terminal.StyleFeedback, "breakpoint added at $%04x", address)

	case cmdClear:
		mon.breakpoints = make(map[uint16]bool)
		mon.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdCPU:
		mon.printLine(terminal.StyleInstrument, "%s", mon.machine.CPU)

	case cmdLast:
		r := mon.machine.CPU.LastResult
		if !r.Final {
			mon.printLine(terminal.StyleFeedback, "no instruction has been executed")
			return false, nil
		}
		mon.printResult(r)

	case cmdCycles:
		mon.printLine(terminal.StyleFeedback, "%d", mon.machine.CPU.ElapsedCycles)

	case cmdPeek:
		address, err := bus.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		n := 1
		if len(args) > 1 {
			n, err = parseCount(args[1])
			if err != nil {
				return false, err
			}
		}
		mon.peek(address, n)

	case cmdPoke:
		address, err := bus.ParseAddress(args[0])
		if err != nil {
			return false, err
		}
		data := make([]uint8, 0, len(args)-1)
		for _, a := range args[1:] {
			d, err := bus.ParseData(a)
			if err != nil {
				return false, err
			}
			data = append(data, d)
		}
		if _, err := romloader.LoadBytes(mon.machine.Mem, address, data); err != nil {
			return false, err
		}
		mon.peek(address, len(data))

	case cmdLoad:
		address, err := bus.ParseAddress(args[1])
		if err != nil {
			return false, err
		}
		ld := romloader.NewLoader(args[0], address)
		if err := mon.machine.Attach(ld); err != nil {
			return false, err
		}
		mon.printLine(terminal.StyleFeedback, "loaded %s to $%04x", ld.ShortName(), address)

	case cmdBank:
		if mon.machine.ROM == nil {
			return false, curated.Errorf("no ROM in %s layout", mon.machine.Layout)
		}
		if len(args) > 0 {
			bank, err := strconv.Atoi(args[0])
			if err != nil {
				return false, curated.Errorf("not a valid bank number (%s)", args[0])
			}
			if !mon.machine.ROM.SelectBank(bank) {
				return false, curated.Errorf("bank %d is not available", bank)
			}
		}
		mon.printLine(terminal.StyleFeedback, "%s", mon.machine.ROM)

	case cmdMemMap:
		mon.printLine(terminal.StyleFeedback, "%s", mon.machine)

	case cmdVideo:
		if mon.machine.Video == nil {
			return false, curated.Errorf("no video in %s layout", mon.machine.Layout)
		}
		mon.printLine(terminal.StyleFeedback, "%s", mon.machine.Video)

	case cmdLog:
		n := 10
		if len(args) > 0 {
			var err error
			n, err = parseCount(args[0])
			if err != nil {
				return false, err
			}
		}
		mon.printLog(n)

	case cmdSpeed:
		speed := &mon.machine.Instance.Prefs.Speed
		if len(args) > 0 {
			if err := speed.Set(args[0]); err != nil {
				return false, err
			}
		}
		if rate := mon.machine.Rate(); rate > 0 {
			mon.printLine(terminal.StyleFeedback, "speed %s (%.0f cycles per second)", speed, rate)
		} else {
			mon.printLine(terminal.StyleFeedback, "speed %s (uncapped)", speed)
		}

	case cmdJmpBug:
		bug := &mon.machine.Instance.Prefs.JmpIndirectBug
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "ON", "TRUE":
				_ = bug.Set(true)
			case "OFF", "FALSE":
				_ = bug.Set(false)
			default:
				return false, curated.Errorf("usage: %s %s", cmdJmpBug, commandTemplate[cmdJmpBug])
			}
		}
		if bug.Get().(bool) {
			mon.printLine(terminal.StyleFeedback, "indirect JMP bug is on")
		} else {
			mon.printLine(terminal.StyleFeedback, "indirect JMP bug is off")
		}

	case cmdMemviz:
		if err := mon.memviz(args[0]); err != nil {
			return false, err
		}
		mon.printLine(terminal.StyleFeedback, "CPU diagram written to %s", args[0])
	}

	return false, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, curated.Errorf("not a valid count (%s)", s)
	}
	return n, nil
}

func (mon *Monitor) printHelp() {
	cmds := make([]string, 0, len(helps))
	for c := range helps {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)

	for _, c := range cmds {
		mon.printLine(terminal.StyleHelp, "%-7s %s", c, commandTemplate[c])
	}
}

func (mon *Monitor) printResult(r execution.Result) {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%-16s %d cycles", r.String(), r.Cycles))
	if n := r.Notes(); n != "" {
		s.WriteString(fmt.Sprintf(" (%s)", n))
	}
	mon.printLine(terminal.StyleInstrument, "%s", s.String())
}

func (mon *Monitor) peek(address uint16, n int) {
	s := strings.Builder{}
	for i := 0; i < n; i++ {
		a := address + uint16(i)
		if i%peekRow == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mon.machine.Mem.Read(a)))

		// stop at the end of the address space
		if a == 0xffff {
			break // for loop
		}
	}
	mon.printLine(terminal.StyleFeedback, "%s", s.String())
}

func (mon *Monitor) printLog(n int) {
	t, ok := mon.machine.Instance.Log.(interface {
		Tail(io.Writer, int)
	})
	if !ok {
		mon.printLine(terminal.StyleFeedback, "logging is not enabled")
		return
	}

	s := strings.Builder{}
	t.Tail(&s, n)
	if s.Len() == 0 {
		mon.printLine(terminal.StyleFeedback, "log is empty")
		return
	}
	mon.printLine(terminal.StyleLog, "%s", s.String())
}

// runWithInterrupt calls the run function with a context that is cancelled
// when a value is received on the IntEvents channel.
func (mon *Monitor) runWithInterrupt(run func(ctx context.Context) error) (bool, error) {
	ctx, cancel := context.WithCancel(mon.ctx)
	defer cancel()

	if mon.IntEvents != nil {
		// discard any interrupt received while waiting for input
		select {
		case <-mon.IntEvents:
		default:
		}

		go func() {
			select {
			case <-mon.IntEvents:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	err := run(ctx)
	if errors.Is(err, context.Canceled) && mon.ctx.Err() == nil {
		return true, nil
	}
	return false, err
}

func (mon *Monitor) runUntil(address uint16, limit int) error {
	var ok bool

	interrupted, err := mon.runWithInterrupt(func(ctx context.Context) error {
		var err error
		ok, err = mon.machine.RunUntil(ctx, address, limit)
		return err
	})
	if err != nil {
		return err
	}

	switch {
	case interrupted:
		mon.printLine(terminal.StyleFeedback, "interrupted")
	case ok:
		mon.printLine(terminal.StyleFeedback, "reached $%04x", address)
	default:
		mon.printLine(terminal.StyleFeedback, "instruction limit reached")
	}
	mon.printLine(terminal.StyleInstrument, "%s", mon.machine.CPU)

	return nil
}

func (mon *Monitor) cont(limit int) error {
	var reason string
	var n int

	interrupted, err := mon.runWithInterrupt(func(ctx context.Context) error {
		return mon.machine.Run(ctx, func() (govern.State, error) {
			n++
			pc := mon.machine.CPU.PC.Address()
			if mon.breakpoints[pc] {
				reason = fmt.Sprintf("breakpoint at $%04x", pc)
				return govern.Ending, nil
			}
			if limit > 0 && n >= limit {
				reason = "instruction limit reached"
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	})
	if err != nil {
		return err
	}

	if interrupted {
		reason = "interrupted"
	}
	mon.printLine(terminal.StyleFeedback, "%s", reason)
	mon.printLine(terminal.StyleInstrument, "%s", mon.machine.CPU)

	return nil
}

func (mon *Monitor) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	mc := mon.machine.CPU
	state := struct {
		PC         registers.ProgramCounter
		A          registers.Register
		X          registers.Register
		Y          registers.Register
		SP         registers.StackPointer
		Status     registers.StatusRegister
		LastResult execution.Result
	}{
		PC:         mc.PC,
		A:          mc.A,
		X:          mc.X,
		Y:          mc.Y,
		SP:         mc.SP,
		Status:     mc.Status,
		LastResult: mc.LastResult,
	}

	memviz.Map(f, &state)

	return nil
}
