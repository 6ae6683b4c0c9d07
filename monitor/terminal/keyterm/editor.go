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

package keyterm

import (
	"fmt"
	"io"
	"unicode"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
)

// list of ASCII codes for non-alphanumeric characters.
const (
	keyInterrupt      = 3
	keyEndOfFile      = 4
	keyBackspace      = 8
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of characters that can follow keyEsc.
const (
	escCursor = '['
)

// list of characters that can follow escCursor.
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// ANSI sequences used to redraw the input line.
const (
	clearLine      = "\r\033[K"
	cursorBackFmt  = "\033[%dD"
	maxHistorySize = 100
)

// editor implements line editing with a command history. It is independent of
// the terminal device.
type editor struct {
	history []string
}

// readLine reads runes until the end of the line. The input line is redrawn
// to the output after every key.
func (ed *editor) readLine(input io.RuneReader, output io.Writer, prompt string) (string, error) {
	var line []rune
	cursor := 0
	history := len(ed.history)

	// the input line before the user started scrolling through the history
	var stash []rune

	redraw := func() {
		fmt.Fprintf(output, "%s%s%s", clearLine, prompt, string(line))
		if d := len(line) - cursor; d > 0 {
			fmt.Fprintf(output, cursorBackFmt, d)
		}
	}

	recall := func(h int) {
		history = h
		if history == len(ed.history) {
			line = append(line[:0], stash...)
		} else {
			line = []rune(ed.history[history])
		}
		cursor = len(line)
	}

	redraw()

	for {
		r, _, err := input.ReadRune()
		if err != nil {
			if err == io.EOF {
				return "", curated.Errorf(terminal.UserAbort)
			}
			return "", curated.Errorf("keyterm: %v", err)
		}

		switch r {
		case keyInterrupt:
			io.WriteString(output, "\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEndOfFile:
			if len(line) == 0 {
				io.WriteString(output, "\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case keyCarriageReturn, keyLineFeed:
			io.WriteString(output, "\n")
			s := string(line)
			ed.add(s)
			return s, nil

		case keyBackspace, keyDelete:
			if cursor > 0 {
				line = append(line[:cursor-1], line[cursor:]...)
				cursor--
				history = len(ed.history)
			}

		case keyEsc:
			r, _, err = input.ReadRune()
			if err != nil || r != escCursor {
				break // switch
			}
			r, _, err = input.ReadRune()
			if err != nil {
				break // switch
			}

			switch r {
			case cursorUp:
				if history > 0 {
					if history == len(ed.history) {
						stash = append(stash[:0], line...)
					}
					recall(history - 1)
				}
			case cursorDown:
				if history < len(ed.history) {
					recall(history + 1)
				}
			case cursorForward:
				if cursor < len(line) {
					cursor++
				}
			case cursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				line = append(line, 0)
				copy(line[cursor+1:], line[cursor:])
				line[cursor] = r
				cursor++
				history = len(ed.history)
			}
		}

		redraw()
	}
}

// add input to the history. empty lines and lines that are the same as the
// most recent entry are not added.
func (ed *editor) add(s string) {
	if s == "" {
		return
	}
	if len(ed.history) > 0 && ed.history[len(ed.history)-1] == s {
		return
	}
	ed.history = append(ed.history, s)
	if len(ed.history) > maxHistorySize {
		ed.history = ed.history[1:]
	}
}
