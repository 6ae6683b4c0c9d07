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

package terminal

// Style is used to indicate the category of the text printed by
// TermPrintLine(). Implementations may choose to decorate the output
// according to the style.
type Style int

// List of valid Style values.
const (
	// the input as entered by the user
	StyleEcho Style = iota

	// the normal output of a command
	StyleFeedback

	// output from the help command
	StyleHelp

	// the result of the most recent CPU instruction
	StyleInstrument

	// entries from the log
	StyleLog

	// error messages. these should be displayed even when the terminal has
	// been silenced
	StyleError
)

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. The
	// prompt is printed if the terminal is interactive.
	//
	// Returns the UserAbort error when there is no more input to be read.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
