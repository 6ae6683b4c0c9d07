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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/emulate6502/logger"
	"github.com/jetsetilly/emulate6502/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "tick")
	log.Log(logger.Allow, "cpu", "tick")
	log.Log(logger.Allow, "cpu", "tick")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: tick (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := 0; i < 5; i++ {
		log.Logf(logger.Allow, "test", "%d", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: 2\ntest: 3\ntest: 4\n")
}

func TestRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

type stringer struct{}

func (_ stringer) String() string {
	return "stringer"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "error", errors.New("an error"))
	log.Log(logger.Allow, "stringer", stringer{})
	log.Log(logger.Allow, "int", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "error: an error\nstringer: stringer\nint: 10\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "prohibited", "entry")
	log.Log(prohibitLogging{allow: true}, "allowed", "entry")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "allowed: entry\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)
	log.Logf(logger.Allow, "echo", "%s", "hello")
	test.ExpectEquality(t, echo.String(), "echo: hello\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "silent")
	test.ExpectEquality(t, echo.String(), "echo: hello\n")
}

func TestDiscard(t *testing.T) {
	var sink logger.Sink = logger.Discard
	sink.Log(logger.Allow, "discard", "nothing")
	sink.Logf(logger.Allow, "discard", "%s", fmt.Sprint("nothing"))
}
