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

// Package limiter provides a rough and ready way of limiting the rate at which
// the CPU consumes cycles.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(limiter.NominalRate)
//
// The number of cycles consumed by each instruction is then passed to the
// Pace() function, which will sleep as required:
//
//	for {
//		lim.Pace(mc.Step())
//	}
//
// The clock used by the Limiter can be replaced for testing purposes.
package limiter

import (
	"time"
)

// NominalRate is the number of cycles per second when the speed multiplier
// is 1.0.
const NominalRate = 1000.0

// the minimum period of time to sleep for. sleeps shorter than this are
// deferred until the debt has built up
const minSleep = time.Millisecond

// Clock is the source of time for the Limiter.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Limiter will stall the caller such that cycles are consumed at a fixed rate.
type Limiter struct {
	clock Clock

	cyclesPerSecond float64

	// the time at which the current measurement period began and the number
	// of cycles consumed since then
	start  time.Time
	cycles float64
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(cyclesPerSecond float64) *Limiter {
	return NewLimiterWithClock(cyclesPerSecond, realClock{})
}

// NewLimiterWithClock creates a new Limiter that uses the supplied Clock
// rather than the system clock.
func NewLimiterWithClock(cyclesPerSecond float64, clock Clock) *Limiter {
	lim := &Limiter{
		clock: clock,
	}
	lim.SetRate(cyclesPerSecond)
	return lim
}

// SetRate changes the rate at which cycles are consumed. The measurement
// period is restarted. A rate of zero or less means that pacing is disabled.
func (lim *Limiter) SetRate(cyclesPerSecond float64) {
	lim.cyclesPerSecond = cyclesPerSecond
	lim.Reset()
}

// SetSpeed sets the rate to the NominalRate multiplied by the speed value.
func (lim *Limiter) SetSpeed(speed float64) {
	lim.SetRate(NominalRate * speed)
}

// Rate returns the current rate in cycles per second.
func (lim *Limiter) Rate() float64 {
	return lim.cyclesPerSecond
}

// Reset the measurement period. Should be called when execution resumes
// after a pause.
func (lim *Limiter) Reset() {
	lim.start = lim.clock.Now()
	lim.cycles = 0
}

// Pace notes that cycles have been consumed and sleeps if the cycles have
// been consumed too quickly.
func (lim *Limiter) Pace(cycles int) {
	if lim.cyclesPerSecond <= 0 {
		return
	}

	lim.cycles += float64(cycles)

	due := time.Duration(lim.cycles * float64(time.Second) / lim.cyclesPerSecond)
	elapsed := lim.clock.Now().Sub(lim.start)

	if d := due - elapsed; d >= minSleep {
		lim.clock.Sleep(d)
	}

	// restart the measurement period occasionally to prevent drift in the
	// floating point accumulation. the sleep debt is lost but that's not
	// important
	if lim.cycles >= lim.cyclesPerSecond*60 {
		lim.Reset()
	}
}
