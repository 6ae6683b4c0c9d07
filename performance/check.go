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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/govern"
	"github.com/jetsetilly/emulate6502/hardware"
)

// Check runs the machine for the specified duration and writes a summary of
// the achieved rate to output. The machine should have been reset before
// calling the function. The machine's pacing setting is honoured.
func Check(output io.Writer, profile Profile, m *hardware.Machine, runTime string) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCycles := m.CPU.ElapsedCycles
	startTime := time.Now()

	err = RunProfiler(profile, "performance", func() error {
		timesUp := time.After(duration)

		var brake int

		return m.Run(context.Background(), func() (govern.State, error) {
			brake++
			if brake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			brake = 0

			select {
			case <-timesUp:
				return govern.Ending, nil
			default:
			}
			return govern.Running, nil
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	cycles := m.CPU.ElapsedCycles - startCycles

	rate, accuracy := CalcRate(cycles, elapsed, m.Rate())
	if m.Rate() > 0 {
		fmt.Fprintf(output, "%.0f cycles/sec (%d cycles in %.2f seconds) %.1f%%\n", rate, cycles, elapsed, accuracy)
	} else {
		fmt.Fprintf(output, "%.0f cycles/sec (%d cycles in %.2f seconds) uncapped\n", rate, cycles, elapsed)
	}

	return nil
}
