// This file is part of Cyclestep.
//
// Cyclestep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cyclestep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cyclestep.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/TomHarte/CLK-sub007/hardware/machine"
	"github.com/TomHarte/CLK-sub007/logger"
)

// sentinel error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Brake is the number of slices between each check of the timer. Checking the
// timer channel is relatively expensive.
const Brake = 100

// Leadtime is the period of running before measurement begins.
const Leadtime = 2 * time.Second

// Check the performance of the emulator using the supplied machine.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, m *machine.Machine, duration string, leadtime time.Duration) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycles := m.CPU.Elapsed()

	runner := func() error {
		// the leadtime puts false on the timer channel. the conclusion of the
		// measurement period puts true on the channel
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		for {
			err := m.Run(1<<20, func() (bool, error) {
				brake++
				if brake < Brake {
					return true, nil
				}
				brake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, timedOut
					}

					// leadtime has concluded. measurement begins now
					startCycles = m.CPU.Elapsed()
				default:
				}
				return true, nil
			})
			if err != nil {
				return err
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := m.CPU.Elapsed() - startCycles
	mhz, accuracy := CalcMHz(cycles, dur.Seconds(), m.Prefs.Clock.Get().(float64))
	logger.Logf(logger.Allow, "performance", "%d cycles in %.2f seconds", cycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, dur.Seconds(), accuracy)

	return nil
}
