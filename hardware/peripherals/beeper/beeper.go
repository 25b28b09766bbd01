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

package beeper

import (
	"fmt"
	"math"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/dispatch"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
)

// Sink receives completed samples. The slice is only valid for the duration
// of the call.
type Sink interface {
	SetSamples(samples []int16)
}

// Beeper is a one bit speaker.
type Beeper struct {
	sink Sink

	// number of cycles in each sample
	period clocks.Cycles

	// the number of cycles into the current sample and the number of those
	// cycles for which the speaker was high
	phase clocks.Cycles
	high  clocks.Cycles

	level   bool
	toggles int

	samples []int16
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The period is the number of cycles in each sample and must be in the range
// 1 to dispatch.MaxIndex. The sink can be nil.
func NewBeeper(period clocks.Cycles, sink Sink) (*Beeper, error) {
	if period < 1 || period > dispatch.MaxIndex {
		return nil, fmt.Errorf("beeper: sample period of %d cycles is not supported", period)
	}
	return &Beeper{
		sink:    sink,
		period:  period,
		samples: make([]int16, 0, 1024),
	}, nil
}

func (b *Beeper) String() string {
	if b.level {
		return fmt.Sprintf("high (%d toggles)", b.toggles)
	}
	return fmt.Sprintf("low (%d toggles)", b.toggles)
}

// SetSink changes the destination of completed samples. A nil sink discards
// samples on Flush().
func (b *Beeper) SetSink(sink Sink) {
	b.sink = sink
}

// Period returns the number of cycles in each sample.
func (b *Beeper) Period() clocks.Cycles {
	return b.period
}

// Level returns true if the speaker is high.
func (b *Beeper) Level() bool {
	return b.level
}

// Toggles returns the number of times the speaker has been toggled.
func (b *Beeper) Toggles() int {
	return b.toggles
}

// Pending returns the number of completed samples not yet flushed.
func (b *Beeper) Pending() int {
	return len(b.samples)
}

// Toggle the level of the speaker.
func (b *Beeper) Toggle() {
	b.level = !b.level
	b.toggles++
}

// Perform implements the dispatch.Sequencer interface. The value of i is
// the cycle within the current sample.
func (b *Beeper) Perform(i int) {
	if b.level {
		b.high++
	}
}

// RunFor implements the clocks.Receiver interface.
func (b *Beeper) RunFor(cycles clocks.Cycles) {
	for cycles > 0 {
		n := min(cycles, b.period-b.phase)
		dispatch.Dispatch(b, int(b.phase), int(b.phase+n))
		b.phase += n
		cycles -= n

		if b.phase == b.period {
			b.samples = append(b.samples, b.sample())
			b.phase = 0
			b.high = 0
		}
	}
}

// a speaker that is high for the entire period produces the highest value
func (b *Beeper) sample() int16 {
	v := (2*b.high - b.period) * math.MaxInt16 / b.period
	return int16(v)
}

// PerformBusOperation implements the bus.Handler interface. A write toggles
// the speaker. A read returns the level in bit 7.
func (b *Beeper) PerformBusOperation(op bus.Operation, _ uint16, data *uint8) clocks.Cycles {
	switch op {
	case bus.Write:
		b.Toggle()
	case bus.Read, bus.ReadOpcode:
		*data = 0x7f
		if b.level {
			*data |= 0x80
		}
	}
	return 1
}

// Flush implements the bus.Flusher interface. Completed samples are sent to
// the sink.
func (b *Beeper) Flush() {
	if len(b.samples) == 0 {
		return
	}
	if b.sink != nil {
		b.sink.SetSamples(b.samples)
	}
	b.samples = b.samples[:0]
}
