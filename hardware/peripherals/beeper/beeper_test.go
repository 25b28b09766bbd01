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

package beeper_test

import (
	"math"
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/hardware/peripherals/beeper"
	"github.com/TomHarte/CLK-sub007/test"
)

type sink struct {
	samples []int16
	calls   int
}

func (s *sink) SetSamples(samples []int16) {
	s.samples = append(s.samples, samples...)
	s.calls++
}

func TestPeriod(t *testing.T) {
	_, err := beeper.NewBeeper(0, nil)
	test.ExpectFailure(t, err)
	_, err = beeper.NewBeeper(257, nil)
	test.ExpectFailure(t, err)
	b, err := beeper.NewBeeper(256, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Period(), clocks.Cycles(256))
}

func TestIntegration(t *testing.T) {
	s := &sink{}
	b, err := beeper.NewBeeper(4, s)
	test.DemandSuccess(t, err)

	// low for a whole sample
	b.RunFor(4)

	// high for a whole sample
	b.Toggle()
	b.RunFor(4)

	// half and half
	b.RunFor(2)
	b.Toggle()
	b.RunFor(2)

	// the sample boundary does not have to coincide with the end of a run
	b.Toggle()
	b.RunFor(3)
	b.Toggle()
	b.RunFor(2)
	test.ExpectEquality(t, b.Pending(), 4)

	b.Flush()
	test.ExpectEquality(t, b.Pending(), 0)
	test.ExpectEquality(t, s.calls, 1)
	test.DemandEquality(t, len(s.samples), 4)
	test.ExpectEquality(t, s.samples[0], int16(-math.MaxInt16))
	test.ExpectEquality(t, s.samples[1], int16(math.MaxInt16))
	test.ExpectEquality(t, s.samples[2], int16(0))

	// three cycles high and one cycle low
	test.ExpectEquality(t, s.samples[3], int16(math.MaxInt16/2))

	// nothing to flush
	b.Flush()
	test.ExpectEquality(t, s.calls, 1)
}

func TestBus(t *testing.T) {
	b, err := beeper.NewBeeper(10, nil)
	test.DemandSuccess(t, err)

	var data uint8
	test.ExpectEquality(t, b.PerformBusOperation(bus.Read, 0xc030, &data), clocks.Cycles(1))
	test.ExpectEquality(t, data, uint8(0x7f))

	b.PerformBusOperation(bus.Write, 0xc030, &data)
	test.ExpectSuccess(t, b.Level())
	b.PerformBusOperation(bus.Read, 0xc030, &data)
	test.ExpectEquality(t, data, uint8(0xff))
	test.ExpectEquality(t, b.String(), "high (1 toggles)")

	// a ready cycle does not toggle the speaker
	b.PerformBusOperation(bus.Ready, 0xc030, &data)
	test.ExpectEquality(t, b.Toggles(), 1)

	b.PerformBusOperation(bus.Write, 0xc030, &data)
	test.ExpectFailure(t, b.Level())
	test.ExpectEquality(t, b.Toggles(), 2)

	// flushing without a sink discards the samples
	b.RunFor(25)
	test.ExpectEquality(t, b.Pending(), 2)
	b.Flush()
	test.ExpectEquality(t, b.Pending(), 0)
}

func TestSetSink(t *testing.T) {
	b, err := beeper.NewBeeper(2, nil)
	test.DemandSuccess(t, err)

	// samples are discarded without a sink
	b.RunFor(4)
	b.Flush()
	test.ExpectEquality(t, b.Pending(), 0)

	s := &sink{}
	b.SetSink(s)
	b.RunFor(4)
	b.Flush()
	test.ExpectEquality(t, len(s.samples), 2)
	test.ExpectEquality(t, s.calls, 1)
}
