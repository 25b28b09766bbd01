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

package stall_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/hardware/peripherals/stall"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestHold(t *testing.T) {
	s := stall.NewStall()
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.String(), "idle")

	// the hold begins in the cycle of the write
	s.Hold(3)
	test.ExpectSuccess(t, s.ReadyLineAsserted())
	s.RunFor(1)
	test.ExpectSuccess(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.String(), "holding (3 remaining)")

	// and lasts for three further cycles
	s.RunFor(2)
	test.ExpectSuccess(t, s.ReadyLineAsserted())
	s.RunFor(1)
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.Held(), clocks.Cycles(3))

	s.RunFor(10)
	test.ExpectEquality(t, s.Held(), clocks.Cycles(3))
}

func TestZeroHold(t *testing.T) {
	s := stall.NewStall()
	s.Hold(10)
	s.RunFor(2)
	test.ExpectSuccess(t, s.ReadyLineAsserted())

	// a zero hold cancels the existing hold
	s.Hold(0)
	test.ExpectFailure(t, s.ReadyLineAsserted())
	s.RunFor(2)
	test.ExpectEquality(t, s.Held(), clocks.Cycles(2))

	s.Reset()
	test.ExpectEquality(t, s.Held(), clocks.Cycles(0))
}

func TestBusyLatency(t *testing.T) {
	s := stall.NewStall()

	read := func() uint8 {
		var data uint8
		s.PerformBusOperation(bus.Read, 0xc040, &data)
		return data
	}

	data := uint8(3)
	test.ExpectEquality(t, s.PerformBusOperation(bus.Write, 0xc040, &data), clocks.Cycles(1))
	test.ExpectEquality(t, read(), uint8(0))

	// the busy flag lags behind the ready line
	expected := []uint8{0, 0, stall.Busy, stall.Busy, stall.Busy, 0, 0}
	for i, e := range expected {
		s.RunFor(1)
		test.ExpectEquality(t, read(), e, i)
	}
	test.ExpectFailure(t, s.ReadyLineAsserted())
}

func TestRetrigger(t *testing.T) {
	s := stall.NewStall()

	// nothing to repeat
	test.ExpectFailure(t, s.Retrigger())
	test.ExpectFailure(t, s.ReadyLineAsserted())

	s.Hold(2)
	s.RunFor(4)
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.Held(), clocks.Cycles(2))

	// the control register repeats the hold
	data := uint8(stall.ControlRetrigger)
	s.PerformBusOperation(bus.Write, 0xc041, &data)
	test.ExpectSuccess(t, s.ReadyLineAsserted())
	s.RunFor(4)
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.Held(), clocks.Cycles(4))

	// retrigger takes precedence over release
	data = stall.ControlRetrigger | stall.ControlRelease
	s.PerformBusOperation(bus.Write, 0xc04f, &data)
	test.ExpectSuccess(t, s.ReadyLineAsserted())
}

func TestRelease(t *testing.T) {
	s := stall.NewStall()

	read := func(address uint16) uint8 {
		var data uint8
		s.PerformBusOperation(bus.Read, address, &data)
		return data
	}

	_, ok := s.Release()
	test.ExpectFailure(t, ok)

	s.Hold(10)
	s.RunFor(3)
	test.ExpectEquality(t, read(0xc041), uint8(stall.Busy))

	cycles, ok := s.Release()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cycles, uint8(10))
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.String(), "idle")

	// the released flag is only visible in the control register
	s.RunFor(stall.Latency + 1)
	test.ExpectEquality(t, read(0xc041), uint8(stall.Released))
	test.ExpectEquality(t, read(0xc040), uint8(0))

	// a new hold clears the released flag
	s.Hold(1)
	s.RunFor(4)
	test.ExpectEquality(t, read(0xc041), uint8(0))

	// release through the control register
	s.Hold(10)
	data := uint8(stall.ControlRelease)
	s.PerformBusOperation(bus.Write, 0xc043, &data)
	test.ExpectFailure(t, s.ReadyLineAsserted())
	test.ExpectEquality(t, s.Held(), clocks.Cycles(4))
}
