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

// Package stall implements a simple peripheral that can hold the CPU by
// asserting the ready line. It has two registers, mirrored through its
// address range:
//
//	even	hold register
//	odd	control register
//
// Writing a value to the hold register holds the CPU for that number of
// cycles. Writing to the control register with ControlRetrigger set repeats
// the most recent hold. With only ControlRelease set the current hold ends
// immediately. Writes are, however, only possible between holds for a CPU
// that is held on reads, so release is mostly of use to the host.
//
// Reading either register returns the busy flag in bit 7. The busy flag is
// the state of the hold as it was Latency cycles earlier. Reading the control
// register also returns Released in bit 0 if the most recent hold was ended
// by a release.
package stall

import (
	"fmt"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/delay"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
)

// Latency is the number of cycles by which the busy flag lags the hold.
const Latency = 2

// Bits of the register values.
const (
	// read from either register
	Busy = 0x80

	// read from the control register
	Released = 0x01

	// written to the control register
	ControlRelease   = 0x01
	ControlRetrigger = 0x02
)

// Stall is a ready line controller.
type Stall struct {
	hold delay.Event
	busy *delay.Pipeline[uint8]

	// number of cycles for which the ready line has been asserted after the
	// cycle in which the hold was started
	held clocks.Cycles

	// the most recent hold was ended by Release()
	released bool
}

// NewStall is the preferred method of initialisation for the Stall type.
func NewStall() *Stall {
	return &Stall{
		busy: delay.NewPipeline[uint8](Latency + 1),
	}
}

func (s *Stall) String() string {
	if s.hold.IsActive() {
		return fmt.Sprintf("holding (%d remaining)", s.hold.Remaining()+1)
	}
	return "idle"
}

// Reset releases the ready line and clears the busy flag.
func (s *Stall) Reset() {
	s.hold.Drop()
	s.busy.Reset()
	s.held = 0
	s.released = false
}

// Hold the ready line for the number of cycles. A hold of zero cycles
// releases the ready line immediately. A new hold replaces any existing
// hold.
func (s *Stall) Hold(cycles uint8) {
	s.released = false
	if cycles == 0 {
		s.hold.Drop()
		return
	}
	s.hold.Schedule(int(cycles), cycles)
}

// Retrigger repeats the most recent hold from the beginning, replacing the
// current hold if there is one. Returns false if there has never been a hold
// to repeat.
func (s *Stall) Retrigger() bool {
	s.released = false
	return s.hold.Restart()
}

// Release ends the current hold immediately. Returns the length of the hold
// that was released and true, or false if there was no hold.
func (s *Stall) Release() (uint8, bool) {
	cycles, ok := s.hold.Force()
	if ok {
		s.released = true
	}
	return cycles, ok
}

// Held returns the number of cycles the ready line has been asserted.
func (s *Stall) Held() clocks.Cycles {
	return s.held
}

// RunFor implements the clocks.Receiver interface.
func (s *Stall) RunFor(cycles clocks.Cycles) {
	for range cycles {
		s.hold.Tick()
		s.busy.Advance()
		if s.hold.IsActive() {
			s.held++
			s.busy.Insert(Busy)
		}
	}
}

// ReadyLineAsserted implements the bus.ReadyLine interface.
func (s *Stall) ReadyLineAsserted() bool {
	return s.hold.IsActive()
}

// PerformBusOperation implements the bus.Handler interface.
func (s *Stall) PerformBusOperation(op bus.Operation, address uint16, data *uint8) clocks.Cycles {
	control := address&0x01 == 0x01

	switch op {
	case bus.Write:
		if !control {
			s.Hold(*data)
		} else if *data&ControlRetrigger == ControlRetrigger {
			s.Retrigger()
		} else if *data&ControlRelease == ControlRelease {
			s.Release()
		}
	case bus.Read, bus.ReadOpcode:
		*data = s.busy.Value()
		if control && s.released {
			*data |= Released
		}
	}
	return 1
}
