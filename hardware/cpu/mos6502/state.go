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

package mos6502

import (
	"fmt"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
)

// ResumePoint identifies the position at which execution will continue on
// the next call to RunFor(). Two ResumePoints are equal if and only if
// execution will continue from the same position.
type ResumePoint struct {
	// the scheduler slot of the current micro-op program
	Slot int

	// the step in the current micro-op program
	Step int

	// whether the most recent cycle was a Ready operation on a held bus
	Spinning bool
}

func (rp ResumePoint) String() string {
	if rp.Spinning {
		return fmt.Sprintf("slot %d step %d (spinning)", rp.Slot, rp.Step)
	}
	return fmt.Sprintf("slot %d step %d", rp.Slot, rp.Step)
}

// ResumePoint returns the position at which execution will continue.
func (mc *CPU) ResumePoint() ResumePoint {
	return ResumePoint{
		Slot:     mc.sched.ReadIndex(),
		Step:     mc.sched.Step(),
		Spinning: mc.spinning,
	}
}

// State is a snapshot of the CPU.
type State struct {
	Registers
	Resume  ResumePoint
	Opcode uint8

	// the budget remaining in the current call to RunFor(). zero between
	// calls and never negative
	Budget clocks.Cycles

	Elapsed clocks.Cycles
}

// Snapshot returns the current state of the CPU. The State contains no
// references to the CPU and can be compared with other State instances.
func (mc *CPU) Snapshot() State {
	return State{
		Registers: mc.Registers,
		Resume:    mc.ResumePoint(),
		Opcode:    mc.opcode,
		Budget:    mc.budget,
		Elapsed:   mc.elapsed,
	}
}
