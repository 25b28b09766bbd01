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

package microops_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/cpu/microops"
	"github.com/TomHarte/CLK-sub007/test"
)

type op int

const (
	opA op = iota
	opB
	opC
	opNext
)

func TestMoveToNextProgram(t *testing.T) {
	p1 := []op{opA, opNext}
	p2 := []op{opB, opC, opNext}

	var s microops.Scheduler[op]
	s.ScheduleProgram(p1)
	s.ScheduleProgram(p2)
	test.ExpectEquality(t, s.WriteIndex(), 2)
	test.ExpectEquality(t, s.Current(), opA)

	s.Advance()
	test.ExpectEquality(t, s.Step(), 1)
	s.MoveToNextProgram()

	test.ExpectSuccess(t, s.Program(0) == nil)
	test.ExpectEquality(t, s.ReadIndex(), 1)
	test.ExpectEquality(t, s.Step(), 0)

	// p2 is unchanged
	test.DemandEquality(t, len(s.Program(1)), 3)
	test.ExpectEquality(t, s.Program(1)[0], opB)
	test.ExpectEquality(t, s.Program(1)[1], opC)
	test.ExpectEquality(t, s.Program(1)[2], opNext)
	test.ExpectEquality(t, s.Current(), opB)
}

func TestWrapAround(t *testing.T) {
	p := []op{opA, opNext}

	var s microops.Scheduler[op]
	for i := range 10 {
		test.ExpectSuccess(t, s.Empty(), i)
		s.ScheduleProgram(p)
		test.ExpectFailure(t, s.Empty(), i)
		for s.Current() != opNext {
			s.Advance()
		}
		s.MoveToNextProgram()
		test.ExpectEquality(t, s.ReadIndex(), (i+1)%microops.Slots)
		test.ExpectEquality(t, s.WriteIndex(), (i+1)%microops.Slots)
	}

	s.ScheduleProgram(p)
	s.Reset()
	test.ExpectSuccess(t, s.Empty())
	test.ExpectEquality(t, s.ReadIndex(), 0)
}

// a program can schedule its successor while it is still executing
func TestChained(t *testing.T) {
	p1 := []op{opA, opB, opNext}
	p2 := []op{opC, opNext}

	var s microops.Scheduler[op]
	s.ScheduleProgram(p1)

	var trace []op
	for range 5 {
		o := s.Current()
		trace = append(trace, o)
		switch o {
		case opB:
			s.ScheduleProgram(p2)
			s.Advance()
		case opNext:
			s.MoveToNextProgram()
		default:
			s.Advance()
		}
	}

	test.DemandEquality(t, len(trace), 5)
	for i, o := range []op{opA, opB, opNext, opC, opNext} {
		test.ExpectEquality(t, trace[i], o, i)
	}
}
