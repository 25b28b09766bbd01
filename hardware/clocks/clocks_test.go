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

package clocks_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestHalfCycles(t *testing.T) {
	c := clocks.Cycles(3)
	test.ExpectEquality(t, c.HalfCycles(), clocks.HalfCycles(6))

	h := clocks.HalfCycles(7)
	test.ExpectEquality(t, h.Cycles(), clocks.Cycles(3))
	test.ExpectEquality(t, h.Flush(), clocks.Cycles(3))
	test.ExpectEquality(t, h, clocks.HalfCycles(1))

	h += 1
	test.ExpectEquality(t, h.Flush(), clocks.Cycles(1))
	test.ExpectEquality(t, h, clocks.HalfCycles(0))
}

func TestConvertor(t *testing.T) {
	// three target cycles for every two source cycles
	cv := clocks.NewConvertor(2, 3)

	var total clocks.Cycles
	for range 100 {
		total += cv.Advance(1)
	}
	test.ExpectEquality(t, total, clocks.Cycles(150))
	test.ExpectEquality(t, cv.Remainder(), clocks.Cycles(0))

	// advancing by an odd amount leaves a remainder
	test.ExpectEquality(t, cv.Advance(1), clocks.Cycles(1))
	test.ExpectEquality(t, cv.Remainder(), clocks.Cycles(1))
	test.ExpectEquality(t, cv.Advance(1), clocks.Cycles(2))
	test.ExpectEquality(t, cv.Remainder(), clocks.Cycles(0))
}

type counter struct {
	runs  int
	total clocks.Cycles
}

func (c *counter) RunFor(cycles clocks.Cycles) {
	c.runs++
	c.total += cycles
}

func TestJustInTime(t *testing.T) {
	c := &counter{}
	j := clocks.NewJustInTime(c)

	j.Add(10)
	j.Add(5)
	test.ExpectEquality(t, j.Pending(), clocks.Cycles(15))
	test.ExpectEquality(t, j.Peek().runs, 0)

	// access brings the component up to date in a single run
	test.ExpectEquality(t, j.Get().total, clocks.Cycles(15))
	test.ExpectEquality(t, c.runs, 1)
	test.ExpectEquality(t, j.Pending(), clocks.Cycles(0))

	// flushing with nothing pending does not run the component
	j.Flush()
	test.ExpectEquality(t, c.runs, 1)
}
