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

package dispatch_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/cpu/dispatch"
	"github.com/TomHarte/CLK-sub007/test"
)

type sequence struct {
	performed []int
}

func (s *sequence) Perform(i int) {
	s.performed = append(s.performed, i)
}

func expectRange(t *testing.T, performed []int, start int, end int, convert func(int) int) {
	t.Helper()
	test.DemandEquality(t, len(performed), end-start, start, end)
	for i, v := range performed {
		test.ExpectEquality(t, v, convert(start+i), start, end)
	}
}

func identity(i int) int {
	return i
}

func TestDispatch(t *testing.T) {
	for _, r := range [][2]int{
		{0, 1}, {0, 10}, {5, 6}, {7, 100}, {200, 256}, {255, 256}, {0, dispatch.MaxIndex},
	} {
		var s sequence
		dispatch.Dispatch(&s, r[0], r[1])
		expectRange(t, s.performed, r[0], r[1], identity)
	}
}

func TestEmptyRange(t *testing.T) {
	var s sequence
	dispatch.Dispatch(&s, 3, 3)
	test.ExpectEquality(t, len(s.performed), 0)

	// an empty range is valid for any start in range
	dispatch.Dispatch(&s, 0, 0)
	dispatch.Dispatch(&s, dispatch.MaxIndex-1, dispatch.MaxIndex-1)
	test.ExpectEquality(t, len(s.performed), 0)
}

func TestExhaustive(t *testing.T) {
	for start := 0; start < dispatch.MaxIndex; start += 17 {
		for end := start; end <= dispatch.MaxIndex; end += 13 {
			var s sequence
			dispatch.Dispatch(&s, start, end)
			expectRange(t, s.performed, start, end, identity)
		}
	}
}

func TestConverted(t *testing.T) {
	double := func(i int) int { return i * 2 }

	var s sequence
	dispatch.DispatchConverted(&s, 10, 20, double)
	expectRange(t, s.performed, 10, 20, double)

	s.performed = s.performed[:0]
	dispatch.DispatchConverted(&s, 4, 4, double)
	test.ExpectEquality(t, len(s.performed), 0)
}

func TestSequencerFunc(t *testing.T) {
	sum := 0
	dispatch.Dispatch(dispatch.SequencerFunc(func(i int) { sum += i }), 1, 5)
	test.ExpectEquality(t, sum, 1+2+3+4)
}

func TestOutOfRange(t *testing.T) {
	for _, r := range [][2]int{
		{-1, 2}, {0, dispatch.MaxIndex + 1}, {10, 5}, {dispatch.MaxIndex + 1, dispatch.MaxIndex + 1},
		{dispatch.MaxIndex, dispatch.MaxIndex}, {-1, -1},
	} {
		func() {
			defer func() {
				test.ExpectInequality(t, recover(), nil, r[0], r[1])
			}()
			var s sequence
			dispatch.Dispatch(&s, r[0], r[1])
		}()
		func() {
			defer func() {
				test.ExpectInequality(t, recover(), nil, "converted", r[0], r[1])
			}()
			var s sequence
			dispatch.DispatchConverted(&s, r[0], r[1], func(i int) int { return i })
		}()
	}
}
