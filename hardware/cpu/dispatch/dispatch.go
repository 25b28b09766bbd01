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

// Package dispatch runs a contiguous range of numbered steps of a sequencer.
//
// The steps from start to end (exclusive) are performed by entering a
// generated switch statement at the start case and falling through each case
// in turn until the end index is reached. There is no loop and so no
// per-step loop condition.
//
// The switch statements are generated by the program in the generator
// directory. MaxIndex is the number of cases in each switch.
//
// Dispatch is used by components that need to integrate their state over a
// number of cycles, where the behaviour at each step of a period is known in
// advance. For example, a sampler with a period of N cycles that takes a
// sample at cycle zero and accumulates a value on the other cycles.
package dispatch

import "fmt"

//go:generate go run ./generator -max 256 -out switch_gen.go

// Sequencer is implemented by anything that can be dispatched.
type Sequencer interface {
	// Perform the numbered step.
	Perform(i int)
}

// SequencerFunc allows a function to be used as a Sequencer.
type SequencerFunc func(i int)

// Perform implements the Sequencer interface.
func (f SequencerFunc) Perform(i int) {
	f(i)
}

func check(start int, end int) {
	if start < 0 || start >= MaxIndex || end < start || end > MaxIndex {
		panic(fmt.Sprintf("dispatch: range [%d, %d) is outside of [0, %d)", start, end, MaxIndex))
	}
}

// Dispatch calls seq.Perform(i) for every i in the range start to end
// (exclusive), in ascending order.
//
// It is a programming error for start to be outside the range zero to
// MaxIndex-1, for end to be outside the range zero to MaxIndex or for end to
// be less than start. Dispatch will panic in those cases. An empty range is
// valid if start is in range.
func Dispatch(seq Sequencer, start int, end int) {
	check(start, end)
	if start == end {
		return
	}
	dispatch(seq, start, end)
}

// DispatchConverted is the same as Dispatch except that every index is
// remapped by the convert function before being passed to seq.Perform(). The
// range is checked before conversion. The converted indexes are not checked.
func DispatchConverted(seq Sequencer, start int, end int, convert func(int) int) {
	check(start, end)
	if start == end {
		return
	}
	dispatchConverted(seq, start, end, convert)
}
