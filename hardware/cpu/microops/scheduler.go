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

// Package microops implements the queue of micro-op programs used by a
// processor core.
//
// A program is a slice of micro-ops, owned by the caller, which realises one
// instruction or one step of a chip's behaviour. The final micro-op of every
// program must cause MoveToNextProgram() to be called. A Scheduler holds up to
// four programs at once and works through them in order. This allows, for
// example, a program to schedule the program that follows it before it has
// itself completed.
//
// The Scheduler does not check for overflow. Scheduling a fifth program
// before the first has completed overwrites the first.
package microops

// Slots is the number of programs that can be scheduled at once.
const Slots = 4

// Scheduler is a circular queue of micro-op programs. The zero value is an
// empty scheduler ready for use.
type Scheduler[Op any] struct {
	programs [Slots][]Op

	read  int
	write int
	step  int
}

// ScheduleProgram adds the program to the write slot and advances the write
// index. The program is not copied.
func (s *Scheduler[Op]) ScheduleProgram(program []Op) {
	s.programs[s.write] = program
	s.write = (s.write + 1) % Slots
}

// MoveToNextProgram clears the current read slot, advances the read index
// and resets the step counter to zero.
func (s *Scheduler[Op]) MoveToNextProgram() {
	s.programs[s.read] = nil
	s.read = (s.read + 1) % Slots
	s.step = 0
}

// Current returns the micro-op at the current step of the current program.
// The result is undefined if the current slot is empty.
func (s *Scheduler[Op]) Current() Op {
	return s.programs[s.read][s.step]
}

// Advance the step counter of the current program by one.
func (s *Scheduler[Op]) Advance() {
	s.step++
}

// Step returns the step counter of the current program.
func (s *Scheduler[Op]) Step() int {
	return s.step
}

// ReadIndex returns the slot of the current program.
func (s *Scheduler[Op]) ReadIndex() int {
	return s.read
}

// WriteIndex returns the slot that will be used by the next call to
// ScheduleProgram().
func (s *Scheduler[Op]) WriteIndex() int {
	return s.write
}

// Program returns the program in the numbered slot. Returns nil if the slot
// is empty.
func (s *Scheduler[Op]) Program(slot int) []Op {
	return s.programs[slot%Slots]
}

// Empty returns true if there is no current program.
func (s *Scheduler[Op]) Empty() bool {
	return s.programs[s.read] == nil
}

// Reset empties the scheduler.
func (s *Scheduler[Op]) Reset() {
	*s = Scheduler[Op]{}
}
