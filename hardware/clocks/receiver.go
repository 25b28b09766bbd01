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

package clocks

// Receiver is implemented by any component that can be run for a period of
// time by the host.
type Receiver interface {
	RunFor(cycles Cycles)
}

// JustInTime wraps a Receiver and accumulates time intended for it. The
// component is run only when it is accessed through Get() or when Flush() is
// called. Components whose state is observed much less often than time
// passes for them are good candidates.
type JustInTime[R Receiver] struct {
	component R
	pending   Cycles
}

// NewJustInTime is the preferred method of initialisation for the JustInTime
// type.
func NewJustInTime[R Receiver](component R) *JustInTime[R] {
	return &JustInTime[R]{component: component}
}

// Add time to the pending total for the component.
func (j *JustInTime[R]) Add(cycles Cycles) {
	j.pending += cycles
}

// Pending returns the amount of time not yet delivered to the component.
func (j *JustInTime[R]) Pending() Cycles {
	return j.pending
}

// Flush delivers all pending time to the component.
func (j *JustInTime[R]) Flush() {
	if j.pending > 0 {
		j.component.RunFor(j.pending)
		j.pending = 0
	}
}

// Get returns the component after it has been brought up to date.
func (j *JustInTime[R]) Get() R {
	j.Flush()
	return j.component
}

// Peek returns the component without bringing it up to date.
func (j *JustInTime[R]) Peek() R {
	return j.component
}
