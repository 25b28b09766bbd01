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

package delay

// Event is a single uint8 value delivered a fixed number of cycles in the
// future. The zero value is an Event that is not active.
type Event struct {
	// the number of calls to Tick() from Schedule() to delivery, plus one
	length int

	// calls to Tick() left before delivery, plus one. zero when the event is
	// not active
	remaining int

	value uint8
}

// Schedule the value to be delivered by the call to Tick() that follows
// delay calls to Tick(). A value that is already scheduled is replaced.
func (e *Event) Schedule(delay int, value uint8) {
	e.length = delay + 1
	e.remaining = e.length
	e.value = value
}

// Tick the event forward one cycle. Returns the scheduled value and true on
// the tick that delivers it.
func (e *Event) Tick() (uint8, bool) {
	if e.remaining == 0 {
		return 0, false
	}

	e.remaining--
	if e.remaining == 0 {
		return e.value, true
	}

	return 0, false
}

// Remaining returns the number of calls to Tick() that do not deliver the
// value. Returns -1 if the event is not active.
func (e *Event) Remaining() int {
	return e.remaining - 1
}

// Restart the event with the delay and value it was most recently scheduled
// with, whether or not it has been delivered. Returns false if the event has
// never been scheduled.
func (e *Event) Restart() bool {
	if e.length == 0 {
		return false
	}
	e.remaining = e.length
	return true
}

// Force the event to end without Tick() delivering the value. The scheduled
// value is returned along with whether the event was active.
func (e *Event) Force() (uint8, bool) {
	active := e.IsActive()
	e.remaining = 0
	return e.value, active
}

// Drop the event. The value is never delivered, although it can still be
// recovered with Restart().
func (e *Event) Drop() {
	e.remaining = 0
}

// IsActive returns true if the value has not yet been delivered.
func (e *Event) IsActive() bool {
	return e.remaining > 0
}
