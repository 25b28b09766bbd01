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

// Convertor translates cycles in one clock domain into cycles of another
// domain running at a fixed ratio to the first. The fractional remainder is
// carried between calls so that no time is lost or gained over a long run.
type Convertor struct {
	from Cycles
	to   Cycles
	acc  Cycles
}

// NewConvertor creates a Convertor for a target clock that ticks 'to' times
// for every 'from' ticks of the source clock. Both values must be positive.
func NewConvertor(from, to Cycles) *Convertor {
	if from <= 0 || to <= 0 {
		panic("clocks: convertor ratio must be positive")
	}
	return &Convertor{from: from, to: to}
}

// Advance the convertor by the number of source cycles. Returns the number of
// whole target cycles that have elapsed as a result.
func (cv *Convertor) Advance(c Cycles) Cycles {
	cv.acc += c * cv.to
	n := cv.acc / cv.from
	cv.acc -= n * cv.from
	return n
}

// Remainder returns the fractional part of a target cycle currently carried,
// expressed in units of 1/from.
func (cv *Convertor) Remainder() Cycles {
	return cv.acc
}
