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

import "fmt"

// Cycles is an integral count of elapsed bus cycles. It is signed so that a
// budget can be briefly overdrawn by a step that lasts longer than the
// remaining budget. The overdraft is repaid from the next grant.
type Cycles int64

func (c Cycles) String() string {
	return fmt.Sprintf("%d cycles", int64(c))
}

// HalfCycles returns the number of half-cycles in c.
func (c Cycles) HalfCycles() HalfCycles {
	return HalfCycles(c * 2)
}

// Max returns the larger of c and d.
func (c Cycles) Max(d Cycles) Cycles {
	if c > d {
		return c
	}
	return d
}

// HalfCycles is a count of half-cycles. Used for components that respond to
// both edges of the main clock.
type HalfCycles int64

func (h HalfCycles) String() string {
	return fmt.Sprintf("%d half-cycles", int64(h))
}

// Cycles returns the number of whole cycles in h. Any half-cycle remainder is
// lost. See Flush() for the alternative.
func (h HalfCycles) Cycles() Cycles {
	return Cycles(h / 2)
}

// Flush returns the number of whole cycles in h and leaves only the
// half-cycle remainder (if any).
func (h *HalfCycles) Flush() Cycles {
	c := Cycles(*h / 2)
	*h -= HalfCycles(c * 2)
	return c
}
