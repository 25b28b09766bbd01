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

// Package beeper implements a one bit speaker of the type found in many early
// home computers. Every write to the speaker address toggles the level of the
// speaker cone. The level is integrated over the period of each output sample
// so that transitions part way through a sample are represented
// proportionally.
//
// The Beeper type implements the clocks.Receiver interface and is intended
// to be wrapped in a clocks.JustInTime type. The level must be brought up to
// date before every access so that a toggle takes effect at the correct
// cycle.
//
// Completed samples are handed to a Sink when Flush() is called.
package beeper
