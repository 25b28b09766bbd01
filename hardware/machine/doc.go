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

// Package machine composes the 6502 stepper with RAM and the demonstration
// peripherals into a complete machine.
//
// The memory map is:
//
//	0000 -> ffff	ram
//	8000 -> bfff	slow ram (see Preferences.WaitStates)
//	c030 -> c03f	beeper
//	c040 -> c04f	stall controller (hold and control registers, mirrored)
//
// The peripherals are kept just-in-time. Time is accumulated for them on
// every bus operation and they are only brought up to date when they are
// accessed, when the ready line is sampled or when the CPU flushes at the end
// of a period of running.
//
// The host runs the machine in slices of Preferences.Slice cycles. The length
// of the slice has no effect on the emulation other than how often the host
// regains control.
package machine
