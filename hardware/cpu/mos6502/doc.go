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

// Package mos6502 emulates the NMOS 6502 CPU one bus cycle at a time.
//
// The CPU is driven by the RunFor() function. Every cycle of the CPU is a
// single call to the PerformBusOperation() function of the bus.Handler
// attached to the CPU. The CPU stops when the requested number of cycles has
// been consumed, even if that is in the middle of an instruction. The next
// call to RunFor() continues from exactly the same point, and without
// repeating any bus operation. In other words, these two are equivalent:
//
//	mc.RunFor(10)
//
//	mc.RunFor(3)
//	mc.RunFor(7)
//
// Instructions are realised as micro-op programs which are executed by a
// microops.Scheduler. The point at which execution resumes is the current
// micro-op of the current program, which means there is no need to unwind or
// rebuild a call stack when execution stops and restarts.
//
// A bus handler may take more than one cycle for a bus operation. This is
// taken from the budget of cycles. If the budget is overdrawn the debt is
// carried into the next call to RunFor() and paid before any more bus
// operations are performed. The budget itself is never negative.
//
// Before every read cycle the ready line is sampled. The ready line can be
// set with SetReadyLine() or it can be asserted by a handler that implements
// bus.ReadyLine. While the ready line is asserted the CPU issues Ready
// operations at the last address driven onto the bus. Write cycles are not
// held.
//
// The documented instruction set is emulated fully, including decimal mode.
// Opcodes that are not documented are treated as two cycle instructions that
// have no effect.
package mos6502
