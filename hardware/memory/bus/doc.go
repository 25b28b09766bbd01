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

// Package bus defines the contract between a processor and the rest of the
// machine. Every elementary cycle of a processor is delivered to a Handler as
// a single bus operation: the kind of operation, the address driven onto the
// address bus and a slot for the data being transferred.
//
//	    CPU ---- PerformBusOperation() ----> Handler (memory, peripherals)
//	                                            |
//	    CPU <--- cycles consumed ---------------+
//
// For Read and ReadOpcode operations the handler must write a value into the
// data slot before returning. For Write operations the handler consumes the
// value and must not alter the slot. For Ready operations the address is the
// last address driven onto the bus. It is being driven again while the
// processor is held and must not be treated as a new access.
//
// The value returned by PerformBusOperation() is the number of cycles taken by
// the operation. Normally this is one but a handler may lengthen an access
// (wait states, for example). The processor deducts the full amount from its
// budget.
//
// Two optional interfaces complete the contract. A handler that implements
// Flusher is called once all the cycles of a run request have been
// delivered. This is the place to do batched work that would be expensive if
// done every cycle. A handler that implements ReadyLine can hold the
// processor on its next read cycle.
//
// The Overlay type is an address decoder that routes ranges of the address
// space to different handlers. The Recorder type wraps another handler and
// keeps a record of every operation. Useful for tests and tracing.
package bus
