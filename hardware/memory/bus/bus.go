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

package bus

import (
	"github.com/TomHarte/CLK-sub007/hardware/clocks"
)

// Operation is the kind of activity occurring on the bus during a cycle.
type Operation int

// List of valid Operation values. None is used internally by processors to
// mark a cycle that has no bus activity and is never passed to a Handler.
const (
	None Operation = iota
	Read
	ReadOpcode
	Write
	Ready
)

func (op Operation) String() string {
	switch op {
	case None:
		return "none"
	case Read:
		return "read"
	case ReadOpcode:
		return "read opcode"
	case Write:
		return "write"
	case Ready:
		return "ready"
	}
	return "unknown bus operation"
}

// IsRead returns true if the operation expects the handler to supply a value.
func (op Operation) IsRead() bool {
	return op == Read || op == ReadOpcode
}

// Handler is implemented by anything that can be attached to a processor's
// bus. See the package documentation for the obligations the handler has for
// each kind of operation.
type Handler interface {
	PerformBusOperation(op Operation, address uint16, data *uint8) clocks.Cycles
}

// Flusher is an optional interface for a Handler. Flush() is called once all
// the cycles of a run request have been delivered.
type Flusher interface {
	Flush()
}

// ReadyLine is an optional interface for a Handler. While ReadyLineAsserted()
// returns true the processor will not perform read cycles and will instead
// issue Ready operations.
type ReadyLine interface {
	ReadyLineAsserted() bool
}
