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

// Package ram implements a flat 64K RAM that can be attached directly to a
// processor's bus or mapped into a bus.Overlay.
package ram

import (
	"fmt"
	"strings"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
)

// Size of the RAM in bytes.
const Size = 0x10000

// RAM is a 64K memory. An optional region of the address space can be made
// slow, in which case accesses in that region are lengthened by a number of
// wait states.
type RAM struct {
	memory []uint8

	slowOrigin uint16
	slowMemtop uint16
	waitStates clocks.Cycles
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

// SetWaitStates makes the address range origin to memtop (inclusive) slow.
// Every access in that range takes one cycle plus the number of wait states.
// A value of zero removes the slow region.
func (ram *RAM) SetWaitStates(origin uint16, memtop uint16, waitStates int) {
	ram.slowOrigin = origin
	ram.slowMemtop = memtop
	ram.waitStates = clocks.Cycles(max(waitStates, 0))
}

// PerformBusOperation implements the bus.Handler interface.
func (ram *RAM) PerformBusOperation(op bus.Operation, address uint16, data *uint8) clocks.Cycles {
	switch op {
	case bus.Read, bus.ReadOpcode:
		*data = ram.memory[address]
	case bus.Write:
		ram.memory[address] = *data
	case bus.Ready:
		// the processor is being held. the address is being redriven and
		// there is no access
		return 1
	}

	if ram.waitStates > 0 && address >= ram.slowOrigin && address <= ram.slowMemtop {
		return 1 + ram.waitStates
	}
	return 1
}

// Load copies data into RAM starting at the origin address. It is an error
// for the data to extend past the end of the address space.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return fmt.Errorf("ram: %d bytes at %04x extends past end of memory", len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// Peek returns the value at address without it being a bus operation.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Poke sets the value at address without it being a bus operation.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.memory[address] = value
}

// Memory returns the underlying memory. Useful for filling the memory with
// an initial state.
func (ram *RAM) Memory() []uint8 {
	return ram.memory
}

// Dump returns a hex dump of the address range origin to memtop (inclusive).
func (ram *RAM) Dump(origin uint16, memtop uint16) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for a := int(origin) &^ 0x0f; a <= int(memtop); a += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", a))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[a+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
