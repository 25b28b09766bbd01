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
	"fmt"
	"reflect"
	"strings"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
)

// FloatingBus is the value returned by a read of an unmapped address.
const FloatingBus = 0xff

type area struct {
	origin  uint16
	memtop  uint16
	label   string
	handler Handler
}

// Overlay is an address decoder. Address ranges are mapped to handlers with
// the Map() function. Later mappings take precedence over earlier mappings
// where ranges overlap.
//
// Reads of unmapped addresses return FloatingBus. Writes to unmapped
// addresses are ignored. All accesses to unmapped addresses take one cycle.
type Overlay struct {
	areas []area

	// unique handlers implementing the optional interfaces. collected by
	// Map() so that Flush() and ReadyLineAsserted() do no work per call
	flushers   []Flusher
	readyLines []ReadyLine
}

// contains is true if h is already in the list. a handler of a
// non-comparable type is never reported as present.
func contains[T any](list []T, h Handler) bool {
	if !reflect.TypeOf(h).Comparable() {
		return false
	}
	for _, l := range list {
		if any(l) == any(h) {
			return true
		}
	}
	return false
}

// Map the address range origin to memtop (inclusive) to the handler. The
// label is used by String().
func (ov *Overlay) Map(origin uint16, memtop uint16, label string, handler Handler) {
	if memtop < origin {
		panic(fmt.Sprintf("bus: invalid overlay range %04x to %04x", origin, memtop))
	}
	ov.areas = append(ov.areas, area{
		origin:  origin,
		memtop:  memtop,
		label:   label,
		handler: handler,
	})
	if f, ok := handler.(Flusher); ok && !contains(ov.flushers, handler) {
		ov.flushers = append(ov.flushers, f)
	}
	if r, ok := handler.(ReadyLine); ok && !contains(ov.readyLines, handler) {
		ov.readyLines = append(ov.readyLines, r)
	}
}

func (ov *Overlay) String() string {
	s := strings.Builder{}
	for _, a := range ov.areas {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", a.origin, a.memtop, a.label))
	}
	return s.String()
}

func (ov *Overlay) find(address uint16) Handler {
	for i := len(ov.areas) - 1; i >= 0; i-- {
		a := &ov.areas[i]
		if address >= a.origin && address <= a.memtop {
			return a.handler
		}
	}
	return nil
}

// PerformBusOperation implements the Handler interface.
func (ov *Overlay) PerformBusOperation(op Operation, address uint16, data *uint8) clocks.Cycles {
	h := ov.find(address)
	if h == nil {
		if op.IsRead() {
			*data = FloatingBus
		}
		return 1
	}
	return h.PerformBusOperation(op, address, data)
}

// Flush implements the Flusher interface. Every mapped handler that
// implements Flusher is flushed once, even if it is mapped more than once.
func (ov *Overlay) Flush() {
	for _, f := range ov.flushers {
		f.Flush()
	}
}

// ReadyLineAsserted implements the ReadyLine interface. The ready line is
// wired-OR: any mapped handler can assert it.
func (ov *Overlay) ReadyLineAsserted() bool {
	for _, r := range ov.readyLines {
		if r.ReadyLineAsserted() {
			return true
		}
	}
	return false
}
