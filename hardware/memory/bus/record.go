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

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
)

// Record is a single bus operation as witnessed by the Recorder.
type Record struct {
	Operation Operation
	Address   uint16
	Data      uint8
	Cycles    clocks.Cycles
}

func (r Record) String() string {
	if r.Operation == Ready {
		return fmt.Sprintf("%-11s %04x", r.Operation, r.Address)
	}
	if r.Cycles != 1 {
		return fmt.Sprintf("%-11s %04x %02x (%d cycles)", r.Operation, r.Address, r.Data, r.Cycles)
	}
	return fmt.Sprintf("%-11s %04x %02x", r.Operation, r.Address, r.Data)
}

// Recorder wraps a Handler and keeps a Record of every bus operation that
// passes through it. The optional Flusher and ReadyLine interfaces are
// forwarded to the wrapped handler.
type Recorder struct {
	handler Handler

	// the records witnessed since the last call to Reset()
	Records []Record

	// the number of calls to Flush()
	Flushes int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder(handler Handler) *Recorder {
	return &Recorder{
		handler: handler,
		Records: make([]Record, 0, 1024),
	}
}

// Reset forgets all records.
func (rec *Recorder) Reset() {
	rec.Records = rec.Records[:0]
	rec.Flushes = 0
}

// PerformBusOperation implements the Handler interface.
func (rec *Recorder) PerformBusOperation(op Operation, address uint16, data *uint8) clocks.Cycles {
	c := rec.handler.PerformBusOperation(op, address, data)
	rec.Records = append(rec.Records, Record{
		Operation: op,
		Address:   address,
		Data:      *data,
		Cycles:    c,
	})
	return c
}

// Flush implements the Flusher interface.
func (rec *Recorder) Flush() {
	rec.Flushes++
	if f, ok := rec.handler.(Flusher); ok {
		f.Flush()
	}
}

// ReadyLineAsserted implements the ReadyLine interface.
func (rec *Recorder) ReadyLineAsserted() bool {
	if r, ok := rec.handler.(ReadyLine); ok {
		return r.ReadyLineAsserted()
	}
	return false
}

// Count returns the number of records of the specified operation kind.
func (rec *Recorder) Count(op Operation) int {
	n := 0
	for _, r := range rec.Records {
		if r.Operation == op {
			n++
		}
	}
	return n
}
