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

package machine

import (
	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
)

type peripheral interface {
	clocks.Receiver
	bus.Handler
}

// synced brings a just-in-time peripheral up to date before every access
type synced[P peripheral] struct {
	*clocks.JustInTime[P]
}

func (s *synced[P]) PerformBusOperation(op bus.Operation, address uint16, data *uint8) clocks.Cycles {
	return s.Get().PerformBusOperation(op, address, data)
}

func (s *synced[P]) Flush() {
	if f, ok := any(s.Get()).(bus.Flusher); ok {
		f.Flush()
	}
}

func (s *synced[P]) ReadyLineAsserted() bool {
	if r, ok := any(s.Get()).(bus.ReadyLine); ok {
		return r.ReadyLineAsserted()
	}
	return false
}
