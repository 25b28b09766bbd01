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

package ram_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/hardware/memory/ram"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestReadWrite(t *testing.T) {
	mem := ram.NewRAM()

	var d uint8 = 0xaa
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Write, 0x1234, &d), clocks.Cycles(1))
	test.ExpectEquality(t, mem.Peek(0x1234), uint8(0xaa))

	d = 0
	mem.PerformBusOperation(bus.ReadOpcode, 0x1234, &d)
	test.ExpectEquality(t, d, uint8(0xaa))

	// ready operations are not accesses
	mem.Poke(0x1234, 0x55)
	d = 0
	mem.PerformBusOperation(bus.Ready, 0x1234, &d)
	test.ExpectEquality(t, d, uint8(0))
}

func TestWaitStates(t *testing.T) {
	mem := ram.NewRAM()
	mem.SetWaitStates(0x8000, 0x8fff, 2)

	var d uint8
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Read, 0x7fff, &d), clocks.Cycles(1))
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Read, 0x8000, &d), clocks.Cycles(3))
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Write, 0x8fff, &d), clocks.Cycles(3))
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Read, 0x9000, &d), clocks.Cycles(1))
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Ready, 0x8000, &d), clocks.Cycles(1))

	mem.SetWaitStates(0, 0, 0)
	test.ExpectEquality(t, mem.PerformBusOperation(bus.Read, 0x8000, &d), clocks.Cycles(1))
}

func TestLoad(t *testing.T) {
	mem := ram.NewRAM()
	test.ExpectSuccess(t, mem.Load(0xfffe, []uint8{0x01, 0x02}))
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0x02))
	test.ExpectFailure(t, mem.Load(0xffff, []uint8{0x01, 0x02}))

	test.ExpectEquality(t, mem.Dump(0xfff0, 0xffff),
		"        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n"+
			"fff0 |  00 00 00 00 00 00 00 00 00 00 00 00 00 00 01 02")
}
