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

package mos6502_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/cpu/mos6502"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/hardware/memory/ram"
	"github.com/TomHarte/CLK-sub007/test"
)

const origin uint16 = 0x0200

// holdable memory can assert the ready line
type holdable struct {
	*ram.RAM
	hold bool
}

func (h *holdable) ReadyLineAsserted() bool {
	return h.hold
}

type harness struct {
	mc  *mos6502.CPU
	mem *holdable
	rec *bus.Recorder
}

// newHarness creates a CPU attached to 64K of RAM. the reset sequence has
// completed and the next instruction will be fetched from the origin
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		mem: &holdable{RAM: ram.NewRAM()},
	}
	h.mem.Poke(mos6502.ResetVector, uint8(origin&0xff))
	h.mem.Poke(mos6502.ResetVector+1, uint8(origin>>8))
	h.rec = bus.NewRecorder(h.mem)
	h.mc = mos6502.NewCPU(h.rec)

	h.mc.RunFor(7)
	test.DemandSuccess(t, h.mc.AtInstructionBoundary())
	test.DemandEquality(t, h.mc.PC, uint16(origin))
	h.rec.Reset()

	return h
}

// putInstructions places the bytes into memory at the address. the address
// following the bytes is returned
func (h *harness) putInstructions(address uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		h.mem.Poke(address+uint16(i), b)
	}
	return address + uint16(len(bytes))
}

// step runs the CPU one cycle at a time until the next instruction boundary
// and returns the number of cycles taken
func (h *harness) step(t *testing.T) int {
	t.Helper()

	for n := 1; n <= 16; n++ {
		h.mc.RunFor(1)
		if h.mc.AtInstructionBoundary() {
			return n
		}
	}

	t.Fatalf("instruction did not complete")
	return 0
}

func (h *harness) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, h.mem.Peek(address), value, "memory", address)
}
