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
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/mos6502"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/logger"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestReset(t *testing.T) {
	h := newHarness(t)
	test.ExpectEquality(t, h.mc.SP, uint8(0xfd))
	test.ExpectSuccess(t, h.mc.Status.InterruptDisable)
	test.ExpectEquality(t, h.mc.Elapsed(), clocks.Cycles(7))

	// reset part way through an instruction
	h.putInstructions(origin, 0xad, 0x00, 0x10)
	h.mc.RunFor(2)
	h.mc.Reset()
	h.rec.Reset()
	h.mc.RunFor(7)
	test.ExpectSuccess(t, h.mc.AtInstructionBoundary())
	test.ExpectEquality(t, h.mc.PC, uint16(origin))
	test.ExpectEquality(t, h.mc.SP, uint8(0xfa))
	test.DemandEquality(t, len(h.rec.Records), 7)
	test.ExpectEquality(t, h.rec.Records[5].Address, uint16(mos6502.ResetVector))
	test.ExpectEquality(t, h.rec.Records[6].Address, uint16(mos6502.ResetVector+1))
}

// a program that exercises most of the timing variations
func loadLoop(h *harness) {
	h.putInstructions(origin,
		0xa2, 0x00, // LDX #$00
		0xbd, 0xf0, 0x03, // LDA $03f0,X
		0x9d, 0x00, 0x80, // STA $8000,X
		0xe8,             // INX
		0x20, 0x11, 0x02, // JSR $0211
		0xd0, 0xf4, // BNE $0202
		0x4c, 0x00, 0x02, // JMP $0200
		0x48,             // PHA
		0x68,             // PLA
		0x6c, 0x20, 0x02, // JMP ($0220)
		0x60, // RTS
	)
	h.putInstructions(0x0220, 0x16, 0x02)

	// stores are to slow memory
	h.mem.SetWaitStates(0x8000, 0x80ff, 2)
}

func TestSplitInvariance(t *testing.T) {
	const total = 5000

	a := newHarness(t)
	loadLoop(a)
	a.mc.RunFor(total)

	b := newHarness(t)
	loadLoop(b)
	rnd := rand.New(rand.NewPCG(1, 2))
	remaining := total
	for remaining > 0 {
		n := min(rnd.IntN(9), remaining)
		b.mc.RunFor(clocks.Cycles(n))
		remaining -= n
	}

	test.ExpectEquality(t, a.mc.Snapshot(), b.mc.Snapshot())
	test.DemandEquality(t, len(a.rec.Records), len(b.rec.Records))
	for i := range a.rec.Records {
		if !test.ExpectEquality(t, a.rec.Records[i], b.rec.Records[i], i) {
			break
		}
	}

	// split one cycle at a time
	c := newHarness(t)
	loadLoop(c)
	for range total {
		c.mc.RunFor(1)
	}
	test.ExpectEquality(t, a.mc.Snapshot(), c.mc.Snapshot())
	test.ExpectEquality(t, len(a.rec.Records), len(c.rec.Records))
}

func TestExactBudget(t *testing.T) {
	h := newHarness(t)
	h.putInstructions(origin, 0xea, 0xea, 0x4c, 0x00, 0x02)

	for _, n := range []int{0, 1, 2, 3, 50, 1001} {
		h.rec.Reset()
		start := h.mc.Elapsed()
		h.mc.RunFor(clocks.Cycles(n))
		test.ExpectEquality(t, len(h.rec.Records), n, n)
		test.ExpectEquality(t, h.mc.Elapsed()-start, clocks.Cycles(n), n)
	}

	// negative requests do nothing
	h.rec.Reset()
	h.mc.RunFor(-10)
	test.ExpectEquality(t, len(h.rec.Records), 0)
	test.ExpectEquality(t, h.rec.Flushes, 0)

	// flush is called once per request
	h.mc.RunFor(10)
	test.ExpectEquality(t, h.rec.Flushes, 1)
}

func TestElongation(t *testing.T) {
	h := newHarness(t)
	h.mem.SetWaitStates(0x8000, 0x8000, 2)
	h.putInstructions(origin, 0xad, 0x00, 0x80, 0xea) // LDA $8000; NOP
	h.mem.Poke(0x8000, 0x42)

	// the fourth cycle of the LDA overdraws the budget by two cycles
	h.mc.RunFor(4)
	test.DemandEquality(t, len(h.rec.Records), 4)
	test.ExpectEquality(t, h.rec.Records[3].Cycles, clocks.Cycles(3))
	test.ExpectEquality(t, h.mc.A, uint8(0x42))
	test.ExpectEquality(t, h.mc.Snapshot().Budget, clocks.Cycles(0))

	// the debt is carried over and the budget is never negative
	h.mc.RunFor(1)
	test.ExpectEquality(t, len(h.rec.Records), 4)
	test.ExpectEquality(t, h.mc.Snapshot().Budget, clocks.Cycles(0))
	h.mc.RunFor(1)
	test.ExpectEquality(t, len(h.rec.Records), 4)
	test.ExpectEquality(t, h.mc.Snapshot().Budget, clocks.Cycles(0))
	h.mc.RunFor(1)
	test.ExpectEquality(t, len(h.rec.Records), 5)
	test.ExpectEquality(t, h.rec.Records[4].Operation, bus.ReadOpcode)
	test.ExpectEquality(t, h.mc.Elapsed(), clocks.Cycles(7+7))
}

func TestReadySpin(t *testing.T) {
	h := newHarness(t)
	h.putInstructions(origin, 0xad, 0x34, 0x12) // LDA $1234
	h.mem.Poke(0x1234, 0x99)

	// fetch opcode and address low byte
	h.mc.RunFor(2)
	before := h.mc.ResumePoint()

	h.mem.hold = true
	h.rec.Reset()
	h.mc.RunFor(100)
	test.DemandEquality(t, len(h.rec.Records), 100)
	test.ExpectEquality(t, h.rec.Count(bus.Ready), 100)
	for _, r := range h.rec.Records {
		test.ExpectEquality(t, r.Address, uint16(origin+1))
	}
	test.ExpectSuccess(t, h.mc.ResumePoint().Spinning)
	test.ExpectEquality(t, h.mc.ResumePoint().Step, before.Step)

	// releasing the hold continues with the diverted read
	h.mem.hold = false
	h.rec.Reset()
	h.mc.RunFor(2)
	test.DemandEquality(t, len(h.rec.Records), 2)
	test.ExpectEquality(t, h.rec.Records[0], bus.Record{Operation: bus.Read, Address: origin + 2, Data: 0x12, Cycles: 1})
	test.ExpectEquality(t, h.rec.Records[1], bus.Record{Operation: bus.Read, Address: 0x1234, Data: 0x99, Cycles: 1})
	test.ExpectEquality(t, h.mc.A, uint8(0x99))
	test.ExpectFailure(t, h.mc.ResumePoint().Spinning)

	// the CPU's own ready line
	h.mc.SetReadyLine(true)
	h.rec.Reset()
	h.mc.RunFor(10)
	test.ExpectEquality(t, h.rec.Count(bus.Ready), 10)
	test.ExpectEquality(t, h.rec.Records[0].Address, uint16(0x1234))
	h.mc.SetReadyLine(false)
}

func TestReadyDoesNotHoldWrites(t *testing.T) {
	h := newHarness(t)
	h.putInstructions(origin, 0x20, 0x00, 0x03) // JSR $0300

	// JSR is: fetch opcode, fetch low, read stack, push PCH, push PCL, fetch high
	h.mc.RunFor(3)
	h.mem.hold = true
	h.rec.Reset()
	h.mc.RunFor(5)

	test.DemandEquality(t, len(h.rec.Records), 5)
	test.ExpectEquality(t, h.rec.Records[0].Operation, bus.Write)
	test.ExpectEquality(t, h.rec.Records[1].Operation, bus.Write)
	test.ExpectEquality(t, h.rec.Records[2].Operation, bus.Ready)
	test.ExpectEquality(t, h.rec.Records[2].Address, uint16(0x01fc))
	h.assert(t, 0x01fd, 0x02)
	h.assert(t, 0x01fc, 0x02)
}

func TestUndefined(t *testing.T) {
	logger.Clear()

	h := newHarness(t)
	h.putInstructions(origin, 0x02, 0xea)
	test.ExpectEquality(t, h.step(t), 2)
	test.ExpectEquality(t, h.mc.PC, uint16(origin+1))
	test.ExpectEquality(t, h.mc.LastDefinition().Operator, mos6502.Undefined)

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectSuccess(t, strings.Contains(s.String(), "undefined opcode 02 at 0200"))
}
