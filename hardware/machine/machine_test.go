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

package machine_test

import (
	"path/filepath"
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/machine"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/prefs"
	"github.com/TomHarte/CLK-sub007/test"
)

type sink struct {
	samples []int16
}

func (s *sink) SetSamples(samples []int16) {
	s.samples = append(s.samples, samples...)
}

func newMachine(t *testing.T, s *sink, trace bool, program ...uint8) *machine.Machine {
	t.Helper()

	p, err := machine.NewPreferences("")
	test.DemandSuccess(t, err)

	var m *machine.Machine
	if s == nil {
		m, err = machine.NewMachine(p, nil, trace)
	} else {
		m, err = machine.NewMachine(p, s, trace)
	}
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadProgram(0x0200, program))
	m.Reset()

	return m
}

func TestMap(t *testing.T) {
	m := newMachine(t, nil, false)
	test.ExpectEquality(t, m.Map(), "0000 -> ffff\tram\nc030 -> c03f\tbeeper\nc040 -> c04f\tstall\n")
}

func TestStall(t *testing.T) {
	for _, hold := range []uint8{0, 5, 1} {
		m := newMachine(t, nil, false,
			0xa9, hold, // LDA #hold
			0x8d, 0x40, 0xc0, // STA $c040
			0xea,             // NOP
			0x4c, 0x06, 0x02, // JMP $0206
		)

		// reset and the three instructions
		cycles := clocks.Cycles(7 + 2 + 4 + 2)

		// the instruction following the write is delayed by the hold
		test.ExpectSuccess(t, m.Run(cycles+clocks.Cycles(hold)-1, nil))
		test.ExpectFailure(t, m.CPU.AtInstructionBoundary(), hold)

		test.ExpectSuccess(t, m.Run(1, nil))
		test.ExpectEquality(t, m.CPU.PC, uint16(0x0206), hold)
		test.ExpectSuccess(t, m.CPU.AtInstructionBoundary(), hold)
		test.ExpectEquality(t, m.Stall.Peek().Held(), clocks.Cycles(hold), hold)
	}
}

func TestStallRetrigger(t *testing.T) {
	m := newMachine(t, nil, false,
		0xa9, 0x05, // LDA #$05
		0x8d, 0x40, 0xc0, // STA $c040
		0xa9, 0x02, // LDA #$02
		0x8d, 0x41, 0xc0, // STA $c041
		0xea,             // NOP
		0x4c, 0x0b, 0x02, // JMP $020b
	)

	// reset, the four instructions and the two holds
	test.ExpectSuccess(t, m.Run(7+2+4+2+5+4+2+5, nil))
	test.ExpectEquality(t, m.CPU.PC, uint16(0x020b))
	test.ExpectSuccess(t, m.CPU.AtInstructionBoundary())
	test.ExpectEquality(t, m.Stall.Peek().Held(), clocks.Cycles(10))

	test.ExpectSuccess(t, m.Run(100, nil))
	test.ExpectEquality(t, m.Stall.Peek().Held(), clocks.Cycles(10))
}

func TestBeeper(t *testing.T) {
	s := &sink{}
	m := newMachine(t, s, false,
		0x8d, 0x30, 0xc0, // STA $c030
		0x4c, 0x00, 0x02, // JMP $0200
	)
	test.ExpectEquality(t, m.SampleRate(), 44369)

	test.ExpectSuccess(t, m.Run(7+7*100, nil))
	test.ExpectEquality(t, m.Beeper.Peek().Toggles(), 100)

	// the beeper has been brought up to date and flushed
	test.ExpectEquality(t, m.Beeper.Pending(), clocks.Cycles(0))
	test.ExpectEquality(t, m.Beeper.Peek().Pending(), 0)
	test.ExpectEquality(t, len(s.samples), 30)
}

func TestWaitStates(t *testing.T) {
	m := newMachine(t, nil, true,
		0xad, 0x00, 0x80, // LDA $8000
		0x4c, 0x03, 0x02, // JMP $0203
	)

	// default of one wait state
	test.ExpectSuccess(t, m.Run(7+5, nil))
	test.ExpectEquality(t, m.CPU.PC, uint16(0x0203))
	test.ExpectSuccess(t, m.CPU.AtInstructionBoundary())

	var slow []bus.Record
	for _, r := range m.Trace.Records {
		if r.Address == 0x8000 {
			slow = append(slow, r)
		}
	}
	test.DemandEquality(t, len(slow), 1)
	test.ExpectEquality(t, slow[0].Operation, bus.Read)
	test.ExpectEquality(t, slow[0].Cycles, clocks.Cycles(2))

	// changing the preference changes the ram immediately
	test.ExpectSuccess(t, m.Prefs.WaitStates.Set(3))
	m.Reset()
	m.Trace.Reset()
	test.ExpectSuccess(t, m.Run(7+4+3, nil))
	test.ExpectEquality(t, m.CPU.PC, uint16(0x0203))
	test.ExpectSuccess(t, m.CPU.AtInstructionBoundary())

	// the recorder sees every flush
	test.ExpectEquality(t, m.Trace.Flushes, 1)
}

func TestSlices(t *testing.T) {
	m := newMachine(t, nil, false, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Prefs.Slice.Set(16))

	var slices int
	err := m.Run(100, func() (bool, error) {
		slices++
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, slices, 7)
	test.ExpectEquality(t, m.CPU.Elapsed(), clocks.Cycles(100))

	// stop after the second slice
	slices = 0
	err = m.Run(100, func() (bool, error) {
		slices++
		return slices < 2, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, slices, 2)
	test.ExpectEquality(t, m.CPU.Elapsed(), clocks.Cycles(132))
}

func TestRandomState(t *testing.T) {
	m := newMachine(t, nil, false, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Prefs.RandomState.Set(true))
	m.Random.ZeroSeed = true
	m.Reset()

	var nonzero int
	for a := range machine.RandomMemtop + 1 {
		if m.RAM.Peek(uint16(a)) != 0 {
			nonzero++
		}
	}
	test.ExpectInequality(t, nonzero, 0)

	// program is untouched
	test.ExpectEquality(t, m.RAM.Peek(0x0200), uint8(0x4c))
}

func TestPreferences(t *testing.T) {
	p, err := machine.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Slice.Get().(int), 64)
	test.ExpectEquality(t, p.WaitStates.Get().(int), 1)
	test.ExpectEquality(t, p.Clock.Get().(float64), clocks.AppleII)

	test.ExpectFailure(t, p.Slice.Set(0))
	test.ExpectFailure(t, p.WaitStates.Set(-1))
	test.ExpectFailure(t, p.Clock.Set(0.0))
	test.ExpectEquality(t, p.Slice.Get().(int), 64)

	// command line preferences
	prefs.PushCommandLineStack("slice::16; waitstates::2; other::1")
	p, err = machine.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Slice.Get().(int), 16)
	test.ExpectEquality(t, p.WaitStates.Get().(int), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")

	// invalid command line preference
	prefs.PushCommandLineStack("slice::0")
	_, err = machine.NewPreferences("")
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}

func TestPreferencesDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	p, err := machine.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Clock.Set(2.0))
	test.DemandSuccess(t, p.Save())

	p, err = machine.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Clock.Get().(float64), 2.0)
	test.ExpectEquality(t, p.String(), "clock :: 2.000000\nrandomstate :: false\nslice :: 64\nwaitstates :: 1\n")
}
