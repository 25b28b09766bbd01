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
	"fmt"
	"math"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/dispatch"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/mos6502"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/hardware/memory/ram"
	"github.com/TomHarte/CLK-sub007/hardware/peripherals/beeper"
	"github.com/TomHarte/CLK-sub007/hardware/peripherals/stall"
	"github.com/TomHarte/CLK-sub007/logger"
	"github.com/TomHarte/CLK-sub007/prefs"
	"github.com/TomHarte/CLK-sub007/random"
)

// Addresses in the memory map.
const (
	SlowOrigin   = 0x8000
	SlowMemtop   = 0xbfff
	BeeperOrigin = 0xc030
	BeeperMemtop = 0xc03f
	StallOrigin  = 0xc040
	StallMemtop  = 0xc04f

	// the area of memory randomised on reset if RandomState is true
	RandomMemtop = 0x01ff
)

// SampleRate is the preferred rate of the beeper output. The actual rate
// depends on the clock (see Machine.SampleRate()).
const SampleRate = 44100

// Machine is the 6502 with RAM, a beeper and a stall controller.
type Machine struct {
	Prefs *Preferences

	CPU *mos6502.CPU
	RAM *ram.RAM

	Beeper *clocks.JustInTime[*beeper.Beeper]
	Stall  *clocks.JustInTime[*stall.Stall]

	// random state for the machine. seeded by the CPU clock
	Random *random.Random

	// the recorder is only present if the machine was created with trace
	// enabled
	Trace *bus.Recorder

	overlay bus.Overlay

	// clock speed in Hz at the time the machine was created
	clock float64
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The sink receives the beeper samples and can be nil. Every bus operation
// is recorded by the Trace field if trace is true.
func NewMachine(p *Preferences, sink beeper.Sink, trace bool) (*Machine, error) {
	m := &Machine{
		Prefs: p,
		RAM:   ram.NewRAM(),
		clock: p.Clock.Get().(float64) * 1000000,
	}

	period := clocks.Cycles(math.Round(m.clock / SampleRate))
	period = min(max(period, 1), dispatch.MaxIndex)

	bpr, err := beeper.NewBeeper(period, sink)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	m.Beeper = clocks.NewJustInTime(bpr)
	m.Stall = clocks.NewJustInTime(stall.NewStall())

	m.RAM.SetWaitStates(SlowOrigin, SlowMemtop, p.WaitStates.Get().(int))
	p.WaitStates.SetHookPost(func(v prefs.Value) error {
		m.RAM.SetWaitStates(SlowOrigin, SlowMemtop, v.(int))
		return nil
	})

	m.overlay.Map(0x0000, 0xffff, "ram", m.RAM)
	m.overlay.Map(BeeperOrigin, BeeperMemtop, "beeper", &synced[*beeper.Beeper]{m.Beeper})
	m.overlay.Map(StallOrigin, StallMemtop, "stall", &synced[*stall.Stall]{m.Stall})

	if trace {
		m.Trace = bus.NewRecorder(m)
		m.CPU = mos6502.NewCPU(m.Trace)
	} else {
		m.CPU = mos6502.NewCPU(m)
	}

	m.Random = random.NewRandom(m)

	logger.Logf(logger.Allow, "machine", "beeper sample rate %dHz", m.SampleRate())

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Map returns a description of the memory map.
func (m *Machine) Map() string {
	return m.overlay.String()
}

// SampleRate returns the rate at which the beeper produces samples.
func (m *Machine) SampleRate() int {
	return int(math.Round(m.clock / float64(m.Beeper.Peek().Period())))
}

// LoadProgram copies the program into RAM at the origin and points the reset
// vector at it. The machine should be reset afterwards.
func (m *Machine) LoadProgram(origin uint16, program []uint8) error {
	if err := m.RAM.Load(origin, program); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	m.RAM.Poke(mos6502.ResetVector, uint8(origin))
	m.RAM.Poke(mos6502.ResetVector+1, uint8(origin>>8))
	logger.Logf(logger.Allow, "machine", "loaded %d bytes at %04x", len(program), origin)
	return nil
}

// Reset the machine. The reset sequence of the CPU takes place the next time
// the machine is run.
func (m *Machine) Reset() {
	m.Stall.Get().Reset()
	if m.Prefs.RandomState.Get().(bool) {
		m.Random.Fill(m.RAM.Memory()[:RandomMemtop+1])
	}
	m.CPU.Reset()
}

// Elapsed implements the random.Clock interface.
func (m *Machine) Elapsed() clocks.Cycles {
	return m.CPU.Elapsed()
}

// PerformBusOperation implements the bus.Handler interface.
func (m *Machine) PerformBusOperation(op bus.Operation, address uint16, data *uint8) clocks.Cycles {
	c := m.overlay.PerformBusOperation(op, address, data)
	m.Beeper.Add(c)
	m.Stall.Add(c)
	return c
}

// Flush implements the bus.Flusher interface.
func (m *Machine) Flush() {
	m.overlay.Flush()
}

// ReadyLineAsserted implements the bus.ReadyLine interface.
func (m *Machine) ReadyLineAsserted() bool {
	return m.overlay.ReadyLineAsserted()
}

// Run the machine for the number of cycles. The continueCheck function is
// called after every slice and can be nil. Running stops early if
// continueCheck returns false or an error.
func (m *Machine) Run(cycles clocks.Cycles, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	slice := clocks.Cycles(m.Prefs.Slice.Get().(int))

	for cycles > 0 {
		n := min(slice, cycles)
		m.CPU.RunFor(n)
		cycles -= n

		ok, err := continueCheck()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	return nil
}
