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

package mos6502

import (
	"fmt"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/microops"
	"github.com/TomHarte/CLK-sub007/hardware/memory/bus"
	"github.com/TomHarte/CLK-sub007/logger"
)

// Interrupt vectors.
const (
	NMIVector   = 0xfffa
	ResetVector = 0xfffc
	IRQVector   = 0xfffe
)

// CPU implements the NMOS 6502 as a resumable cycle-stepper.
type CPU struct {
	Registers

	handler   bus.Handler
	readyLine bus.ReadyLine

	// the micro-op programs in flight. the program at the read slot and the
	// step counter of the scheduler together are the point at which execution
	// will resume
	sched microops.Scheduler[microOp]

	// cycles remaining in the current run request. never negative
	budget clocks.Cycles

	// cycles taken by a bus operation beyond the budget that remained when it
	// was performed. paid from the next run request before anything else
	debt clocks.Cycles

	// total number of cycles consumed since construction
	elapsed clocks.Cycles

	// the cost of the most recent bus operation
	cost clocks.Cycles

	// the most recent address driven onto the bus. used for Ready operations
	lastAddress uint16

	// whether the most recent cycle was a Ready operation
	spinning bool

	// the instruction being executed
	opcode uint8
	defn   *Definition

	// internal latches
	data      uint8
	address   uint16
	corrected uint16
	pointer   uint8
	vector    uint16

	// external control lines
	rdy        bool
	irq        bool
	nmi        bool
	nmiPending bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// handler will receive every bus operation. If the handler implements the
// bus.ReadyLine interface then it will be sampled before every read cycle.
//
// The CPU begins with the reset sequence.
func NewCPU(handler bus.Handler) *CPU {
	mc := &CPU{
		handler: handler,
		defn:    &definitions[0xea],
	}
	if r, ok := handler.(bus.ReadyLine); ok {
		mc.readyLine = r
	}
	mc.sched.ScheduleProgram(resetProgram)
	return mc
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Reset abandons the current instruction and begins the reset sequence. The
// reset sequence takes seven cycles and reads the reset vector.
func (mc *CPU) Reset() {
	mc.sched.Reset()
	mc.sched.ScheduleProgram(resetProgram)
	mc.spinning = false
	mc.nmiPending = false
	logger.Log(logger.Allow, "mos6502", "reset")
}

// SetReadyLine sets the state of the ready line. While the line is asserted
// the CPU will not perform read cycles. Write cycles are unaffected.
func (mc *CPU) SetReadyLine(asserted bool) {
	mc.rdy = asserted
}

// SetIRQLine sets the state of the interrupt request line. The line is level
// triggered.
func (mc *CPU) SetIRQLine(asserted bool) {
	mc.irq = asserted
}

// SetNMILine sets the state of the non-maskable interrupt line. The line is
// edge triggered. The interrupt occurs after the line changes from not
// asserted to asserted.
func (mc *CPU) SetNMILine(asserted bool) {
	if asserted && !mc.nmi {
		mc.nmiPending = true
	}
	mc.nmi = asserted
}

// Elapsed returns the number of cycles consumed since the CPU was created.
func (mc *CPU) Elapsed() clocks.Cycles {
	return mc.elapsed
}

// Opcode returns the opcode of the instruction being executed.
func (mc *CPU) Opcode() uint8 {
	return mc.opcode
}

// LastDefinition returns the definition of the instruction being executed.
func (mc *CPU) LastDefinition() Definition {
	return *mc.defn
}

// AtInstructionBoundary returns true if the next cycle will be the opcode
// fetch of an instruction.
func (mc *CPU) AtInstructionBoundary() bool {
	return mc.sched.Current() == fetchOpcode && !mc.spinning
}

// RunFor adds the number of cycles to the budget and performs bus operations
// until the budget is exhausted. A request for zero or a negative number of
// cycles does nothing.
//
// Execution stops only on a cycle boundary. It continues from the same point
// on the next call to RunFor().
//
// If the handler implements the bus.Flusher interface then Flush() is called
// before RunFor() returns.
func (mc *CPU) RunFor(cycles clocks.Cycles) {
	if cycles <= 0 {
		return
	}

	paid := min(cycles, mc.debt)
	mc.debt -= paid
	mc.budget += cycles - paid

	for mc.budget > 0 {
		c := mc.step()
		mc.elapsed += c
		if c > mc.budget {
			mc.debt = c - mc.budget
			mc.budget = 0
		} else {
			mc.budget -= c
		}
	}

	if f, ok := mc.handler.(bus.Flusher); ok {
		f.Flush()
	}
}

func (mc *CPU) ready() bool {
	return mc.rdy || (mc.readyLine != nil && mc.readyLine.ReadyLineAsserted())
}

// settle performs internal micro-ops until the current micro-op is a bus
// micro-op. every program ends with internal micro-ops that schedule and move
// to the next program so settle always stops at a bus micro-op
func (mc *CPU) settle() {
	for op := mc.sched.Current(); op >= firstInternal; op = mc.sched.Current() {
		mc.internal(op)
	}
}

// step performs the bus operation at the current position and returns the
// number of cycles it took. the internal micro-ops that follow the bus
// operation are performed before returning
func (mc *CPU) step() clocks.Cycles {
	mc.settle()

	op := mc.sched.Current()
	if !op.isWrite() && mc.ready() {
		mc.spinning = true
		var d uint8
		return max(mc.handler.PerformBusOperation(bus.Ready, mc.lastAddress, &d), 1)
	}
	mc.spinning = false

	mc.cycle(op)
	mc.sched.Advance()
	mc.settle()

	return mc.cost
}

func (mc *CPU) perform(op bus.Operation, address uint16, data uint8) uint8 {
	mc.lastAddress = address
	mc.cost = max(mc.handler.PerformBusOperation(op, address, &data), 1)
	return data
}

func (mc *CPU) read(address uint16) uint8 {
	return mc.perform(bus.Read, address, 0)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.perform(bus.Write, address, data)
}

func (mc *CPU) stack() uint16 {
	return 0x0100 | uint16(mc.SP)
}

// index the address by v. the unmodified high byte is kept until the address
// is corrected
func (mc *CPU) index(v uint8) {
	mc.corrected = mc.address + uint16(v)
	mc.address = (mc.address & 0xff00) | (mc.corrected & 0x00ff)
}

// cycle performs the bus micro-op
func (mc *CPU) cycle(op microOp) {
	switch op {
	case fetchOpcode:
		mc.opcode = mc.perform(bus.ReadOpcode, mc.PC, 0)
		mc.defn = &definitions[mc.opcode]
		mc.PC++
	case fetchImmediate:
		mc.data = mc.read(mc.PC)
		mc.PC++
	case fetchAddressLow:
		mc.address = uint16(mc.read(mc.PC))
		mc.PC++
	case fetchAddressHigh:
		mc.address |= uint16(mc.read(mc.PC)) << 8
		mc.PC++
	case fetchAddressHighX:
		mc.address |= uint16(mc.read(mc.PC)) << 8
		mc.PC++
		mc.index(mc.X)
	case fetchAddressHighY:
		mc.address |= uint16(mc.read(mc.PC)) << 8
		mc.PC++
		mc.index(mc.Y)
	case fetchAddressHighJump:
		mc.PC = uint16(mc.read(mc.PC))<<8 | (mc.address & 0x00ff)
	case fetchPointer:
		mc.pointer = mc.read(mc.PC)
		mc.PC++
	case readPC:
		mc.read(mc.PC)
	case readPCIncrement:
		mc.read(mc.PC)
		mc.PC++
	case readPointerX:
		mc.read(uint16(mc.pointer))
		mc.pointer += mc.X
	case readPointerLow:
		mc.address = uint16(mc.read(uint16(mc.pointer)))
	case readPointerHigh:
		mc.address |= uint16(mc.read(uint16(mc.pointer+1))) << 8
	case readPointerHighY:
		mc.address |= uint16(mc.read(uint16(mc.pointer+1))) << 8
		mc.index(mc.Y)
	case readZeroPageX:
		mc.read(mc.address)
		mc.address = uint16(uint8(mc.address) + mc.X)
	case readZeroPageY:
		mc.read(mc.address)
		mc.address = uint16(uint8(mc.address) + mc.Y)
	case readAddress:
		mc.data = mc.read(mc.address)
	case readIndexed:
		mc.data = mc.read(mc.address)
		if mc.address == mc.corrected {
			mc.sched.Advance()
		} else {
			mc.address = mc.corrected
		}
	case readIndexedDummy:
		mc.read(mc.address)
		mc.address = mc.corrected
	case readIndirectHighJump:
		hi := mc.read((mc.address & 0xff00) | ((mc.address + 1) & 0x00ff))
		mc.PC = uint16(hi)<<8 | uint16(mc.data)
	case readStack:
		mc.read(mc.stack())
	case readStackIncrement:
		mc.read(mc.stack())
		mc.SP++
	case readStackDecrement:
		mc.read(mc.stack())
		mc.SP--
	case pullData:
		mc.data = mc.read(mc.stack())
	case pullDataIncrement:
		mc.data = mc.read(mc.stack())
		mc.SP++
	case pullPCL:
		mc.PC = (mc.PC & 0xff00) | uint16(mc.read(mc.stack()))
		mc.SP++
	case pullPCH:
		mc.PC = (mc.PC & 0x00ff) | uint16(mc.read(mc.stack()))<<8
	case readVectorLow:
		mc.data = mc.read(mc.vector)
		mc.Status.InterruptDisable = true
	case readVectorHigh:
		mc.PC = uint16(mc.read(mc.vector+1))<<8 | uint16(mc.data)
	case branchTaken:
		mc.read(mc.PC)
		mc.address = mc.PC + uint16(int8(mc.data))
		mc.PC = (mc.PC & 0xff00) | (mc.address & 0x00ff)
		if mc.PC == mc.address {
			mc.sched.Advance()
		}
	case branchFix:
		mc.read(mc.PC)
		mc.PC = mc.address
	case writeAddress:
		mc.write(mc.address, mc.data)
	case pushPCH:
		mc.write(mc.stack(), uint8(mc.PC>>8))
		mc.SP--
	case pushPCL:
		mc.write(mc.stack(), uint8(mc.PC))
		mc.SP--
	case pushData:
		mc.write(mc.stack(), mc.data)
		mc.SP--
	default:
		panic(fmt.Sprintf("mos6502: unknown bus micro-op (%d)", op))
	}
}

// internal performs the internal micro-op and moves on to the next micro-op
func (mc *CPU) internal(op microOp) {
	switch op {
	case decode:
		mc.sched.ScheduleProgram(programs[mc.opcode])
	case operate:
		mc.execute()
	case loadRegister:
		switch mc.defn.Operator {
		case STX:
			mc.data = mc.X
		case STY:
			mc.data = mc.Y
		default:
			mc.data = mc.A
		}
	case pushStatus:
		mc.data = mc.Status.Push(true)
	case interruptStatus:
		mc.data = mc.Status.Push(false)
	case restoreStatus:
		mc.Status.Pull(mc.data)
	case branchCheck:
		if !mc.branchCondition() {
			mc.sched.Advance()
			mc.sched.Advance()
		}
	case vectorIRQ:
		mc.vector = IRQVector
	case vectorReset:
		mc.vector = ResetVector
	case undefined:
		logger.Logf(logger.Allow, "mos6502", "undefined opcode %02x at %04x", mc.opcode, mc.PC-1)
	case scheduleNext:
		if mc.nmiPending {
			mc.nmiPending = false
			mc.vector = NMIVector
			mc.sched.ScheduleProgram(interruptProgram)
		} else if mc.irq && !mc.Status.InterruptDisable {
			mc.vector = IRQVector
			mc.sched.ScheduleProgram(interruptProgram)
		} else {
			mc.sched.ScheduleProgram(fetchProgram)
		}
	case moveToNext:
		mc.sched.MoveToNextProgram()
		return
	default:
		panic(fmt.Sprintf("mos6502: unknown internal micro-op (%d)", op))
	}
	mc.sched.Advance()
}
