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

// the micro-op program for every opcode. the programs are built once and are
// shared by every CPU instance
var programs [256][]microOp

// programs that are not the result of decoding an opcode
var (
	fetchProgram     = []microOp{fetchOpcode, decode, moveToNext}
	interruptProgram = []microOp{readPC, readPC, pushPCH, pushPCL, interruptStatus, pushData, readVectorLow, readVectorHigh, scheduleNext, moveToNext}
	resetProgram     = []microOp{readPC, readPC, readStackDecrement, readStackDecrement, readStackDecrement, vectorReset, readVectorLow, readVectorHigh, scheduleNext, moveToNext}
)

func init() {
	for i := range definitions {
		programs[i] = buildProgram(definitions[i])
	}
}

// buildProgram returns the micro-op program for the instruction. The opcode
// fetch is not part of the program.
func buildProgram(defn Definition) []microOp {
	var p []microOp

	switch defn.Operator {
	case Undefined:
		p = []microOp{readPC, undefined}
	case BRK:
		p = []microOp{readPCIncrement, pushPCH, pushPCL, pushStatus, vectorIRQ, pushData, readVectorLow, readVectorHigh}
	case RTI:
		p = []microOp{readPC, readStackIncrement, pullDataIncrement, restoreStatus, pullPCL, pullPCH}
	case RTS:
		p = []microOp{readPC, readStackIncrement, pullPCL, pullPCH, readPCIncrement}
	case JSR:
		p = []microOp{fetchAddressLow, readStack, pushPCH, pushPCL, fetchAddressHighJump}
	case JMP:
		if defn.AddressingMode == Indirect {
			p = []microOp{fetchAddressLow, fetchAddressHigh, readAddress, readIndirectHighJump}
		} else {
			p = []microOp{fetchAddressLow, fetchAddressHighJump}
		}
	case PHA:
		p = []microOp{readPC, loadRegister, pushData}
	case PHP:
		p = []microOp{readPC, pushStatus, pushData}
	case PLA:
		p = []microOp{readPC, readStackIncrement, pullData, operate}
	case PLP:
		p = []microOp{readPC, readStackIncrement, pullData, restoreStatus}
	default:
		if defn.IsBranch() {
			p = []microOp{fetchImmediate, branchCheck, branchTaken, branchFix}
		} else {
			p = buildAddressing(defn)
		}
	}

	return append(p, scheduleNext, moveToNext)
}

func buildAddressing(defn Definition) []microOp {
	// indexed addressing modes read from the uncorrected address. read
	// instructions can use that value if the page has not been crossed
	indexed := readIndexedDummy
	if defn.Effect == Read {
		indexed = readIndexed
	}

	var p []microOp

	switch defn.AddressingMode {
	case Implied:
		return []microOp{readPC, operate}
	case Immediate:
		return []microOp{fetchImmediate, operate}
	case ZeroPage:
		p = []microOp{fetchAddressLow}
	case ZeroPageIndexedX:
		p = []microOp{fetchAddressLow, readZeroPageX}
	case ZeroPageIndexedY:
		p = []microOp{fetchAddressLow, readZeroPageY}
	case Absolute:
		p = []microOp{fetchAddressLow, fetchAddressHigh}
	case AbsoluteIndexedX:
		p = []microOp{fetchAddressLow, fetchAddressHighX, indexed}
	case AbsoluteIndexedY:
		p = []microOp{fetchAddressLow, fetchAddressHighY, indexed}
	case IndexedIndirect:
		p = []microOp{fetchPointer, readPointerX, readPointerLow, readPointerHigh}
	case IndirectIndexed:
		p = []microOp{fetchPointer, readPointerLow, readPointerHighY, indexed}
	}

	switch defn.Effect {
	case Write:
		p = append(p, loadRegister, writeAddress)
	case RMW:
		// the unmodified value is written back before the modified value
		p = append(p, readAddress, writeAddress, operate, writeAddress)
	default:
		p = append(p, readAddress, operate)
	}

	return p
}
