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

package arm

// Executor is implemented by anything that executes decoded ARM instructions.
// There is one function for each instruction format.
type Executor interface {
	DataProcessing(op Operation, ins Instruction)
	Multiply(op Operation, ins Instruction)
	SingleDataTransfer(op Operation, ins Instruction)
	BlockDataTransfer(op Operation, ins Instruction)
	Branch(op Operation, ins Instruction)
	CoprocessorDataTransfer(op Operation, ins Instruction)
	CoprocessorDataOperation(op Operation, ins Instruction)
	CoprocessorRegisterTransfer(op Operation, ins Instruction)
	SoftwareInterrupt(op Operation, ins Instruction)
	Undefined(ins Instruction)
}

// Dispatch decodes the opcode and calls the Executor function for the
// instruction format. The decoded operation is returned.
//
// The condition field is not tested. It is up to the Executor to decide
// whether the instruction should be executed.
func Dispatch(opcode uint32, ex Executor) Operation {
	ins := Instruction(opcode)
	op := Decode(opcode)

	switch op {
	case MUL, MLA:
		ex.Multiply(op, ins)
	case LDR, STR:
		ex.SingleDataTransfer(op, ins)
	case LDM, STM:
		ex.BlockDataTransfer(op, ins)
	case B, BL:
		ex.Branch(op, ins)
	case LDC, STC:
		ex.CoprocessorDataTransfer(op, ins)
	case CDP:
		ex.CoprocessorDataOperation(op, ins)
	case MRC, MCR:
		ex.CoprocessorRegisterTransfer(op, ins)
	case SWI:
		ex.SoftwareInterrupt(op, ins)
	case Undefined:
		ex.Undefined(ins)
	default:
		ex.DataProcessing(op, ins)
	}

	return op
}
