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

import (
	"fmt"
	"strings"
)

var shiftNames = [...]string{"LSL", "LSR", "ASR", "ROR"}

func register(r int) string {
	switch r {
	case 13:
		return "SP"
	case 14:
		return "LR"
	case 15:
		return "PC"
	}
	return fmt.Sprintf("R%d", r)
}

// the second operand of a data processing instruction or the register offset
// of a single data transfer
func (ins Instruction) shiftedRegister() string {
	rm := register(ins.Rm())
	if ins.ShiftByRegister() {
		return fmt.Sprintf("%s, %s %s", rm, shiftNames[ins.ShiftType()], register(ins.Rs()))
	}
	if ins.ShiftAmount() == 0 && ins.ShiftType() == 0 {
		return rm
	}
	return fmt.Sprintf("%s, %s #%d", rm, shiftNames[ins.ShiftType()], ins.ShiftAmount())
}

func (ins Instruction) registerList() string {
	s := make([]string, 0, 16)
	l := ins.RegisterList()
	for r := range 16 {
		if l&(1<<r) != 0 {
			s = append(s, register(r))
		}
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}

// String returns the disassembly of the instruction.
func (ins Instruction) String() string {
	op := ins.Operation()
	mnemonic := fmt.Sprintf("%s%s", op, ins.Condition().Suffix())

	switch {
	case op == Undefined:
		return fmt.Sprintf("undefined %08x", uint32(ins))

	case op.IsDataProcessing():
		var operand string
		if ins.Immediate() {
			operand = fmt.Sprintf("#%#x", ins.ImmediateOperand())
		} else {
			operand = ins.shiftedRegister()
		}
		if op.IsComparison() {
			return fmt.Sprintf("%s %s, %s", mnemonic, register(ins.Rn()), operand)
		}
		if ins.SetFlags() {
			mnemonic = fmt.Sprintf("%sS", mnemonic)
		}
		if op == MOV || op == MVN {
			return fmt.Sprintf("%s %s, %s", mnemonic, register(ins.Rd()), operand)
		}
		return fmt.Sprintf("%s %s, %s, %s", mnemonic, register(ins.Rd()), register(ins.Rn()), operand)

	case op == MUL || op == MLA:
		if ins.SetFlags() {
			mnemonic = fmt.Sprintf("%sS", mnemonic)
		}
		s := fmt.Sprintf("%s %s, %s, %s", mnemonic, register(ins.Rn()), register(ins.Rm()), register(ins.Rs()))
		if op == MLA {
			s = fmt.Sprintf("%s, %s", s, register(ins.Rd()))
		}
		return s

	case op == LDR || op == STR:
		if ins.Byte() {
			mnemonic = fmt.Sprintf("%sB", mnemonic)
		}
		sign := "-"
		if ins.Up() {
			sign = ""
		}
		var offset string
		if ins.Immediate() {
			offset = fmt.Sprintf("%s%s", sign, ins.shiftedRegister())
		} else if ins.Offset() != 0 {
			offset = fmt.Sprintf("#%s%#x", sign, ins.Offset())
		}
		base := register(ins.Rn())
		switch {
		case offset == "":
			return fmt.Sprintf("%s %s, [%s]", mnemonic, register(ins.Rd()), base)
		case ins.PreIndex():
			wb := ""
			if ins.WriteBack() {
				wb = "!"
			}
			return fmt.Sprintf("%s %s, [%s, %s]%s", mnemonic, register(ins.Rd()), base, offset, wb)
		}
		return fmt.Sprintf("%s %s, [%s], %s", mnemonic, register(ins.Rd()), base, offset)

	case op == LDM || op == STM:
		mode := map[[2]bool]string{
			{false, false}: "DA", {false, true}: "DB", {true, false}: "IA", {true, true}: "IB",
		}[[2]bool{ins.Up(), ins.PreIndex()}]
		wb := ""
		if ins.WriteBack() {
			wb = "!"
		}
		return fmt.Sprintf("%s%s %s%s, %s", mnemonic, mode, register(ins.Rn()), wb, ins.registerList())

	case op == B || op == BL:
		// the offset is relative to the address of the instruction plus eight
		// because of the pipeline
		return fmt.Sprintf("%s %+d", mnemonic, ins.BranchOffset()+8)

	case op == LDC || op == STC:
		return fmt.Sprintf("%s p%d, c%d, [%s]", mnemonic, ins.Coprocessor(), ins.Rd(), register(ins.Rn()))

	case op == CDP:
		return fmt.Sprintf("%s p%d, %d, c%d, c%d, c%d", mnemonic, ins.Coprocessor(), ins.CoprocessorOpcode(), ins.Rd(), ins.Rn(), ins.Rm())

	case op == MRC || op == MCR:
		return fmt.Sprintf("%s p%d, %d, %s, c%d, c%d", mnemonic, ins.Coprocessor(), ins.CoprocessorOpcode(), register(ins.Rd()), ins.Rn(), ins.Rm())

	case op == SWI:
		return fmt.Sprintf("%s %#x", mnemonic, ins.Comment())
	}

	return mnemonic
}
