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

import "math/bits"

// Instruction is a 32 bit ARM opcode with accessors for its fields. Not every
// field is meaningful for every operation.
type Instruction uint32

func (ins Instruction) bit(n uint) bool {
	return uint32(ins)&(1<<n) != 0
}

func (ins Instruction) field(lo uint, width uint) uint32 {
	return (uint32(ins) >> lo) & ((1 << width) - 1)
}

// Operation returns the decoded operation.
func (ins Instruction) Operation() Operation {
	return Decode(uint32(ins))
}

// Condition field, bits 31 to 28.
func (ins Instruction) Condition() Condition {
	return Condition(ins.field(28, 4))
}

// Immediate is bit 25. For data processing the second operand is an
// immediate value. For single data transfers the offset is a register.
func (ins Instruction) Immediate() bool {
	return ins.bit(25)
}

// PreIndex is bit 24.
func (ins Instruction) PreIndex() bool {
	return ins.bit(24)
}

// Up is bit 23. The offset is added to the base.
func (ins Instruction) Up() bool {
	return ins.bit(23)
}

// Byte is bit 22. For block data transfers this is the PSR/force user bit.
func (ins Instruction) Byte() bool {
	return ins.bit(22)
}

// WriteBack is bit 21. For multiply instructions this is the accumulate bit.
func (ins Instruction) WriteBack() bool {
	return ins.bit(21)
}

// SetFlags is bit 20. For transfer instructions this is the load bit.
func (ins Instruction) SetFlags() bool {
	return ins.bit(20)
}

// Rn is bits 19 to 16. For multiply instructions this is the destination.
func (ins Instruction) Rn() int {
	return int(ins.field(16, 4))
}

// Rd is bits 15 to 12. For multiply instructions this is the accumulate
// register.
func (ins Instruction) Rd() int {
	return int(ins.field(12, 4))
}

// Rs is bits 11 to 8.
func (ins Instruction) Rs() int {
	return int(ins.field(8, 4))
}

// Rm is bits 3 to 0.
func (ins Instruction) Rm() int {
	return int(ins.field(0, 4))
}

// ShiftType of a register operand. 0 to 3 is LSL, LSR, ASR and ROR in turn.
func (ins Instruction) ShiftType() int {
	return int(ins.field(5, 2))
}

// ShiftByRegister returns true if the register operand is shifted by the
// amount in Rs.
func (ins Instruction) ShiftByRegister() bool {
	return ins.bit(4)
}

// ShiftAmount of a register operand shifted by an immediate amount.
func (ins Instruction) ShiftAmount() int {
	return int(ins.field(7, 5))
}

// ImmediateOperand is the rotated 8 bit immediate value of a data processing
// instruction.
func (ins Instruction) ImmediateOperand() uint32 {
	return bits.RotateLeft32(ins.field(0, 8), -int(ins.field(8, 4)*2))
}

// Offset is the 12 bit immediate offset of a single data transfer.
func (ins Instruction) Offset() uint32 {
	return ins.field(0, 12)
}

// BranchOffset is the sign extended offset of a branch in bytes.
func (ins Instruction) BranchOffset() int32 {
	return int32(uint32(ins)<<8) >> 6
}

// RegisterList of a block data transfer. Bit n is set if register n is in
// the list.
func (ins Instruction) RegisterList() uint16 {
	return uint16(ins.field(0, 16))
}

// Comment field of a software interrupt.
func (ins Instruction) Comment() uint32 {
	return ins.field(0, 24)
}

// Coprocessor number, bits 11 to 8.
func (ins Instruction) Coprocessor() int {
	return int(ins.field(8, 4))
}

// CoprocessorOpcode of a coprocessor data operation (bits 23 to 20) or
// register transfer (bits 23 to 21).
func (ins Instruction) CoprocessorOpcode() int {
	if ins.bit(4) {
		return int(ins.field(21, 3))
	}
	return int(ins.field(20, 4))
}

// CoprocessorInfo is bits 7 to 5 of a coprocessor data operation or register
// transfer.
func (ins Instruction) CoprocessorInfo() int {
	return int(ins.field(5, 3))
}
