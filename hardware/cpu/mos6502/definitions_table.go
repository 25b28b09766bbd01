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

// definitions is the table of instruction definitions for the NMOS 6502,
// indexed by opcode. Opcodes that are not documented are defined as the
// Undefined operator.
var definitions = [256]Definition{
	{OpCode: 0x00, Operator: BRK, Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x01, Operator: ORA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x02, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x03, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x04, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x05, Operator: ORA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x06, Operator: ASL, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x07, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x08, Operator: PHP, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x09, Operator: ORA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x0a, Operator: ASL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x0b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x0c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x0d, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x0e, Operator: ASL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x0f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x10, Operator: BPL, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x11, Operator: ORA, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x12, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x13, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x14, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x15, Operator: ORA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x16, Operator: ASL, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x17, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x18, Operator: CLC, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x19, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x1a, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x1b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x1c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x1d, Operator: ORA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x1e, Operator: ASL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x1f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x20, Operator: JSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x21, Operator: AND, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x22, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x23, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x24, Operator: BIT, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x25, Operator: AND, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x26, Operator: ROL, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x27, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x28, Operator: PLP, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x29, Operator: AND, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x2a, Operator: ROL, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x2b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x2c, Operator: BIT, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x2d, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x2e, Operator: ROL, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x2f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x30, Operator: BMI, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x31, Operator: AND, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x32, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x33, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x34, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x35, Operator: AND, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x36, Operator: ROL, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x37, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x38, Operator: SEC, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x39, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x3a, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x3b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x3c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x3d, Operator: AND, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x3e, Operator: ROL, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x3f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x40, Operator: RTI, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	{OpCode: 0x41, Operator: EOR, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x42, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x43, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x44, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x45, Operator: EOR, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x46, Operator: LSR, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x47, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x48, Operator: PHA, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x49, Operator: EOR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x4a, Operator: LSR, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x4b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x4c, Operator: JMP, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
	{OpCode: 0x4d, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x4e, Operator: LSR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x4f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x50, Operator: BVC, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x51, Operator: EOR, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x52, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x53, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x54, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x55, Operator: EOR, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x56, Operator: LSR, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x57, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x58, Operator: CLI, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x59, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x5a, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x5b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x5c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x5d, Operator: EOR, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x5e, Operator: LSR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x5f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x60, Operator: RTS, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x61, Operator: ADC, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0x62, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x63, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x64, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x65, Operator: ADC, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0x66, Operator: ROR, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0x67, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x68, Operator: PLA, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x69, Operator: ADC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0x6a, Operator: ROR, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x6b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x6c, Operator: JMP, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
	{OpCode: 0x6d, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0x6e, Operator: ROR, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0x6f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x70, Operator: BVS, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x71, Operator: ADC, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0x72, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x73, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x74, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x75, Operator: ADC, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0x76, Operator: ROR, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x77, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x78, Operator: SEI, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x79, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0x7a, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x7b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x7c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x7d, Operator: ADC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0x7e, Operator: ROR, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0x7f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x80, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x81, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	{OpCode: 0x82, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x83, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x84, Operator: STY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x85, Operator: STA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x86, Operator: STX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x87, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x88, Operator: DEY, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x89, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: TXA, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x8b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8c, Operator: STY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8d, Operator: STA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8e, Operator: STX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x90, Operator: BCC, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0x91, Operator: STA, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	{OpCode: 0x92, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x93, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x94, Operator: STY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x95, Operator: STA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x96, Operator: STX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x97, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x98, Operator: TYA, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x99, Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x9a, Operator: TXS, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x9b, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9c, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9d, Operator: STA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x9e, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x9f, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa0, Operator: LDY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa1, Operator: LDA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xa2, Operator: LDX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa4, Operator: LDY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa5, Operator: LDA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa6, Operator: LDX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa8, Operator: TAY, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xa9, Operator: LDA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xaa, Operator: TAX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xab, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xac, Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xad, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xae, Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xaf, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb0, Operator: BCS, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0xb1, Operator: LDA, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xb2, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb4, Operator: LDY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb5, Operator: LDA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb6, Operator: LDX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	{OpCode: 0xb7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xb8, Operator: CLV, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xb9, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xba, Operator: TSX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xbb, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xbc, Operator: LDY, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbd, Operator: LDA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbe, Operator: LDX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xbf, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc0, Operator: CPY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xc1, Operator: CMP, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xc2, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc4, Operator: CPY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xc5, Operator: CMP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xc6, Operator: DEC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xc7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xc8, Operator: INY, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xc9, Operator: CMP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xca, Operator: DEX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xcb, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xcc, Operator: CPY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xcd, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xce, Operator: DEC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xcf, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd0, Operator: BNE, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0xd1, Operator: CMP, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xd2, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd4, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd5, Operator: CMP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xd6, Operator: DEC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xd7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xd8, Operator: CLD, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xd9, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xda, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xdb, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xdc, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xdd, Operator: CMP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xde, Operator: DEC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xdf, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe0, Operator: CPX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xe1, Operator: SBC, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xe2, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe4, Operator: CPX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xe5, Operator: SBC, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xe6, Operator: INC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	{OpCode: 0xe7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe8, Operator: INX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xe9, Operator: SBC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xea, Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xeb, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xec, Operator: CPX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xed, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xee, Operator: INC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	{OpCode: 0xef, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf0, Operator: BEQ, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	{OpCode: 0xf1, Operator: SBC, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xf2, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf3, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf4, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf5, Operator: SBC, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xf6, Operator: INC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xf7, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xf8, Operator: SED, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xf9, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xfa, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xfb, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xfc, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xfd, Operator: SBC, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xfe, Operator: INC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	{OpCode: 0xff, Operator: Undefined, Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
}
