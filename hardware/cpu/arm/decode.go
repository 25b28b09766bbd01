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

// table of operations indexed by bits 27 to 20 of an opcode
var table = buildTable()

// classify the index value. the formats are tested in order and the first
// match wins
func classify(i uint8) Operation {
	switch {
	case i&0xfc == 0x00:
		// multiply. bit 21 is the accumulate bit
		if i&0x02 == 0x02 {
			return MLA
		}
		return MUL

	case i&0xc0 == 0x00:
		// data processing. bits 24 to 21 are the opcode field
		return Operation((i >> 1) & 0x0f)

	case i&0xc0 == 0x40:
		// single data transfer. bit 20 is the load bit
		if i&0x01 == 0x01 {
			return LDR
		}
		return STR

	case i&0xe0 == 0x80:
		// block data transfer
		if i&0x01 == 0x01 {
			return LDM
		}
		return STM

	case i&0xf0 == 0xa0:
		return B

	case i&0xf0 == 0xb0:
		return BL

	case i&0xe0 == 0xc0:
		// coprocessor data transfer
		if i&0x01 == 0x01 {
			return LDC
		}
		return STC

	case i&0xf0 == 0xe0:
		// coprocessor data operation. register transfers are distinguished
		// by bit 4, which is outside of the index
		return CDP

	case i&0xf0 == 0xf0:
		return SWI
	}

	return Undefined
}

func buildTable() [256]Operation {
	var t [256]Operation
	for i := range t {
		t[i] = classify(uint8(i))
	}
	return t
}

// Lookup returns the result of the first stage of decoding only.
func Lookup(opcode uint32) Operation {
	return table[(opcode>>20)&0xff]
}

// Decode the opcode. The table lookup is refined using bits that are not part
// of the table index.
func Decode(opcode uint32) Operation {
	op := Lookup(opcode)

	switch op {
	case MUL, MLA:
		// a multiply has the pattern 1001 in bits 7 to 4
		if opcode&0xf0 == 0x90 {
			return op
		}

		// any other pattern with bits 7 and 4 set is not a valid instruction
		// on this architecture
		if opcode&0x90 == 0x90 {
			return Undefined
		}

		// otherwise this is AND or EOR with a register operand
		return Operation((opcode >> 21) & 0x0f)

	case LDR, STR:
		// a register offset with bit 4 set is undefined
		if opcode&0x02000000 == 0x02000000 && opcode&0x10 == 0x10 {
			return Undefined
		}

	case CDP:
		if opcode&0x10 == 0x10 {
			if opcode&0x00100000 == 0x00100000 {
				return MRC
			}
			return MCR
		}

	case Undefined, B, BL, LDM, STM, LDC, STC, SWI:

	default:
		// data processing with a register operand shifted by a register
		// must have bit 7 clear
		if opcode&0x02000000 == 0 && opcode&0x90 == 0x90 {
			return Undefined
		}
	}

	return op
}
