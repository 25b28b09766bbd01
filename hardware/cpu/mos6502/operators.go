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

// execute the operator of the current instruction. read instructions operate
// on the data latch. read-modify-write instructions modify the data latch.
// shift and rotate instructions with the implied addressing mode operate on
// the accumulator.
func (mc *CPU) execute() {
	switch mc.defn.Operator {
	case NOP:

	case LDA, PLA:
		mc.A = mc.data
		mc.Status.setZeroSign(mc.A)
	case LDX:
		mc.X = mc.data
		mc.Status.setZeroSign(mc.X)
	case LDY:
		mc.Y = mc.data
		mc.Status.setZeroSign(mc.Y)

	case AND:
		mc.A &= mc.data
		mc.Status.setZeroSign(mc.A)
	case ORA:
		mc.A |= mc.data
		mc.Status.setZeroSign(mc.A)
	case EOR:
		mc.A ^= mc.data
		mc.Status.setZeroSign(mc.A)

	case ADC:
		if mc.Status.DecimalMode {
			var zero, overflow, sign bool
			mc.A, mc.Status.Carry, zero, overflow, sign = addDecimal(mc.A, mc.data, mc.Status.Carry)
			mc.Status.Zero = zero
			mc.Status.Overflow = overflow
			mc.Status.Sign = sign
		} else {
			mc.addBinary(mc.data)
		}
	case SBC:
		a := mc.A
		carry := mc.Status.Carry

		// flags are the same in binary and decimal mode
		mc.addBinary(^mc.data)
		if mc.Status.DecimalMode {
			mc.A = subtractDecimal(a, mc.data, carry)
		}

	case CMP:
		mc.compare(mc.A)
	case CPX:
		mc.compare(mc.X)
	case CPY:
		mc.compare(mc.Y)

	case BIT:
		mc.Status.Zero = mc.A&mc.data == 0
		mc.Status.Sign = mc.data&0x80 == 0x80
		mc.Status.Overflow = mc.data&0x40 == 0x40

	case ASL, LSR, ROL, ROR:
		if mc.defn.AddressingMode == Implied {
			mc.A = mc.shift(mc.A)
		} else {
			mc.data = mc.shift(mc.data)
		}

	case INC:
		mc.data++
		mc.Status.setZeroSign(mc.data)
	case DEC:
		mc.data--
		mc.Status.setZeroSign(mc.data)
	case INX:
		mc.X++
		mc.Status.setZeroSign(mc.X)
	case INY:
		mc.Y++
		mc.Status.setZeroSign(mc.Y)
	case DEX:
		mc.X--
		mc.Status.setZeroSign(mc.X)
	case DEY:
		mc.Y--
		mc.Status.setZeroSign(mc.Y)

	case TAX:
		mc.X = mc.A
		mc.Status.setZeroSign(mc.X)
	case TAY:
		mc.Y = mc.A
		mc.Status.setZeroSign(mc.Y)
	case TXA:
		mc.A = mc.X
		mc.Status.setZeroSign(mc.A)
	case TYA:
		mc.A = mc.Y
		mc.Status.setZeroSign(mc.A)
	case TSX:
		mc.X = mc.SP
		mc.Status.setZeroSign(mc.X)
	case TXS:
		mc.SP = mc.X

	case CLC:
		mc.Status.Carry = false
	case SEC:
		mc.Status.Carry = true
	case CLD:
		mc.Status.DecimalMode = false
	case SED:
		mc.Status.DecimalMode = true
	case CLI:
		mc.Status.InterruptDisable = false
	case SEI:
		mc.Status.InterruptDisable = true
	case CLV:
		mc.Status.Overflow = false
	}
}

func (mc *CPU) addBinary(v uint8) {
	sum := uint16(mc.A) + uint16(v)
	if mc.Status.Carry {
		sum++
	}
	r := uint8(sum)
	mc.Status.Overflow = (mc.A^r)&(v^r)&0x80 == 0x80
	mc.Status.Carry = sum > 0xff
	mc.A = r
	mc.Status.setZeroSign(mc.A)
}

func (mc *CPU) compare(reg uint8) {
	mc.Status.Carry = reg >= mc.data
	mc.Status.setZeroSign(reg - mc.data)
}

func (mc *CPU) shift(v uint8) uint8 {
	switch mc.defn.Operator {
	case ASL:
		mc.Status.Carry = v&0x80 == 0x80
		v <<= 1
	case LSR:
		mc.Status.Carry = v&0x01 == 0x01
		v >>= 1
	case ROL:
		c := mc.Status.Carry
		mc.Status.Carry = v&0x80 == 0x80
		v <<= 1
		if c {
			v |= 0x01
		}
	case ROR:
		c := mc.Status.Carry
		mc.Status.Carry = v&0x01 == 0x01
		v >>= 1
		if c {
			v |= 0x80
		}
	}
	mc.Status.setZeroSign(v)
	return v
}

func (mc *CPU) branchCondition() bool {
	switch mc.defn.Operator {
	case BCC:
		return !mc.Status.Carry
	case BCS:
		return mc.Status.Carry
	case BEQ:
		return mc.Status.Zero
	case BNE:
		return !mc.Status.Zero
	case BMI:
		return mc.Status.Sign
	case BPL:
		return !mc.Status.Sign
	case BVC:
		return !mc.Status.Overflow
	case BVS:
		return mc.Status.Overflow
	}
	return false
}
