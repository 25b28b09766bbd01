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

// Bits of the status register as it appears on the stack.
const (
	FlagCarry            = 0x01
	FlagZero             = 0x02
	FlagInterruptDisable = 0x04
	FlagDecimalMode      = 0x08
	FlagBreak            = 0x10
	FlagUnused           = 0x20
	FlagOverflow         = 0x40
	FlagSign             = 0x80
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// There is no break flag in the register. The break bit exists only in the
// copy of the register written to the stack, where it distinguishes BRK and
// PHP from IRQ and NMI.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// flag letter is upper case if the flag is set
func flag(set bool, c byte) byte {
	if set {
		return c
	}
	return c + 'a' - 'A'
}

// String returns the status register as a string of flags in bit order. An
// upper case letter indicates that the flag is set. The break and unused
// bits are shown as dashes.
func (sr StatusRegister) String() string {
	return string([]byte{
		flag(sr.Sign, 'S'),
		flag(sr.Overflow, 'V'),
		'-', '-',
		flag(sr.DecimalMode, 'D'),
		flag(sr.InterruptDisable, 'I'),
		flag(sr.Zero, 'Z'),
		flag(sr.Carry, 'C'),
	})
}

// Push returns the value written to the stack by BRK and PHP (brk is true)
// or by IRQ and NMI (brk is false). The unused bit is always set.
func (sr StatusRegister) Push(brk bool) uint8 {
	v := uint8(FlagUnused)
	if brk {
		v |= FlagBreak
	}
	if sr.Sign {
		v |= FlagSign
	}
	if sr.Overflow {
		v |= FlagOverflow
	}
	if sr.DecimalMode {
		v |= FlagDecimalMode
	}
	if sr.InterruptDisable {
		v |= FlagInterruptDisable
	}
	if sr.Zero {
		v |= FlagZero
	}
	if sr.Carry {
		v |= FlagCarry
	}
	return v
}

// Pull sets the register from a value read from the stack by PLP or RTI. The
// break and unused bits are ignored.
func (sr *StatusRegister) Pull(v uint8) {
	sr.Sign = v&FlagSign == FlagSign
	sr.Overflow = v&FlagOverflow == FlagOverflow
	sr.DecimalMode = v&FlagDecimalMode == FlagDecimalMode
	sr.InterruptDisable = v&FlagInterruptDisable == FlagInterruptDisable
	sr.Zero = v&FlagZero == FlagZero
	sr.Carry = v&FlagCarry == FlagCarry
}

func (sr *StatusRegister) setZeroSign(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}
