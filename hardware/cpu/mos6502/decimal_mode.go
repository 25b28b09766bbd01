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

// addDecimal is the ADC instruction when the decimal mode flag is set.
//
// The zero flag is computed from the binary result. The sign and overflow
// flags are computed after the low nibble has been adjusted but before the
// high nibble is adjusted.
func addDecimal(a uint8, v uint8, carry bool) (r uint8, rcarry, zero, overflow, sign bool) {
	c := 0
	if carry {
		c = 1
	}

	zero = uint8(int(a)+int(v)+c) == 0

	lo := int(a&0x0f) + int(v&0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := int(a&0xf0) + int(v&0xf0) + lo
	sign = sum&0x80 == 0x80
	overflow = (^(a^v))&(a^uint8(sum))&0x80 == 0x80

	if sum >= 0xa0 {
		sum += 0x60
	}

	return uint8(sum), sum >= 0x100, zero, overflow, sign
}

// subtractDecimal is the SBC instruction when the decimal mode flag is set.
// The flags are exactly as they are for binary subtraction and so only the
// result is returned.
func subtractDecimal(a uint8, v uint8, carry bool) uint8 {
	c := 0
	if carry {
		c = 1
	}

	lo := int(a&0x0f) - int(v&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	r := int(a&0xf0) - int(v&0xf0) + lo
	if r < 0 {
		r -= 0x60
	}

	return uint8(r)
}
