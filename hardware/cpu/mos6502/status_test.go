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

package mos6502_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/cpu/mos6502"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestStatusPush(t *testing.T) {
	var sr mos6502.StatusRegister
	test.ExpectEquality(t, sr.String(), "sv--dizc")

	// the unused bit is always set. the break bit depends on the source
	test.ExpectEquality(t, sr.Push(false), uint8(mos6502.FlagUnused))
	test.ExpectEquality(t, sr.Push(true), uint8(mos6502.FlagUnused|mos6502.FlagBreak))

	sr.Sign = true
	sr.Carry = true
	sr.InterruptDisable = true
	test.ExpectEquality(t, sr.String(), "Sv--dIzC")
	test.ExpectEquality(t, sr.Push(false), uint8(0xa5))
	test.ExpectEquality(t, sr.Push(true), uint8(0xb5))
}

func TestStatusPull(t *testing.T) {
	var sr mos6502.StatusRegister

	// break and unused bits are not part of the register
	sr.Pull(mos6502.FlagBreak | mos6502.FlagUnused)
	test.ExpectEquality(t, sr, mos6502.StatusRegister{})
	test.ExpectEquality(t, sr.Push(false), uint8(0x20))

	sr.Pull(0xff)
	test.ExpectEquality(t, sr.String(), "SV--DIZC")
	test.ExpectEquality(t, sr.Push(false), uint8(0xef))
	test.ExpectEquality(t, sr.Push(true), uint8(0xff))

	sr.Pull(0x00)
	test.ExpectEquality(t, sr.String(), "sv--dizc")
}
