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

import "strings"

// Flags are the condition flags of the ARM status register.
type Flags struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool
}

func (f Flags) String() string {
	s := strings.Builder{}
	if f.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if f.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	return s.String()
}

// Condition is the condition field of an instruction, bits 31 to 28.
type Condition uint8

// List of conditions.
const (
	EQ Condition = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
	NV
)

var conditionNames = [...]string{
	"EQ", "NE", "CS", "CC", "MI", "PL", "VS", "VC",
	"HI", "LS", "GE", "LT", "GT", "LE", "AL", "NV",
}

func (c Condition) String() string {
	return conditionNames[c&0x0f]
}

// Suffix returns the condition as it appears in a mnemonic. The always
// condition has no suffix.
func (c Condition) Suffix() string {
	if c == AL {
		return ""
	}
	return c.String()
}

// Test returns true if the condition passes for the flags.
func (c Condition) Test(f Flags) bool {
	switch c & 0x0f {
	case EQ:
		return f.Zero
	case NE:
		return !f.Zero
	case CS:
		return f.Carry
	case CC:
		return !f.Carry
	case MI:
		return f.Negative
	case PL:
		return !f.Negative
	case VS:
		return f.Overflow
	case VC:
		return !f.Overflow
	case HI:
		return f.Carry && !f.Zero
	case LS:
		return !f.Carry || f.Zero
	case GE:
		return f.Negative == f.Overflow
	case LT:
		return f.Negative != f.Overflow
	case GT:
		return !f.Zero && f.Negative == f.Overflow
	case LE:
		return f.Zero || f.Negative != f.Overflow
	case AL:
		return true
	}

	// NV
	return false
}
