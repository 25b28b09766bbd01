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

// Operation is the decoded operation of an ARM instruction.
type Operation uint8

// List of operations. The data processing operations are in the order of
// their opcode field so that AND is zero and MVN is fifteen.
const (
	AND Operation = iota
	EOR
	SUB
	RSB
	ADD
	ADC
	SBC
	RSC
	TST
	TEQ
	CMP
	CMN
	ORR
	MOV
	BIC
	MVN

	MUL
	MLA

	LDR
	STR

	LDM
	STM

	B
	BL

	LDC
	STC

	CDP
	MRC
	MCR

	SWI

	Undefined
)

var operationNames = [...]string{
	"AND", "EOR", "SUB", "RSB", "ADD", "ADC", "SBC", "RSC",
	"TST", "TEQ", "CMP", "CMN", "ORR", "MOV", "BIC", "MVN",
	"MUL", "MLA",
	"LDR", "STR",
	"LDM", "STM",
	"B", "BL",
	"LDC", "STC",
	"CDP", "MRC", "MCR",
	"SWI",
	"undefined",
}

func (op Operation) String() string {
	if int(op) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[op]
}

// IsDataProcessing returns true if the operation uses the data processing
// instruction format.
func (op Operation) IsDataProcessing() bool {
	return op <= MVN
}

// IsComparison returns true for data processing operations that only set the
// flags and have no destination register.
func (op Operation) IsComparison() bool {
	return op >= TST && op <= CMN
}
