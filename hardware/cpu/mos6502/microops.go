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

// microOp is a single step of a micro-op program. Every micro-op less than
// firstInternal is exactly one bus operation. The remaining micro-ops take no
// time and are performed between bus operations.
//
// The comments describe the bus operation and the effect of each micro-op.
type microOp uint8

// List of micro-ops.
const (
	fetchOpcode microOp = iota // opcode = [PC++]
	fetchImmediate             // data = [PC++]
	fetchAddressLow            // address = [PC++]
	fetchAddressHigh           // address |= [PC++] << 8
	fetchAddressHighX          // as fetchAddressHigh then indexed by X
	fetchAddressHighY          // as fetchAddressHigh then indexed by Y
	fetchAddressHighJump       // PC = [PC] << 8 | address
	fetchPointer               // pointer = [PC++]
	readPC                     // [PC]
	readPCIncrement            // [PC++]
	readPointerX               // [pointer]; pointer += X
	readPointerLow             // address = [pointer]
	readPointerHigh            // address |= [pointer+1] << 8
	readPointerHighY           // as readPointerHigh then indexed by Y
	readZeroPageX              // [address]; address = (address + X) & 0xff
	readZeroPageY              // [address]; address = (address + Y) & 0xff
	readAddress                // data = [address]
	readIndexed                // data = [uncorrected address]; skip next if page not crossed
	readIndexedDummy           // [uncorrected address]; address is corrected
	readIndirectHighJump       // PC = [address+1 within page] << 8 | data
	readStack                  // [S]
	readStackIncrement         // [S++]
	readStackDecrement         // [S--]
	pullData                   // data = [S]
	pullDataIncrement          // data = [S++]
	pullPCL                    // PC low = [S++]
	pullPCH                    // PC high = [S]
	readVectorLow              // data = [vector]; interrupt disable is set
	readVectorHigh             // PC = [vector+1] << 8 | data
	branchTaken                // [PC]; PC low += offset; skip next if page not crossed
	branchFix                  // [PC]; PC high is corrected
	writeAddress               // [address] = data
	pushPCH                    // [S--] = PC high
	pushPCL                    // [S--] = PC low
	pushData                   // [S--] = data

	// internal micro-ops
	decode          // schedule the program for the opcode
	operate         // perform the operator of the instruction
	loadRegister    // data = register for store and push instructions
	pushStatus      // data = status register with break flag set
	interruptStatus // data = status register with break flag clear
	restoreStatus   // status register = data
	branchCheck     // skip the next two micro-ops if branch is not taken
	vectorIRQ       // vector = IRQ/BRK vector
	vectorReset     // vector = reset vector
	undefined       // log the undefined opcode
	scheduleNext    // schedule fetch or interrupt program
	moveToNext      // move to next scheduled program
)

// micro-ops equal to or greater than firstInternal do not use the bus.
const firstInternal = decode

// isWrite returns true if the micro-op is a write cycle.
func (op microOp) isWrite() bool {
	return op == writeAddress || op == pushPCH || op == pushPCL || op == pushData
}
