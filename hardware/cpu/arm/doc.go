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

// Package arm decodes instructions of the ARMv2 instruction set.
//
// Decoding is in two stages. The first stage is a lookup into a table of 256
// entries indexed by bits 27 to 20 of the opcode. The table is built once by
// classifying each of the 256 index values, in order, against the
// instruction formats of the architecture. The first format that matches is
// used and any index that matches no format is Undefined.
//
// The second stage refines the result of the lookup using bits of the opcode
// that are not part of the index. For example, the lookup cannot distinguish
// a multiply from an AND instruction with a shifted register operand and so
// bits 7 to 4 are consulted. The order is important: the lookup always
// happens first and the refinement second.
//
// Decode() returns the Operation of an opcode. Dispatch() decodes the opcode
// and calls the corresponding method of an Executor.
package arm
