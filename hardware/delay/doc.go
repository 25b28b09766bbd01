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

// Package delay contains two ways of modelling a value that changes some
// number of cycles after it is set.
//
// The Event type represents a single future change which will take place after
// the stated number of cycles. Events can be dropped, restarted or forced to
// end early. Only one value, of type uint8, is stored so an Event is
// small and copyable.
//
// The Pipeline type is a fixed depth shift register. It is used where an
// output reflects the input of a fixed number of cycles ago and where more
// than one value can be in flight at once. A new value is inserted at the
// newest end of the pipeline and is seen at the oldest end after the
// pipeline has been advanced depth-1 times.
//
//	Insert(v) --> [ newest | ... | oldest ] --> Value()
//
// The values in a Pipeline are packed into 64 bit words. A Pipeline of depth
// eight with uint8 values needs just one word of storage.
package delay
