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

package performance

import "github.com/TomHarte/CLK-sub007/hardware/clocks"

// CalcMHz takes the number of cycles and duration (in seconds) and returns
// the emulated speed in MHz and the accuracy of that value as a percentage of
// the target clock speed (also in MHz).
func CalcMHz(cycles clocks.Cycles, duration float64, clock float64) (mhz float64, accuracy float64) {
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clock
	return mhz, accuracy
}
