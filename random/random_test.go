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

package random_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/random"
	"github.com/TomHarte/CLK-sub007/test"
)

type clock struct {
	elapsed clocks.Cycles
}

func (c *clock) Elapsed() clocks.Cycles {
	return c.elapsed
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{elapsed: 1000})
	b := random.NewRandom(&clock{elapsed: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Repeatable(i), b.Repeatable(i))
	}

	fa := make([]uint8, 64)
	fb := make([]uint8, 64)
	a.Fill(fa)
	b.Fill(fb)
	for i := range fa {
		test.ExpectEquality(t, fa[i], fb[i])
	}
}
