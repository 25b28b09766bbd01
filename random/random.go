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

package random

import (
	"math/rand"
	"time"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of the emulation's position in time.
type Clock interface {
	Elapsed() clocks.Cycles
}

// Random numbers derived from the position of a Clock.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.clock.Elapsed())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.clock.Elapsed())))
}

// Repeatable returns a number in the range [0, n) that will be the same for
// the same clock position.
func (rnd *Random) Repeatable(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the slice with random bytes. The sequence is repeatable in the sense
// of Repeatable().
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
