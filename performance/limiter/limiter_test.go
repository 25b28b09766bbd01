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

package limiter_test

import (
	"testing"
	"time"

	"github.com/TomHarte/CLK-sub007/performance/limiter"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 100)

	start := time.Now()
	for range 5 {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	lim.SetLimit(1)
	test.ExpectEquality(t, lim.Rate(), 1)
	test.ExpectFailure(t, lim.HasWaited())
}
