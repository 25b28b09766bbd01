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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/machine"
	"github.com/TomHarte/CLK-sub007/performance"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(2000000, 2.0, 0.5)
	test.ExpectApproximate(t, mhz, 1.0, 0.001)
	test.ExpectApproximate(t, accuracy, 200.0, 0.001)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	p, err := machine.NewPreferences("")
	test.DemandSuccess(t, err)
	m, err := machine.NewMachine(p, nil, false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadProgram(0x0200, []uint8{0x4c, 0x00, 0x02}))
	m.Reset()

	w := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(w, performance.ProfileNone, m, "50ms", 0))
	test.ExpectSuccess(t, strings.Contains(w.String(), "MHz"))
	test.ExpectSuccess(t, m.CPU.Elapsed() > clocks.Cycles(0))

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, m, "soon", 0))
}
