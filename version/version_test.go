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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/TomHarte/CLK-sub007/test"
)

func TestDescribe(t *testing.T) {
	vcs, rev := describe(nil)
	test.ExpectFailure(t, vcs)
	test.ExpectEquality(t, rev, "no revision information")

	vcs, rev = describe([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abcdef"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectSuccess(t, vcs)
	test.ExpectEquality(t, rev, "abcdef+dirty")

	_, rev = describe([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "abcdef"},
		{Key: "vcs.modified", Value: "false"},
	})
	test.ExpectEquality(t, rev, "abcdef")
}

func TestBanner(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(Banner(), ApplicationName))
}
