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

package easyterm_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/TomHarte/CLK-sub007/easyterm"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = easyterm.NewTerminal(f)
	test.ExpectSuccess(t, errors.Is(err, easyterm.NotATerminal))

	_, err = easyterm.NewTerminal(nil)
	test.ExpectFailure(t, err)
}

func TestIsQuit(t *testing.T) {
	test.ExpectSuccess(t, easyterm.IsQuit('q'))
	test.ExpectSuccess(t, easyterm.IsQuit(easyterm.KeyEsc))
	test.ExpectFailure(t, easyterm.IsQuit(easyterm.KeySpace))
}
