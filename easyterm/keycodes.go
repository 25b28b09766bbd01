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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyCtrlD          = 4
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// IsQuit returns true if the key is one that should end an interactive
// session.
func IsQuit(key byte) bool {
	switch key {
	case KeyCtrlC, KeyCtrlD, KeyEsc, 'q', 'Q':
		return true
	}
	return false
}
