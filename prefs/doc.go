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

// Package prefs helps with the management of preference values. The types
// Bool, Int and Float store values and can be set from values of the
// appropriate type or from strings. Callbacks can be registered to validate
// or react to a change in value.
//
// The Disk type collates preferences under string keys so that they can be
// saved to and loaded from a file. The file is plain text, one key and value
// per line.
//
// The command line stack allows values to be overridden for a single session.
// A prefs string of the form "key::value; key::value" is pushed onto the
// stack and values are consumed by Disk.Load() or directly with
// GetCommandLinePref().
package prefs
