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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DECODE")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected sub-mode, or the first sub-mode
// given to AddSubModes() if none was specified on the command line. Sub-mode
// comparisons are case insensitive.
//
// Each mode can then have its own flags by calling NewMode() and Parse()
// again. Parsing continues from where the previous call to Parse() finished:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddCycles("cycles", 1000000, "number of cycles to run")
//		origin := md.AddAddress("origin", 0x0200, "load address of program")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments are retrieved with the RemainingArgs() or GetArg()
// functions.
//
// In addition to the flag types of the flag package, the Address and Cycles
// types accept addresses in hexadecimal notation and cycle counts with a
// multiplier suffix respectively.
package modalflag
