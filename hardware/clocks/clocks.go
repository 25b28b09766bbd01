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

// Package clocks defines the unit in which all scheduling is expressed and
// the constant values that define the speed of the main clock in the
// machines of interest.
//
// The Cycles type is an integral count of bus cycles. The HalfCycles type
// exists for components that are clocked on both edges of the main clock.
// Neither type knows anything about wall-clock time. Conversion to and from
// real time is the job of the host, using the MHz constants below.
//
// Components that are driven by the host implement the Receiver interface.
// The JustInTime type wraps a Receiver so that time can be accumulated for
// it cheaply and only delivered when the component is next accessed.
//
// Where one clock domain is derived from another at a non-integral ratio the
// Convertor type can be used to keep the accounting exact over time.
//
// Clock values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

// CPU clock speeds in MHz.
const (
	NTSC  = 1.193182
	PAL   = 1.182298
	PAL_M = 1.191870
	SECAM = 1.187500

	C64_NTSC = 1.022727
	C64_PAL  = 0.985248
	Oric     = 1.0
	BBCMicro = 2.0
	AppleII  = 1.020484
)

// Colour clock speeds for the 2600 TIA, which runs at three times the speed
// of the CPU.
const (
	NTSC_TIA  = NTSC * 3
	PAL_TIA   = PAL * 3
	PAL_M_TIA = PAL_M * 3
	SECAM_TIA = SECAM * 3
)
