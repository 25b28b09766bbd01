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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TomHarte/CLK-sub007/test"
)

func TestDecodeARM(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, []string{"DECODE", "e0821003", "0x00000000"}, nil)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ADD R1, R2, R3"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "00000000  AND"))
}

func TestDecode6502(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, []string{"DECODE", "-cpu", "6502", "$a9"}, nil)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "a9 LDA"))
}

func TestDecodeErrors(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch(out, []string{"DECODE"}, nil), exitModeError)

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"DECODE", "xyz"}, nil), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in DECODE mode"))

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"DECODE", "-cpu", "6502", "100"}, nil), exitModeError)

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"DECODE", "-cpu", "Z80", "00"}, nil), exitModeError)
}

func TestRun(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, []string{"RUN", "-cycles", "1k"}, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "beeper: "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "stall: "))
}

func TestRunDefault(t *testing.T) {
	// RUN is the default mode
	out := &test.CompareWriter{}
	v := launch(out, []string{"-cycles", "100"}, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "beeper: "))
}

func TestRunProgram(t *testing.T) {
	dir := t.TempDir()

	// LDA #$42; JMP $0302
	prog := filepath.Join(dir, "prog.bin")
	err := os.WriteFile(prog, []uint8{0xa9, 0x42, 0x4c, 0x02, 0x03}, 0o600)
	test.DemandSuccess(t, err)

	wav := filepath.Join(dir, "out.wav")
	dot := filepath.Join(dir, "state.dot")

	out := &test.CompareWriter{}
	v := launch(out, []string{"RUN", "-origin", "$0300", "-cycles", "10k", "-wav", wav, "-memviz", dot, prog}, make(chan os.Signal, 1))
	test.DemandEquality(t, v, 0)

	_, err = os.Stat(wav)
	test.ExpectSuccess(t, err)
	_, err = os.Stat(dot)
	test.ExpectSuccess(t, err)
}

func TestRunTrace(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, []string{"RUN", "-trace", "-cycles", "20"}, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "read opcode"))
}

func TestRunInterrupted(t *testing.T) {
	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt

	out := &test.CompareWriter{}
	v := launch(out, []string{"RUN", "-cycles", "1m"}, intChan)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "! interrupted"))
}

func TestRunErrors(t *testing.T) {
	out := &test.CompareWriter{}

	// the default program can only be run at the default origin
	test.ExpectEquality(t, launch(out, []string{"RUN", "-origin", "$0400"}, nil), exitModeError)

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"RUN", "a.bin", "b.bin"}, nil), exitModeError)

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"RUN", filepath.Join(t.TempDir(), "missing.bin")}, nil), exitModeError)

	out.Clear()
	test.ExpectEquality(t, launch(out, []string{"RUN", "-prefs", "clock::0"}, nil), exitModeError)
}

func TestHelp(t *testing.T) {
	out := &test.CompareWriter{}
	v := launch(out, []string{"-help"}, nil)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "RUN"))
}
