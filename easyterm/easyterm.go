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

// Package easyterm is a wrapper for "github.com/pkg/term". It provides
// terminal detection and geometry (from "golang.org/x/term") and wraps the
// mode switching functions in functions with friendlier names.
//
// Key presses are read from the controlling terminal rather than from
// standard input.
package easyterm

import (
	"errors"
	"fmt"
	"os"

	pterm "github.com/pkg/term"
	"golang.org/x/term"
)

// NotATerminal is returned by NewTerminal() if the output file is not a
// terminal.
var NotATerminal = errors.New("easyterm: not a terminal")

// the device from which key presses are read
const controllingTerminal = "/dev/tty"

// Terminal is the main container for posix terminals.
type Terminal struct {
	tty    *pterm.Term
	output *os.File
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(output *os.File) (*Terminal, error) {
	if output == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an output file")
	}
	if !term.IsTerminal(int(output.Fd())) {
		return nil, NotATerminal
	}

	tty, err := pterm.Open(controllingTerminal)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	return &Terminal{
		tty:    tty,
		output: output,
	}, nil
}

// CleanUp returns the terminal to the mode it was in when the Terminal was
// created and closes the controlling terminal.
func (pt *Terminal) CleanUp() error {
	err := pt.tty.Restore()
	if cerr := pt.tty.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// Geometry returns the number of columns and rows of the output terminal.
func (pt *Terminal) Geometry() (int, int, error) {
	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("easyterm: %w", err)
	}
	return cols, rows, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if err := pt.tty.Restore(); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	if err := pt.tty.SetCbreak(); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// ReadKey waits for a single key press. The terminal should be in cbreak mode.
// Escape sequences are returned one byte at a time.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	if _, err := pt.tty.Read(b); err != nil {
		return 0, fmt.Errorf("easyterm: %w", err)
	}
	return b[0], nil
}

// Flush discards any key presses that have not yet been read.
func (pt *Terminal) Flush() error {
	if err := pt.tty.Flush(); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
