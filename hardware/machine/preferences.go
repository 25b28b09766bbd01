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

package machine

import (
	"errors"
	"fmt"

	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/prefs"
)

// Preferences for the machine.
type Preferences struct {
	dsk *prefs.Disk

	// speed of the CPU in MHz
	Clock prefs.Float

	// the number of additional cycles taken by an access to slow ram
	WaitStates prefs.Int

	// the number of cycles the machine is run for before the host regains
	// control
	Slice prefs.Int

	// initialise zero page and the stack to random values on reset
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means that the preferences will not be
// saved to or loaded from disk. Command line preferences are applied in
// either case.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Clock.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("machine: clock must be positive")
		}
		return nil
	})
	p.WaitStates.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("machine: wait states cannot be negative")
		}
		return nil
	})
	p.Slice.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("machine: slice must be at least one cycle")
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	p.dsk = prefs.NewDisk(path)
	if err := p.dsk.Add("clock", &p.Clock); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("waitstates", &p.WaitStates); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("slice", &p.Slice); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("randomstate", &p.RandomState); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Clock.Set(clocks.AppleII); err != nil {
		return err
	}
	if err := p.WaitStates.Set(1); err != nil {
		return err
	}
	if err := p.Slice.Set(64); err != nil {
		return err
	}
	return p.RandomState.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
