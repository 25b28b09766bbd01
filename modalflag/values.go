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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a flag.Value for a 16 bit address. The value can be given in
// decimal or in hexadecimal with a leading "0x" or "$".
type Address uint16

func (a *Address) String() string {
	return fmt.Sprintf("$%04x", uint16(*a))
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	s = strings.TrimSpace(s)
	base := 0
	if strings.HasPrefix(s, "$") {
		s = s[1:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return fmt.Errorf("invalid address (%s)", s)
	}
	*a = Address(v)
	return nil
}

// Cycles is a flag.Value for a count of cycles. The value can be suffixed
// with "k" or "m" for thousands or millions of cycles.
type Cycles int64

func (c *Cycles) String() string {
	return strconv.FormatInt(int64(*c), 10)
}

// Set implements the flag.Value interface.
func (c *Cycles) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "k"):
		mult = 1000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult = 1000000
		s = strings.TrimSuffix(s, "m")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number of cycles (%s)", s)
	}
	*c = Cycles(v * mult)
	return nil
}
