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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between a key and its value in a prefs file
const separator = " :: "

// NoPrefsFile is returned by Load() when the prefs file does not exist.
var NoPrefsFile = errors.New("prefs: no prefs file")

// Disk collates preference values so that they can be saved and loaded as
// a group.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. An
// empty path creates a Disk that is never written to or read from the
// filesystem. Command line preferences are still applied by Load().
func NewDisk(path string) *Disk {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// Add a preference value to the Disk under the key. Keys must be unique and
// must not contain the separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already exists (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save the current values to the prefs file. Entries in the file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	entries, err := dsk.read()
	if err != nil && !errors.Is(err, NoPrefsFile) {
		return err
	}
	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

// read the prefs file into a map of strings
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, NoPrefsFile
		}
		return entries, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate warning
	scanner.Scan()

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		entries[k] = v
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Load values from the prefs file, followed by any command line preferences
// for the keys in the Disk. Returns NoPrefsFile if the file does not exist but
// the command line preferences will still have been applied.
func (dsk *Disk) Load() error {
	var missing error

	if dsk.path != "" {
		entries, err := dsk.read()
		if err != nil {
			if !errors.Is(err, NoPrefsFile) {
				return err
			}
			missing = err
		}
		for k, v := range entries {
			if p, ok := dsk.entries[k]; ok {
				if err := p.Set(v); err != nil {
					return fmt.Errorf("prefs: %s: %w", k, err)
				}
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return missing
}
