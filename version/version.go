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

// Package version reports the version of the application. The version number
// is set at link time with:
//
//	-ldflags "-X github.com/TomHarte/CLK-sub007/version.number=v1.0.0"
//
// In the absence of a version number the VCS information embedded by the Go
// toolchain is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Cyclestep"

// set at link time. empty if the project was not built with a version number
var number string

// the revision is suffixed with "+dirty" if the source had been modified since
// the last commit
var revision string

// "unreleased" if there is no version number but there is VCS information.
// "local" if there is neither, which is the case with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Banner returns a single line description of the application and version
// suitable for printing on startup.
func Banner() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func describe(settings []debug.BuildSetting) (vcs bool, rev string) {
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		return vcs, "no revision information"
	}
	if modified {
		return vcs, fmt.Sprintf("%s+dirty", rev)
	}
	return vcs, rev
}

func init() {
	var vcs bool
	if info, ok := debug.ReadBuildInfo(); ok {
		vcs, revision = describe(info.Settings)
	} else {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
