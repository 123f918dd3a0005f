// Package version reports the build version of pokedex.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build metadata, set with -ldflags "-X".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// Parse validates v as a semantic version.
func Parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return sv, nil
}

// Full returns the version with commit and date when they are known.
func Full() string {
	s := GetVersion()
	if commit := GetGitCommit(); commit != "" {
		s += " (" + commit
		if date := GetBuildDate(); date != "" {
			s += ", " + date
		}
		s += ")"
	}
	return s
}

// IsPrerelease reports whether this build carries a prerelease tag.
func IsPrerelease() bool {
	sv, err := Parse(version)
	return err == nil && sv.Prerelease() != ""
}
