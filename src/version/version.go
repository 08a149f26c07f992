package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	s := fmt.Sprintf("goaround-icons %s (%s, %s)", Version, Commit, BuildDate)
	if !IsRelease() {
		s += " [development build]"
	}
	return s
}

// Semver parses Version. Returns an error for "dev" and other non-semver builds.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", Version, err)
	}
	return v, nil
}

// IsRelease reports whether the binary carries a semver version without a prerelease tag.
func IsRelease() bool {
	v, err := Semver()
	return err == nil && v.Prerelease() == ""
}
