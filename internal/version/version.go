// Package version exposes build information injected at link time.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information, overridden with -ldflags "-X github.com/oshokin/utilkit/internal/version.Version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	// Version is the release version.
	Version = "0.1.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// ErrConstraintNotMet indicates that Version is outside a required range.
var ErrConstraintNotMet = errors.New("version does not satisfy constraint")

// Short returns the release version.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in one line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}

// Semver parses Version as a semantic version. A leading "v" is accepted.
func Semver() (*semver.Version, error) {
	return parse(Version)
}

// Satisfies reports whether Version matches a constraint such as ">= 0.1, < 1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	v, err := Semver()
	if err != nil {
		return false, err
	}

	return c.Check(v), nil
}

func parse(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", raw, err)
	}

	return v, nil
}
