// Package tagfield turns form fields into chip-based tag editors for
// Bubble Tea programs.
//
// The headless tag collection lives in package tags, the component in
// package tagsinput and the host form model in package form.
package tagfield

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotSemver is returned by ParseSemver for malformed versions.
var ErrNotSemver = errors.New("not a semver version")

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre, Build          string
}

// ParseSemver parses v, which must not carry a leading "v".
func ParseSemver(v string) (Semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, fmt.Errorf("%w: %q", ErrNotSemver, v)
	}
	var s Semver
	for i, dst := range []*int{&s.Major, &s.Minor, &s.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Semver{}, fmt.Errorf("%w: %q: %v", ErrNotSemver, v, err)
		}
		*dst = n
	}
	s.Pre, s.Build = m[4], m[5]
	return s, nil
}

func (s Semver) String() string {
	out := fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
	if s.Pre != "" {
		out += "-" + s.Pre
	}
	if s.Build != "" {
		out += "+" + s.Build
	}
	return out
}

// Stable reports whether s promises a stable API: major 1 or later and
// no pre-release.
func (s Semver) Stable() bool { return s.Major > 0 && s.Pre == "" }

// IsSemver reports whether v is a SemVer 2.0.0 version.
func IsSemver(v string) bool {
	_, err := ParseSemver(v)
	return err == nil
}

// Version returns the module version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}
