// Package gradle implements Gradle wrapper bookkeeping: version parsing and
// replacement policy, wrapper properties rendering, in-place version updates
// and invocation of the wrapper task.
package gradle

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted Gradle version with an optional patch component.
// It is not a strict semantic version.
type Version struct {
	Major    uint64
	Minor    uint64
	Patch    uint64
	HasPatch bool
}

// ParseErrorKind classifies version parse failures.
type ParseErrorKind int

const (
	// NoDot means the text has no '.' separating major and minor.
	NoDot ParseErrorKind = iota
	// TrailingDot means the text ends with a '.'.
	TrailingDot
	// InvalidNumber means a component is empty or not a decimal number.
	InvalidNumber
)

// ParseError is returned by ParseVersion.
type ParseError struct {
	Kind ParseErrorKind
	// Text is the offending component for InvalidNumber.
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoDot:
		return "no dot"
	case TrailingDot:
		return "last character shouldn't be a dot"
	default:
		return fmt.Sprintf("invalid number: %q", e.Text)
	}
}

func parseNumber(text string) (uint64, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: InvalidNumber, Text: text}
	}
	return n, nil
}

// ParseVersion parses "major.minor" or "major.minor.patch".
func ParseVersion(text string) (Version, error) {
	head, rest, ok := strings.Cut(text, ".")
	if !ok {
		return Version{}, &ParseError{Kind: NoDot}
	}
	if rest == "" {
		return Version{}, &ParseError{Kind: TrailingDot}
	}

	major, err := parseNumber(head)
	if err != nil {
		return Version{}, err
	}

	minorText, patchText, hasPatch := strings.Cut(rest, ".")
	if hasPatch && patchText == "" {
		return Version{}, &ParseError{Kind: TrailingDot}
	}

	minor, err := parseNumber(minorText)
	if err != nil {
		return Version{}, err
	}

	v := Version{Major: major, Minor: minor}
	if hasPatch {
		// A further dot makes the patch component non-numeric.
		patch, err := parseNumber(patchText)
		if err != nil {
			return Version{}, err
		}
		v.Patch = patch
		v.HasPatch = true
	}
	return v, nil
}

// CanReplace reports whether v may replace the installed version old.
// Only the same major.minor line qualifies: an unpinned old version gets
// pinned to any patch, a pinned one only moves to a strictly newer patch.
func (v Version) CanReplace(old Version) bool {
	if v.Major != old.Major || v.Minor != old.Minor {
		return false
	}
	switch {
	case v.HasPatch && !old.HasPatch:
		return true
	case v.HasPatch && old.HasPatch:
		return v.Patch > old.Patch
	default:
		return false
	}
}

// String renders the version back as major.minor[.patch].
func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersions parses every candidate, failing on the first malformed one.
func ParseVersions(texts []string) ([]Version, error) {
	versions := make([]Version, 0, len(texts))
	for _, text := range texts {
		v, err := ParseVersion(text)
		if err != nil {
			return nil, fmt.Errorf("invalid version argument %s: %w", text, err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}
