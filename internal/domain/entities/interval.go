package entities

import (
	"cmp"
	"fmt"
	"math"
)

// VersionTriple is a concrete MAJOR.MINOR.PATCH release.
type VersionTriple struct {
	Major uint64
	Minor uint64
	Patch uint64
}

//nolint:gochecknoglobals // interval bounds
var (
	// MinVersion is the lowest representable release, 0.0.0.
	MinVersion = VersionTriple{}
	// MaxVersion stands in for "unbounded" on the upper side.
	MaxVersion = VersionTriple{Major: math.MaxUint64, Minor: math.MaxUint64, Patch: math.MaxUint64}
)

// Compare returns -1, 0 or +1 the way cmp.Compare does.
func (v VersionTriple) Compare(other VersionTriple) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

func (v VersionTriple) String() string {
	if v == MaxVersion {
		return "∞"
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// bumpMajor, bumpMinor and bumpPatch return the first release past the given band. They
// saturate at MaxVersion instead of wrapping around.
func bumpMajor(major uint64) VersionTriple {
	if major == math.MaxUint64 {
		return MaxVersion
	}
	return VersionTriple{Major: major + 1}
}

func bumpMinor(major, minor uint64) VersionTriple {
	if minor == math.MaxUint64 {
		return bumpMajor(major)
	}
	return VersionTriple{Major: major, Minor: minor + 1}
}

func bumpPatch(major, minor, patch uint64) VersionTriple {
	if patch == math.MaxUint64 {
		return bumpMinor(major, minor)
	}
	return VersionTriple{Major: major, Minor: minor, Patch: patch + 1}
}

// Interval is the half-open range [Start, End) of releases a requirement accepts.
type Interval struct {
	Start VersionTriple
	End   VersionTriple
}

// FullInterval accepts every release.
func FullInterval() Interval {
	return Interval{Start: MinVersion, End: MaxVersion}
}

// IsEmpty reports whether no release satisfies the interval (End <= Start).
func (i Interval) IsEmpty() bool {
	return i.End.Compare(i.Start) <= 0
}

// Intersect keeps the highest lower bound and the lowest upper bound.
func (i Interval) Intersect(other Interval) Interval {
	result := i
	if other.Start.Compare(result.Start) > 0 {
		result.Start = other.Start
	}
	if other.End.Compare(result.End) < 0 {
		result.End = other.End
	}
	return result
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start, i.End)
}

// floor is the comparator version with missing components read as zero.
func (c Comparator) floor() VersionTriple {
	triple := VersionTriple{Major: c.Major}
	if c.Minor != nil {
		triple.Minor = *c.Minor
	}
	if c.Patch != nil {
		triple.Patch = *c.Patch
	}
	return triple
}

// ceiling is the first release past the band named by the lowest given component:
// `1` -> 2.0.0, `1.2` -> 1.3.0, `1.2.3` -> 1.2.4.
func (c Comparator) ceiling() VersionTriple {
	switch {
	case c.Patch != nil:
		return bumpPatch(c.Major, *c.Minor, *c.Patch)
	case c.Minor != nil:
		return bumpMinor(c.Major, *c.Minor)
	default:
		return bumpMajor(c.Major)
	}
}

// caretCeiling keeps the left-most non-zero component fixed.
func (c Comparator) caretCeiling() VersionTriple {
	switch {
	case c.Major > 0 || c.Minor == nil:
		return bumpMajor(c.Major)
	case *c.Minor > 0 || c.Patch == nil:
		return bumpMinor(c.Major, *c.Minor)
	default:
		return bumpPatch(c.Major, *c.Minor, *c.Patch)
	}
}

// Interval converts the comparator into the releases it accepts.
func (c Comparator) Interval() Interval {
	switch c.Operator {
	case OperatorCaret:
		return Interval{Start: c.floor(), End: c.caretCeiling()}
	case OperatorTilde:
		if c.Patch != nil {
			return Interval{Start: c.floor(), End: bumpMinor(c.Major, *c.Minor)}
		}
		return Interval{Start: c.floor(), End: c.ceiling()}
	case OperatorExact, OperatorWildcard:
		return Interval{Start: c.floor(), End: c.ceiling()}
	case OperatorGreater:
		return Interval{Start: c.ceiling(), End: MaxVersion}
	case OperatorGreaterEq:
		return Interval{Start: c.floor(), End: MaxVersion}
	case OperatorLess:
		return Interval{Start: MinVersion, End: c.floor()}
	case OperatorLessEq:
		return Interval{Start: MinVersion, End: c.ceiling()}
	default:
		// the parser never produces other operators
		return Interval{Start: MaxVersion, End: MinVersion}
	}
}
