package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRequirement is returned when a requirement string holds no comparators.
var ErrEmptyRequirement = errors.New("version requirement has no comparators")

// VersionRequirement is the parsed form of a dependency requirement string such as
// `0.8.11`, `~1.2` or `>=1.2, <1.5`. It always holds at least one comparator.
type VersionRequirement struct {
	comparators []Comparator
}

// ParseRequirement splits a requirement on commas and parses every comparator.
func ParseRequirement(raw string) (VersionRequirement, error) {
	if strings.TrimSpace(raw) == "" {
		return VersionRequirement{}, fmt.Errorf("%w: %q", ErrEmptyRequirement, raw)
	}

	clauses := strings.Split(raw, ",")
	comparators := make([]Comparator, 0, len(clauses))
	for _, clause := range clauses {
		comparator, err := ParseComparator(clause)
		if err != nil {
			if len(clauses) > 1 {
				return VersionRequirement{}, fmt.Errorf("in requirement %q: %w", raw, err)
			}
			return VersionRequirement{}, err
		}
		comparators = append(comparators, comparator)
	}

	return NewVersionRequirement(comparators...)
}

// MustParseRequirement is ParseRequirement for compile-time constants.
func MustParseRequirement(raw string) VersionRequirement {
	requirement, err := ParseRequirement(raw)
	if err != nil {
		panic(err)
	}
	return requirement
}

// NewVersionRequirement builds a requirement from already parsed comparators.
func NewVersionRequirement(comparators ...Comparator) (VersionRequirement, error) {
	if len(comparators) == 0 {
		return VersionRequirement{}, ErrEmptyRequirement
	}
	owned := make([]Comparator, len(comparators))
	copy(owned, comparators)
	return VersionRequirement{comparators: owned}, nil
}

// Comparators returns a copy of the comparators in declaration order.
func (r VersionRequirement) Comparators() []Comparator {
	out := make([]Comparator, len(r.comparators))
	copy(out, r.comparators)
	return out
}

// First returns the leading comparator, the one used for change classification.
func (r VersionRequirement) First() Comparator {
	return r.comparators[0]
}

// IsSingle reports whether the requirement is made of exactly one comparator.
func (r VersionRequirement) IsSingle() bool {
	return len(r.comparators) == 1
}

// Interval intersects the intervals of all comparators. The result may be empty when the
// comparators contradict each other (e.g. `>=1.5, <1.2`).
func (r VersionRequirement) Interval() Interval {
	result := FullInterval()
	for _, comparator := range r.comparators {
		result = result.Intersect(comparator.Interval())
	}
	return result
}

// Compare orders two requirements by the versions they allow.
func (r VersionRequirement) Compare(other VersionRequirement) Ordering {
	return r.Interval().Compare(other.Interval())
}

// String renders the requirement as it appears in change lines: comparators joined by
// `, ` with the implied caret left out.
func (r VersionRequirement) String() string {
	parts := make([]string, 0, len(r.comparators))
	for _, comparator := range r.comparators {
		parts = append(parts, comparator.Display())
	}
	return strings.Join(parts, ", ")
}
