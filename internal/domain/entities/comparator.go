package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrUnparseableRequirement is returned when a requirement string does not follow the
	// Cargo requirement grammar.
	ErrUnparseableRequirement = errors.New("unparseable version requirement")

	// ErrUnsupportedComparator is returned for grammatically valid input that the interval
	// model cannot represent (unknown operators, bare `*`, wildcards after a range operator).
	ErrUnsupportedComparator = errors.New("unsupported version comparator")
)

// Operator is the comparison operator of a single comparator.
type Operator int

const (
	OperatorCaret Operator = iota
	OperatorTilde
	OperatorExact
	OperatorGreater
	OperatorGreaterEq
	OperatorLess
	OperatorLessEq
	OperatorWildcard
)

// operatorSymbols maps every supported prefix to its operator. The empty prefix is the
// implied caret.
var operatorSymbols = map[string]Operator{ //nolint:gochecknoglobals // read-only lookup table
	"":   OperatorCaret,
	"^":  OperatorCaret,
	"~":  OperatorTilde,
	"=":  OperatorExact,
	">":  OperatorGreater,
	">=": OperatorGreaterEq,
	"<":  OperatorLess,
	"<=": OperatorLessEq,
}

// Symbol returns the operator as written in a requirement string.
func (o Operator) Symbol() string {
	switch o {
	case OperatorCaret:
		return "^"
	case OperatorTilde:
		return "~"
	case OperatorExact:
		return "="
	case OperatorGreater:
		return ">"
	case OperatorGreaterEq:
		return ">="
	case OperatorLess:
		return "<"
	case OperatorLessEq:
		return "<="
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case OperatorCaret:
		return "caret"
	case OperatorTilde:
		return "tilde"
	case OperatorExact:
		return "exact"
	case OperatorGreater:
		return "greater"
	case OperatorGreaterEq:
		return "greater-eq"
	case OperatorLess:
		return "less"
	case OperatorLessEq:
		return "less-eq"
	case OperatorWildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Comparator is one operator+version clause of a requirement, e.g. `^1.2` or `>=1.2.3`.
// Minor and Patch are nil when the clause omits them; Patch is never set without Minor.
type Comparator struct {
	Operator   Operator
	Major      uint64
	Minor      *uint64
	Patch      *uint64
	Prerelease string
}

var (
	operatorPrefixPattern = regexp.MustCompile(`^[\^~=<>!]*`)
	versionBodyPattern    = regexp.MustCompile(
		`^([0-9]+|[*xX])(?:\.([0-9]+|[*xX]))?(?:\.([0-9]+|[*xX]))?(?:-([0-9A-Za-z.-]+))?$`,
	)
)

// ParseComparator parses a single comparator such as `~1.2.3`, `>= 1.2` or `1.*`.
func ParseComparator(raw string) (Comparator, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Comparator{}, fmt.Errorf("%w %q: empty comparator", ErrUnparseableRequirement, raw)
	}

	prefix := operatorPrefixPattern.FindString(text)
	op, ok := operatorSymbols[prefix]
	if !ok {
		return Comparator{}, fmt.Errorf("%w %q: operator %q", ErrUnsupportedComparator, raw, prefix)
	}

	body := strings.TrimSpace(text[len(prefix):])
	groups := versionBodyPattern.FindStringSubmatch(body)
	if groups == nil {
		return Comparator{}, fmt.Errorf(
			"%w %q: expected MAJOR[.MINOR[.PATCH]][-PRERELEASE]", ErrUnparseableRequirement, raw,
		)
	}

	parts := groups[1:4]
	prerelease := groups[4]

	wildcardAt := -1
	for i, part := range parts {
		switch {
		case part == "":
			if i == 1 && parts[2] != "" {
				return Comparator{}, fmt.Errorf("%w %q: patch without minor", ErrUnparseableRequirement, raw)
			}
		case isWildcard(part):
			if wildcardAt < 0 {
				wildcardAt = i
			}
		case wildcardAt >= 0:
			return Comparator{}, fmt.Errorf(
				"%w %q: number after wildcard", ErrUnparseableRequirement, raw,
			)
		}
	}

	if wildcardAt == 0 {
		return Comparator{}, fmt.Errorf(
			"%w %q: a wildcard major version matches every release", ErrUnsupportedComparator, raw,
		)
	}
	if wildcardAt > 0 {
		if prefix != "" && op != OperatorExact {
			return Comparator{}, fmt.Errorf(
				"%w %q: wildcard cannot follow %q", ErrUnsupportedComparator, raw, prefix,
			)
		}
		if prerelease != "" {
			return Comparator{}, fmt.Errorf(
				"%w %q: prerelease after wildcard", ErrUnparseableRequirement, raw,
			)
		}
		op = OperatorWildcard
		parts = parts[:wildcardAt]
	}

	comparator := Comparator{Operator: op}
	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			break
		}
		value, err := parseVersionNumber(part)
		if err != nil {
			return Comparator{}, fmt.Errorf("%w %q: %w", ErrUnparseableRequirement, raw, err)
		}
		numbers = append(numbers, value)
	}

	comparator.Major = numbers[0]
	if len(numbers) > 1 {
		comparator.Minor = &numbers[1]
	}
	if len(numbers) > 2 { //nolint:mnd // major.minor.patch
		comparator.Patch = &numbers[2]
	}

	if prerelease != "" {
		if comparator.Patch == nil {
			return Comparator{}, fmt.Errorf(
				"%w %q: prerelease requires a full MAJOR.MINOR.PATCH version", ErrUnparseableRequirement, raw,
			)
		}
		candidate := fmt.Sprintf("v%d.%d.%d-%s", comparator.Major, *comparator.Minor, *comparator.Patch, prerelease)
		if !semver.IsValid(candidate) {
			return Comparator{}, fmt.Errorf(
				"%w %q: invalid prerelease %q", ErrUnparseableRequirement, raw, prerelease,
			)
		}
		comparator.Prerelease = prerelease
	}

	return comparator, nil
}

func isWildcard(part string) bool {
	return part == "*" || part == "x" || part == "X"
}

func parseVersionNumber(part string) (uint64, error) {
	if len(part) > 1 && part[0] == '0' {
		return 0, fmt.Errorf("invalid leading zero in %q", part)
	}
	value, err := strconv.ParseUint(part, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("version number %q out of range", part)
	}
	return value, nil
}

// Precision returns how many version components the comparator spells out (1 to 3).
func (c Comparator) Precision() int {
	switch {
	case c.Patch != nil:
		return 3 //nolint:mnd // major.minor.patch
	case c.Minor != nil:
		return 2 //nolint:mnd // major.minor
	default:
		return 1
	}
}

// String renders the comparator the way Cargo prints it, with wildcards collapsed to
// `I.*` / `I.J.*`.
func (c Comparator) String() string {
	var sb strings.Builder
	sb.WriteString(c.Operator.Symbol())
	c.writeVersion(&sb)
	return sb.String()
}

// Display renders the comparator for change lines, where the implied caret is omitted.
func (c Comparator) Display() string {
	if c.Operator != OperatorCaret {
		return c.String()
	}
	var sb strings.Builder
	c.writeVersion(&sb)
	return sb.String()
}

func (c Comparator) writeVersion(sb *strings.Builder) {
	sb.WriteString(strconv.FormatUint(c.Major, 10))
	if c.Minor == nil {
		if c.Operator == OperatorWildcard {
			sb.WriteString(".*")
		}
		return
	}
	sb.WriteString("." + strconv.FormatUint(*c.Minor, 10))
	if c.Patch == nil {
		if c.Operator == OperatorWildcard {
			sb.WriteString(".*")
		}
		return
	}
	sb.WriteString("." + strconv.FormatUint(*c.Patch, 10))
	if c.Prerelease != "" {
		sb.WriteString("-" + c.Prerelease)
	}
}
