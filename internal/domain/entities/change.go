package entities

// Change is the semantic-versioning magnitude of a requirement change.
type Change int

const (
	ChangeUnknown Change = iota
	ChangeNone
	ChangePatch
	ChangeMinor
	ChangeMajor
)

// Marker returns the emoji that prefixes a change line.
func (c Change) Marker() string {
	switch c {
	case ChangeMajor:
		return "❗"
	case ChangeMinor:
		return "📦"
	case ChangePatch:
		return "🔧"
	case ChangeNone:
		return "😐"
	default:
		return "🤷"
	}
}

func (c Change) String() string {
	switch c {
	case ChangeMajor:
		return "major"
	case ChangeMinor:
		return "minor"
	case ChangePatch:
		return "patch"
	case ChangeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ClassifyChange compares the leading comparators of two single-comparator requirements.
// Below 1.0.0 the left-most non-zero component is the breaking one, so a minor change on
// 0.x and a patch change on 0.0.x count as Major. Multi-comparator requirements, empty
// intervals and comparators of different precision classify as Unknown.
func ClassifyChange(current, previous VersionRequirement) Change {
	if !current.IsSingle() || !previous.IsSingle() {
		return ChangeUnknown
	}
	if current.Interval().IsEmpty() || previous.Interval().IsEmpty() {
		return ChangeUnknown
	}
	return classifyComparators(current.First(), previous.First())
}

func classifyComparators(current, previous Comparator) Change {
	if current.Major != previous.Major {
		return ChangeMajor
	}

	if current.Minor != nil && previous.Minor != nil && *current.Minor != *previous.Minor {
		if current.Major > 0 {
			return ChangeMinor
		}
		return ChangeMajor
	}

	if current.Patch != nil && previous.Patch != nil && *current.Patch != *previous.Patch {
		switch {
		case current.Major > 0:
			return ChangePatch
		case *current.Minor > 0:
			return ChangeMinor
		default:
			return ChangeMajor
		}
	}

	if current.Precision() == previous.Precision() {
		return ChangeNone
	}
	return ChangeUnknown
}
