package entities

import "strings"

// NoChangesLine is reported instead of an empty diff.
const NoChangesLine = "🧹 No changes detected."

const (
	addMarker    = "✨"
	removeMarker = "🗑️"
)

// Verb is what happened to a dependency between the two snapshots.
type Verb int

const (
	VerbAdd Verb = iota
	VerbRemove
	VerbBump
	VerbDrop
	VerbChange
)

func (v Verb) String() string {
	switch v {
	case VerbAdd:
		return "add"
	case VerbRemove:
		return "remove"
	case VerbBump:
		return "bump"
	case VerbDrop:
		return "drop"
	default:
		return "change"
	}
}

// ChangeRecord is one reported dependency change. From is nil for additions and To is nil
// for removals.
type ChangeRecord struct {
	DisplayName string
	Table       TableKind
	Verb        Verb
	From        *VersionRequirement
	To          *VersionRequirement
	Magnitude   Change
}

// TableLabel is the table annotation of the line, empty for normal dependencies.
func (r ChangeRecord) TableLabel() string {
	return r.Table.Label()
}

// String renders the record as a single change line without a trailing newline.
//
//	✨ add serde 1
//	🗑️ remove image (🖥️ dev-dependencies) 0.25.5
//	📦 bump ahash from 0.8.10 to 0.8.11
//
// Additions and removals carry a fixed marker. The other verbs carry the magnitude marker,
// which is left out when the magnitude is None.
func (r ChangeRecord) String() string {
	fields := make([]string, 0, 8) //nolint:mnd // marker verb name label from X to Y

	switch r.Verb {
	case VerbAdd:
		fields = append(fields, addMarker)
	case VerbRemove:
		fields = append(fields, removeMarker)
	default:
		if r.Magnitude != ChangeNone {
			fields = append(fields, r.Magnitude.Marker())
		}
	}

	fields = append(fields, r.Verb.String(), r.DisplayName)
	if label := r.TableLabel(); label != "" {
		fields = append(fields, label)
	}

	switch r.Verb {
	case VerbAdd:
		fields = append(fields, r.To.String())
	case VerbRemove:
		fields = append(fields, r.From.String())
	default:
		fields = append(fields, "from", r.From.String(), "to", r.To.String())
	}

	return strings.Join(fields, " ")
}

// RenderChangeRecords turns records into output lines, falling back to NoChangesLine.
func RenderChangeRecords(records []ChangeRecord) []string {
	if len(records) == 0 {
		return []string{NoChangesLine}
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.String())
	}
	return lines
}

// JoinLines terminates every line with a newline, as the CLI prints them.
func JoinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
