package entities

import "strings"

const (
	unreleasedHeading = "## [Unreleased]"
	changedSubheading = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// ChangelogEntries turns change records into Keep-a-Changelog bullets. An empty diff gives
// no entries.
func ChangelogEntries(records []ChangeRecord) []string {
	entries := make([]string, 0, len(records))
	for _, record := range records {
		entries = append(entries, bulletPrefix+record.String())
	}
	return entries
}

// changelogDocument is a Keep-a-Changelog file split into lines, with the positions of the
// Unreleased section resolved.
type changelogDocument struct {
	lines      []string
	unreleased int // index of "## [Unreleased]", -1 when absent
	sectionEnd int // index of the next release heading, or len(lines)
	changed    int // index of "### Changed" inside Unreleased, -1 when absent
}

func parseChangelog(content string) changelogDocument {
	doc := changelogDocument{
		lines:      strings.Split(content, "\n"),
		unreleased: -1,
		changed:    -1,
	}
	doc.sectionEnd = len(doc.lines)

	for i, line := range doc.lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case doc.unreleased < 0:
			if trimmed == unreleasedHeading {
				doc.unreleased = i
			}
		case strings.HasPrefix(trimmed, releasePrefix):
			doc.sectionEnd = i
			return doc
		case trimmed == changedSubheading && doc.changed < 0:
			doc.changed = i
		}
	}
	return doc
}

// insertionPoint is the line right after the last bullet of the Changed subsection.
func (d changelogDocument) insertionPoint() int {
	last := d.changed
	for i := d.changed + 1; i < d.sectionEnd; i++ {
		trimmed := strings.TrimSpace(d.lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		last = i
	}
	return last + 1
}

// InsertChangelogEntries adds the entries to the "### Changed" subsection of
// "## [Unreleased]", creating the subsection when needed. Content without an Unreleased
// section is returned unchanged.
func InsertChangelogEntries(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	doc := parseChangelog(content)
	if doc.unreleased < 0 {
		return content
	}

	var at int
	var block []string
	if doc.changed >= 0 {
		at = doc.insertionPoint()
		block = entries
	} else {
		at = doc.unreleased + 1
		block = append([]string{"", changedSubheading, ""}, entries...)
	}

	lines := make([]string, 0, len(doc.lines)+len(block))
	lines = append(lines, doc.lines[:at]...)
	lines = append(lines, block...)
	lines = append(lines, doc.lines[at:]...)
	return strings.Join(lines, "\n")
}
