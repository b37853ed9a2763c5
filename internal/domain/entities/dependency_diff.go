package entities

import (
	"fmt"
	"slices"
)

// gitSentinelRequirement stands in for git dependencies, whose version cannot be read from
// the manifest.
const gitSentinelRequirement = "0"

// DiffManifests reports the requirement changes from previous to current for the given
// tables (all tables when kinds is empty). Records are grouped by table in the fixed
// order normal, dev, build, workspace. Non-fatal findings go to diagnostics; any
// unparseable requirement aborts the whole diff.
func DiffManifests(
	current, previous *Manifest,
	kinds []TableKind,
	diagnostics *Diagnostics,
) ([]ChangeRecord, error) {
	var records []ChangeRecord
	for _, kind := range AllTableKinds() {
		if len(kinds) > 0 && !slices.Contains(kinds, kind) {
			continue
		}
		tableRecords, err := DiffDependencySets(kind, current.Table(kind), previous.Table(kind), diagnostics)
		if err != nil {
			return nil, err
		}
		records = append(records, tableRecords...)
	}
	return records, nil
}

// DiffDependencySets compares one table. Current keys are visited in lexicographic order
// and produce add/bump/drop/change records; previous keys never visited follow as
// removals, also in lexicographic order.
func DiffDependencySets(
	kind TableKind,
	current, previous DependencySet,
	diagnostics *Diagnostics,
) ([]ChangeRecord, error) {
	if diagnostics == nil {
		diagnostics = &Diagnostics{}
	}

	var records []ChangeRecord
	visited := make(map[string]struct{}, previous.Len())

	for _, key := range current.Keys() {
		currentEntry, _ := current.Get(key)
		currentReq, err := resolveRequirement(kind, currentEntry, diagnostics)
		if err != nil {
			return nil, err
		}

		previousEntry, found := previous.Get(key)
		if !found {
			records = append(records, ChangeRecord{
				DisplayName: currentEntry.DisplayName(),
				Table:       kind,
				Verb:        VerbAdd,
				To:          &currentReq,
				Magnitude:   ChangeUnknown,
			})
			continue
		}

		previousReq, err := resolveRequirement(kind, previousEntry, diagnostics)
		if err != nil {
			return nil, err
		}
		visited[key] = struct{}{}

		var verb Verb
		switch currentReq.Compare(previousReq) {
		case OrderingEqual:
			continue
		case OrderingGreater:
			verb = VerbBump
		case OrderingLess:
			verb = VerbDrop
		default:
			verb = VerbChange
		}

		records = append(records, ChangeRecord{
			DisplayName: currentEntry.DisplayName(),
			Table:       kind,
			Verb:        verb,
			From:        &previousReq,
			To:          &currentReq,
			Magnitude:   ClassifyChange(currentReq, previousReq),
		})
	}

	for _, key := range previous.Keys() {
		if _, seen := visited[key]; seen {
			continue
		}
		previousEntry, _ := previous.Get(key)
		previousReq, err := resolveRequirement(kind, previousEntry, diagnostics)
		if err != nil {
			return nil, err
		}
		records = append(records, ChangeRecord{
			DisplayName: previousEntry.DisplayName(),
			Table:       kind,
			Verb:        VerbRemove,
			From:        &previousReq,
			Magnitude:   ChangeUnknown,
		})
	}

	return records, nil
}

// resolveRequirement parses the requirement behind a declaration. Git sources resolve to
// the sentinel version and are reported once per entry.
func resolveRequirement(
	kind TableKind,
	entry DependencyEntry,
	diagnostics *Diagnostics,
) (VersionRequirement, error) {
	var raw string
	switch source := entry.Source.(type) {
	case SimpleSource:
		raw = source.Version
	case DetailedSource:
		raw = source.Version
	case GitSource:
		diagnostics.Add(Diagnostic{
			Kind:  DiagnosticGitSentinel,
			Table: kind,
			Key:   entry.Key,
			Message: fmt.Sprintf(
				"git dependency `%s` found, but version change detection for git dependencies "+
					"is not supported; comparing as version %s",
				source.Locator, gitSentinelRequirement,
			),
		})
		raw = gitSentinelRequirement
	default:
		return VersionRequirement{}, fmt.Errorf(
			"dependency %q in [%s]: %w", entry.Key, kind, ErrUnsupportedDependency,
		)
	}

	requirement, err := ParseRequirement(raw)
	if err != nil {
		return VersionRequirement{}, fmt.Errorf("dependency %q in [%s]: %w", entry.Key, kind, err)
	}

	if interval := requirement.Interval(); interval.IsEmpty() {
		diagnostics.Add(Diagnostic{
			Kind:  DiagnosticInvalidInterval,
			Table: kind,
			Key:   entry.Key,
			Message: fmt.Sprintf(
				"requirement `%s` accepts no version (%s); it cannot be ordered", requirement, interval,
			),
		})
	}

	return requirement, nil
}
