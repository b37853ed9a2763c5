package entities

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnsupportedDependency is returned for dependency declarations that carry neither a
// version requirement nor a git source (path-only or workspace-inherited entries).
var ErrUnsupportedDependency = errors.New("unsupported dependency declaration")

// TableKind identifies one of the dependency tables of a manifest.
type TableKind int

const (
	TableNormal TableKind = iota
	TableDev
	TableBuild
	TableWorkspace
)

// AllTableKinds lists the tables in the order their changes are reported.
func AllTableKinds() []TableKind {
	return []TableKind{TableNormal, TableDev, TableBuild, TableWorkspace}
}

// ParseTableKind maps a table name as used in settings (e.g. "dev-dependencies").
func ParseTableKind(name string) (TableKind, error) {
	for _, kind := range AllTableKinds() {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown dependency table %q", name)
}

func (k TableKind) String() string {
	switch k {
	case TableNormal:
		return "dependencies"
	case TableDev:
		return "dev-dependencies"
	case TableBuild:
		return "build-dependencies"
	case TableWorkspace:
		return "workspace-dependencies"
	default:
		return fmt.Sprintf("table(%d)", int(k))
	}
}

// Label is appended after the dependency name in change lines. The normal table has none.
func (k TableKind) Label() string {
	switch k {
	case TableDev:
		return "(🖥️ dev-dependencies)"
	case TableBuild:
		return "(🧱 build-dependencies)"
	case TableWorkspace:
		return "(🗄️ workspace-dependencies)"
	default:
		return ""
	}
}

// RequirementSource is how a manifest declares a dependency. The set of implementations is
// closed: SimpleSource, DetailedSource and GitSource.
type RequirementSource interface {
	requirementSource()
}

// SimpleSource is the `name = "1.2.3"` form.
type SimpleSource struct {
	Version string
}

// DetailedSource is the `name = { version = "1.2.3", package = "other" }` form.
type DetailedSource struct {
	Version string
	Package string
}

// GitSource is the `name = { git = "https://...", package = "other" }` form.
type GitSource struct {
	Locator string
	Package string
}

func (SimpleSource) requirementSource()   {}
func (DetailedSource) requirementSource() {}
func (GitSource) requirementSource()      {}

// DependencyEntry is a single declaration in a dependency table.
type DependencyEntry struct {
	Key    string
	Source RequirementSource
}

// PackageAlias returns the `package` field of the declaration, if any.
func (e DependencyEntry) PackageAlias() string {
	switch source := e.Source.(type) {
	case DetailedSource:
		return source.Package
	case GitSource:
		return source.Package
	default:
		return ""
	}
}

// DisplayName is the package name shown in change lines: the alias when the manifest
// renames the dependency, the manifest key otherwise.
func (e DependencyEntry) DisplayName() string {
	if alias := e.PackageAlias(); alias != "" {
		return alias
	}
	return e.Key
}

// DependencySet is the content of one dependency table, keyed by manifest key.
type DependencySet struct {
	entries map[string]DependencyEntry
}

// NewDependencySet indexes the given entries by key. A later entry replaces an earlier one
// with the same key.
func NewDependencySet(entries ...DependencyEntry) DependencySet {
	indexed := make(map[string]DependencyEntry, len(entries))
	for _, entry := range entries {
		indexed[entry.Key] = entry
	}
	return DependencySet{entries: indexed}
}

// Get looks up an entry by manifest key.
func (s DependencySet) Get(key string) (DependencyEntry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

// Keys returns the manifest keys in lexicographic order.
func (s DependencySet) Keys() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// Len is the number of entries in the table.
func (s DependencySet) Len() int {
	return len(s.entries)
}

// Manifest groups the dependency tables of one manifest snapshot.
type Manifest struct {
	tables map[TableKind]DependencySet
}

// NewManifest builds a manifest from its tables. Missing tables read as empty.
func NewManifest(tables map[TableKind]DependencySet) *Manifest {
	owned := make(map[TableKind]DependencySet, len(tables))
	maps.Copy(owned, tables)
	return &Manifest{tables: owned}
}

// Table returns the dependency set of the given kind.
func (m *Manifest) Table(kind TableKind) DependencySet {
	if m == nil {
		return DependencySet{}
	}
	return m.tables[kind]
}
