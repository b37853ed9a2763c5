//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// DependencyEntryBuilder helps create manifest entries with a fluent interface.
// Without a package or git locator the entry is a plain `name = "version"` declaration.
type DependencyEntryBuilder struct {
	*testkit.BaseBuilder
	key     string
	version string
	pkg     string
	git     string
}

// NewDependencyEntryBuilder creates a new entry builder with sensible defaults.
func NewDependencyEntryBuilder() *DependencyEntryBuilder {
	return &DependencyEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		key:         "serde",
		version:     "1.0.0",
	}
}

// WithKey sets the table key.
func (b *DependencyEntryBuilder) WithKey(key string) *DependencyEntryBuilder {
	b.key = key
	return b
}

// WithVersion sets the version requirement.
func (b *DependencyEntryBuilder) WithVersion(version string) *DependencyEntryBuilder {
	b.version = version
	return b
}

// WithPackage sets the package alias, turning the entry into a detailed declaration.
func (b *DependencyEntryBuilder) WithPackage(pkg string) *DependencyEntryBuilder {
	b.pkg = pkg
	return b
}

// WithGit sets a git locator, turning the entry into a git declaration.
func (b *DependencyEntryBuilder) WithGit(locator string) *DependencyEntryBuilder {
	b.git = locator
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *DependencyEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *DependencyEntryBuilder) BuildEntry() entities.DependencyEntry {
	var source entities.RequirementSource
	switch {
	case b.git != "":
		source = entities.GitSource{Locator: b.git, Package: b.pkg}
	case b.pkg != "":
		source = entities.DetailedSource{Version: b.version, Package: b.pkg}
	default:
		source = entities.SimpleSource{Version: b.version}
	}
	return entities.DependencyEntry{Key: b.key, Source: source}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.key = "serde"
	b.version = "1.0.0"
	b.pkg = ""
	b.git = ""
	return b
}

// Clone creates a deep copy of the DependencyEntryBuilder.
func (b *DependencyEntryBuilder) Clone() testkit.Builder {
	return &DependencyEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		key:         b.key,
		version:     b.version,
		pkg:         b.pkg,
		git:         b.git,
	}
}
