//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// ManifestBuilder helps create manifests table by table.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	tables map[entities.TableKind][]entities.DependencyEntry
}

// NewManifestBuilder creates a builder for a manifest without dependencies.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		tables:      make(map[entities.TableKind][]entities.DependencyEntry),
	}
}

// WithEntry adds an entry to the given table.
func (b *ManifestBuilder) WithEntry(kind entities.TableKind, entry entities.DependencyEntry) *ManifestBuilder {
	b.tables[kind] = append(b.tables[kind], entry)
	return b
}

// WithDependency adds a plain `key = "version"` entry to the given table.
func (b *ManifestBuilder) WithDependency(kind entities.TableKind, key, version string) *ManifestBuilder {
	return b.WithEntry(kind, entities.DependencyEntry{Key: key, Source: entities.SimpleSource{Version: version}})
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	tables := make(map[entities.TableKind]entities.DependencySet, len(b.tables))
	for kind, entries := range b.tables {
		tables[kind] = entities.NewDependencySet(entries...)
	}
	return entities.NewManifest(tables)
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.tables = make(map[entities.TableKind][]entities.DependencyEntry)
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	tables := make(map[entities.TableKind][]entities.DependencyEntry, len(b.tables))
	for kind, entries := range b.tables {
		tables[kind] = append([]entities.DependencyEntry(nil), entries...)
	}
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		tables:      tables,
	}
}
