package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/cargodiff/internal/domain/repositories"
)

// ManifestRegistry manages the manifest repositories available to the diff, keyed by
// manifest format (e.g. "cargo").
type ManifestRegistry struct {
	repositories map[string]domainRepos.ManifestRepository
}

// NewManifestRegistry creates an empty manifest registry.
func NewManifestRegistry() *ManifestRegistry {
	return &ManifestRegistry{
		repositories: make(map[string]domainRepos.ManifestRepository),
	}
}

// Register adds a manifest repository under the given format name.
func (r *ManifestRegistry) Register(format string, repository domainRepos.ManifestRepository) {
	r.repositories[format] = repository
}

// Get returns the repository registered for the format.
func (r *ManifestRegistry) Get(format string) (domainRepos.ManifestRepository, error) {
	repository, ok := r.repositories[format]
	if !ok {
		return nil, fmt.Errorf("unknown manifest format: %q", format)
	}
	return repository, nil
}

// Formats returns the registered format names in sorted order.
func (r *ManifestRegistry) Formats() []string {
	formats := make([]string, 0, len(r.repositories))
	for format := range r.repositories {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
