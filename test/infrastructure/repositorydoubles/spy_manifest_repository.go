//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
	"github.com/rios0rios0/cargodiff/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- ReadWorkingTree ---
	WorkingTree    *entities.Manifest
	WorkingTreeErr error

	// --- ReadCommitted ---
	Committed    *entities.Manifest
	CommittedErr error

	// spy: arguments received
	RepoDirs      []string
	ManifestPaths []string
	Revisions     []string
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) ReadWorkingTree(
	_ context.Context,
	repoDir, manifestPath string,
) (*entities.Manifest, error) {
	s.RepoDirs = append(s.RepoDirs, repoDir)
	s.ManifestPaths = append(s.ManifestPaths, manifestPath)
	return s.WorkingTree, s.WorkingTreeErr
}

func (s *SpyManifestRepository) ReadCommitted(
	_ context.Context,
	repoDir, revision, manifestPath string,
) (*entities.Manifest, error) {
	s.RepoDirs = append(s.RepoDirs, repoDir)
	s.ManifestPaths = append(s.ManifestPaths, manifestPath)
	s.Revisions = append(s.Revisions, revision)
	return s.Committed, s.CommittedErr
}
