package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

// ErrManifestNotFound is returned when the manifest is missing from the working tree or
// from the requested revision.
var ErrManifestNotFound = errors.New("manifest not found")

// ManifestRepository abstracts where manifest snapshots come from. Implementations own
// both reading and decoding, and report failures with the file and the phase (open, read,
// decode) that failed.
type ManifestRepository interface {
	// ReadWorkingTree decodes the manifest as it currently exists on disk.
	ReadWorkingTree(ctx context.Context, repoDir, manifestPath string) (*entities.Manifest, error)

	// ReadCommitted decodes the manifest as recorded at the given revision (e.g. "HEAD").
	ReadCommitted(ctx context.Context, repoDir, revision, manifestPath string) (*entities.Manifest, error)
}
