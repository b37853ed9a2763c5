package cargo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
	"github.com/rios0rios0/cargodiff/internal/domain/repositories"
)

// ManifestFormat is the registry name of the Cargo manifest format.
const ManifestFormat = "cargo"

// CargoManifestRepository implements repositories.ManifestRepository for Cargo.toml files.
// The working tree copy is read from disk; committed copies are read from the git object
// database without touching the working tree.
type CargoManifestRepository struct{}

// NewCargoManifestRepository creates a new Cargo manifest repository.
func NewCargoManifestRepository() repositories.ManifestRepository {
	return &CargoManifestRepository{}
}

// ReadWorkingTree reads and decodes <repoDir>/<manifestPath>.
func (r *CargoManifestRepository) ReadWorkingTree(
	ctx context.Context,
	repoDir, manifestPath string,
) (*entities.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(repoDir, manifestPath)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repositories.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debugf("Read %d bytes from %s", len(data), path)
	return DecodeManifest(data, path)
}

// ReadCommitted resolves the revision in the repository containing repoDir and decodes the
// manifest blob recorded in that commit.
func (r *CargoManifestRepository) ReadCommitted(
	ctx context.Context,
	repoDir, revision, manifestPath string,
) (*entities.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open repository at %s, check the path is inside a git repository: %w", repoDir, err,
		)
	}

	treePath, err := pathInRepository(repo, repoDir, manifestPath)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	source := fmt.Sprintf("%s@%s", treePath, revision)
	file, err := commit.File(treePath)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", repositories.ErrManifestNotFound, source)
		}
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	logger.Debugf("Read %d bytes from %s (commit %s)", len(contents), source, hash)
	return DecodeManifest([]byte(contents), source)
}

// pathInRepository converts <repoDir>/<manifestPath> into a slash-separated path relative
// to the repository root, which is what commit trees are keyed by.
func pathInRepository(repo *git.Repository, repoDir, manifestPath string) (string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to access worktree: %w", err)
	}

	root, err := canonicalPath(worktree.Filesystem.Root())
	if err != nil {
		return "", err
	}
	target, err := canonicalPath(filepath.Join(repoDir, manifestPath))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("manifest %s is outside repository %s: %w", target, root, err)
	}
	return filepath.ToSlash(rel), nil
}

// canonicalPath makes a path absolute and resolves symlinks in its directory, so that paths
// under symlinked temp directories still compare equal.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs, nil //nolint:nilerr // unresolvable directories are compared as given
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
