//go:build unit

package cargo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
	"github.com/rios0rios0/cargodiff/internal/domain/repositories"
	"github.com/rios0rios0/cargodiff/internal/infrastructure/repositories/cargo"
)

// commitFile writes a file into the worktree and commits it.
func commitFile(t *testing.T, repo *git.Repository, dir, path, content, message string) {
	t.Helper()

	full := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(path)
	require.NoError(t, err)
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestCargoManifestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read the working tree and the committed manifest", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "Cargo.toml", "[dependencies]\nserde = \"1.0.215\"\n", "initial")
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "Cargo.toml"), []byte("[dependencies]\nserde = \"1\"\nanyhow = \"1\"\n"), 0o600,
		))
		repository := cargo.NewCargoManifestRepository()

		// when
		current, currentErr := repository.ReadWorkingTree(context.Background(), dir, "Cargo.toml")
		previous, previousErr := repository.ReadCommitted(context.Background(), dir, "HEAD", "Cargo.toml")

		// then
		require.NoError(t, currentErr)
		require.NoError(t, previousErr)
		assert.Equal(t, []string{"anyhow", "serde"}, current.Table(entities.TableNormal).Keys())
		assert.Equal(t, []string{"serde"}, previous.Table(entities.TableNormal).Keys())
		serde, _ := previous.Table(entities.TableNormal).Get("serde")
		assert.Equal(t, entities.SimpleSource{Version: "1.0.215"}, serde.Source)
	})

	t.Run("should resolve older revisions and nested manifests", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "crates/core/Cargo.toml", "[dependencies]\nserde = \"1.0.100\"\n", "first")
		commitFile(t, repo, dir, "crates/core/Cargo.toml", "[dependencies]\nserde = \"1.0.200\"\n", "second")
		repository := cargo.NewCargoManifestRepository()

		// when
		manifest, err := repository.ReadCommitted(context.Background(), dir, "HEAD~1", "crates/core/Cargo.toml")

		// then
		require.NoError(t, err)
		serde, _ := manifest.Table(entities.TableNormal).Get("serde")
		assert.Equal(t, entities.SimpleSource{Version: "1.0.100"}, serde.Source)
	})

	t.Run("should find the repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "crates/core/Cargo.toml", "[dependencies]\nserde = \"1\"\n", "initial")
		repository := cargo.NewCargoManifestRepository()

		// when
		manifest, err := repository.ReadCommitted(
			context.Background(), filepath.Join(dir, "crates", "core"), "HEAD", "Cargo.toml",
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"serde"}, manifest.Table(entities.TableNormal).Keys())
	})

	t.Run("should report a manifest missing from the commit", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "README.md", "# sample\n", "initial")
		repository := cargo.NewCargoManifestRepository()

		// when
		_, err = repository.ReadCommitted(context.Background(), dir, "HEAD", "Cargo.toml")

		// then
		require.ErrorIs(t, err, repositories.ErrManifestNotFound)
	})

	t.Run("should report a manifest missing from the working tree", func(t *testing.T) {
		t.Parallel()

		// given
		repository := cargo.NewCargoManifestRepository()

		// when
		_, err := repository.ReadWorkingTree(context.Background(), t.TempDir(), "Cargo.toml")

		// then
		require.ErrorIs(t, err, repositories.ErrManifestNotFound)
	})

	t.Run("should fail outside a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		repository := cargo.NewCargoManifestRepository()

		// when
		_, err := repository.ReadCommitted(context.Background(), t.TempDir(), "HEAD", "Cargo.toml")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open repository")
	})

	t.Run("should fail on an unknown revision", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "Cargo.toml", "[dependencies]\n", "initial")
		repository := cargo.NewCargoManifestRepository()

		// when
		_, err = repository.ReadCommitted(context.Background(), dir, "no-such-branch", "Cargo.toml")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve revision")
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		t.Parallel()

		// given
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repository := cargo.NewCargoManifestRepository()

		// when
		_, err := repository.ReadWorkingTree(ctx, t.TempDir(), "Cargo.toml")

		// then
		require.ErrorIs(t, err, context.Canceled)
	})
}
