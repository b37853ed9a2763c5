//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargodiff/internal/infrastructure/repositories"
	"github.com/rios0rios0/cargodiff/test/infrastructure/repositorydoubles"
)

func TestManifestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return the repository registered for a format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManifestRegistry()
		expected := &repositorydoubles.SpyManifestRepository{}
		registry.Register("cargo", expected)

		// when
		repository, err := registry.Get("cargo")

		// then
		require.NoError(t, err)
		assert.Same(t, expected, repository)
	})

	t.Run("should fail on an unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManifestRegistry()

		// when
		_, err := registry.Get("npm")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"npm"`)
	})

	t.Run("should list formats in order", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewManifestRegistry()
		registry.Register("poetry", &repositorydoubles.SpyManifestRepository{})
		registry.Register("cargo", &repositorydoubles.SpyManifestRepository{})

		// when
		formats := registry.Formats()

		// then
		assert.Equal(t, []string{"cargo", "poetry"}, formats)
	})
}
