//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

func TestChangelogEntries(t *testing.T) {
	t.Parallel()

	t.Run("should prefix every change line with a bullet", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.ChangeRecord{{
			DisplayName: "serde",
			Table:       entities.TableNormal,
			Verb:        entities.VerbAdd,
			To:          requirementPtr("1"),
		}}

		// when
		entries := entities.ChangelogEntries(records)

		// then
		assert.Equal(t, []string{"- ✨ add serde 1"}, entries)
	})

	t.Run("should give no entries for an empty diff", func(t *testing.T) {
		t.Parallel()

		// when
		entries := entities.ChangelogEntries(nil)

		// then
		assert.Empty(t, entries)
	})
}

func TestInsertChangelogEntries(t *testing.T) {
	t.Parallel()

	t.Run("should append after the existing changed bullets", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- existing entry\n\n## [1.0.0] - 2026-01-01\n\n- old\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- ✨ add serde 1"})

		// then
		assert.Equal(t,
			"# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- existing entry\n- ✨ add serde 1\n\n## [1.0.0] - 2026-01-01\n\n- old\n",
			result,
		)
	})

	t.Run("should create the changed subsection when missing", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [Unreleased]\n\n## [1.0.0] - 2026-01-01\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- ✨ add serde 1"})

		// then
		assert.Equal(t,
			"# Changelog\n\n## [Unreleased]\n\n### Changed\n\n- ✨ add serde 1\n\n## [1.0.0] - 2026-01-01\n",
			result,
		)
	})

	t.Run("should ignore a changed subsection of a released version", func(t *testing.T) {
		t.Parallel()

		// given
		content := "## [Unreleased]\n\n### Added\n\n- feature\n\n## [1.0.0]\n\n### Changed\n\n- old\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new"})

		// then
		assert.Equal(t,
			"## [Unreleased]\n\n### Changed\n\n- new\n\n### Added\n\n- feature\n\n## [1.0.0]\n\n### Changed\n\n- old\n",
			result,
		)
	})

	t.Run("should leave content without an unreleased section untouched", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Changelog\n\n## [1.0.0]\n"

		// when
		result := entities.InsertChangelogEntries(content, []string{"- new"})

		// then
		assert.Equal(t, content, result)
	})
}
