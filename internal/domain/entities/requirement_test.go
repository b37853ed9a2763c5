//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

func TestParseRequirement(t *testing.T) {
	t.Parallel()

	t.Run("should split comma separated comparators in order", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ">=1.2, <1.5"

		// when
		requirement, err := entities.ParseRequirement(raw)

		// then
		require.NoError(t, err)
		comparators := requirement.Comparators()
		require.Len(t, comparators, 2)
		assert.Equal(t, entities.OperatorGreaterEq, comparators[0].Operator)
		assert.Equal(t, entities.OperatorLess, comparators[1].Operator)
		assert.False(t, requirement.IsSingle())
		assert.Equal(t, comparators[0], requirement.First())
	})

	t.Run("should normalize spacing when rendering", func(t *testing.T) {
		t.Parallel()

		// given
		cases := map[string]string{
			">=1.2, <1.5":      ">=1.2, <1.5",
			">=1.5,     >=1.9": ">=1.5, >=1.9",
			" 0.8.11 ":         "0.8.11",
			"^0.2":             "0.2",
		}

		for raw, expected := range cases {
			// when
			requirement, err := entities.ParseRequirement(raw)

			// then
			require.NoError(t, err, raw)
			assert.Equal(t, expected, requirement.String(), raw)
		}
	})

	t.Run("should reject an empty requirement", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   "} {
			// when
			_, err := entities.ParseRequirement(raw)

			// then
			require.ErrorIs(t, err, entities.ErrEmptyRequirement, raw)
		}
	})

	t.Run("should reject a requirement with an empty clause", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ">=1.2,"

		// when
		_, err := entities.ParseRequirement(raw)

		// then
		require.ErrorIs(t, err, entities.ErrUnparseableRequirement)
		assert.Contains(t, err.Error(), raw)
	})

	t.Run("should propagate unsupported comparators", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ">=1.2, !=1.3"

		// when
		_, err := entities.ParseRequirement(raw)

		// then
		require.ErrorIs(t, err, entities.ErrUnsupportedComparator)
	})

	t.Run("should refuse to build a requirement without comparators", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewVersionRequirement()

		// then
		require.ErrorIs(t, err, entities.ErrEmptyRequirement)
	})

	t.Run("should panic on invalid input when using MustParseRequirement", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Panics(t, func() { entities.MustParseRequirement("not a version") })
	})
}
