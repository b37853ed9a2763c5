//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cargodiff/internal/domain/entities"
)

func TestParseComparator(t *testing.T) {
	t.Parallel()

	t.Run("should parse a bare version as an implied caret", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "1.2.3"

		// when
		comparator, err := entities.ParseComparator(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OperatorCaret, comparator.Operator)
		assert.Equal(t, uint64(1), comparator.Major)
		require.NotNil(t, comparator.Minor)
		require.NotNil(t, comparator.Patch)
		assert.Equal(t, uint64(2), *comparator.Minor)
		assert.Equal(t, uint64(3), *comparator.Patch)
		assert.Equal(t, 3, comparator.Precision())
	})

	t.Run("should keep missing components unset", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "~1"

		// when
		comparator, err := entities.ParseComparator(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OperatorTilde, comparator.Operator)
		assert.Nil(t, comparator.Minor)
		assert.Nil(t, comparator.Patch)
		assert.Equal(t, 1, comparator.Precision())
	})

	t.Run("should recognize every supported operator", func(t *testing.T) {
		t.Parallel()

		// given
		cases := map[string]entities.Operator{
			"^1.2":  entities.OperatorCaret,
			"~1.2":  entities.OperatorTilde,
			"=1.2":  entities.OperatorExact,
			">1.2":  entities.OperatorGreater,
			">=1.2": entities.OperatorGreaterEq,
			"<1.2":  entities.OperatorLess,
			"<=1.2": entities.OperatorLessEq,
			"1.2.*": entities.OperatorWildcard,
		}

		for raw, expected := range cases {
			// when
			comparator, err := entities.ParseComparator(raw)

			// then
			require.NoError(t, err, raw)
			assert.Equal(t, expected, comparator.Operator, raw)
		}
	})

	t.Run("should accept whitespace between operator and version", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "  >=  1.5 "

		// when
		comparator, err := entities.ParseComparator(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, ">=1.5", comparator.String())
	})

	t.Run("should accept x and X as wildcards and an exact wildcard", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"1.x", "1.X", "=1.*"} {
			// when
			comparator, err := entities.ParseComparator(raw)

			// then
			require.NoError(t, err, raw)
			assert.Equal(t, entities.OperatorWildcard, comparator.Operator, raw)
			assert.Equal(t, "1.*", comparator.String(), raw)
		}
	})

	t.Run("should keep a prerelease after a full version", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "0.0.1-alpha.0"

		// when
		comparator, err := entities.ParseComparator(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "alpha.0", comparator.Prerelease)
		assert.Equal(t, "0.0.1-alpha.0", comparator.Display())
	})

	t.Run("should reject malformed comparators as unparseable", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{
			"",
			"abc",
			"1.2.3.4",
			"1..2",
			"1.*.3",
			"01.2",
			"1.2-beta",
			"1.2.3-",
			"1.2.3-beta..1",
			"1.2.*-beta",
			"18446744073709551616",
		}

		for _, raw := range inputs {
			// when
			_, err := entities.ParseComparator(raw)

			// then
			require.ErrorIs(t, err, entities.ErrUnparseableRequirement, raw)
		}
	})

	t.Run("should reject operators and wildcards the interval model cannot represent", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{"*", "x", "!=1.2", "~>1.2", "==1.2", "=>1.2", ">=1.*", "^1.*", "~1.2.*"}

		for _, raw := range inputs {
			// when
			_, err := entities.ParseComparator(raw)

			// then
			require.ErrorIs(t, err, entities.ErrUnsupportedComparator, raw)
		}
	})
}

func TestComparatorRendering(t *testing.T) {
	t.Parallel()

	t.Run("should render the operator symbol except for the implied caret", func(t *testing.T) {
		t.Parallel()

		// given
		cases := map[string]string{
			"1.2.3":  "1.2.3",
			"^1.2.3": "1.2.3",
			"~7.3.7": "~7.3.7",
			">=1.2":  ">=1.2",
			"=1.4.6": "=1.4.6",
			"<2":     "<2",
			"8.8.*":  "8.8.*",
			"4.*":    "4.*",
			"8.*.*":  "8.*",
		}

		for raw, expected := range cases {
			// when
			comparator, err := entities.ParseComparator(raw)

			// then
			require.NoError(t, err, raw)
			assert.Equal(t, expected, comparator.Display(), raw)
		}
	})

	t.Run("should keep the caret in the canonical form", func(t *testing.T) {
		t.Parallel()

		// given
		comparator, err := entities.ParseComparator("1.2")
		require.NoError(t, err)

		// when
		rendered := comparator.String()

		// then
		assert.Equal(t, "^1.2", rendered)
	})
}
