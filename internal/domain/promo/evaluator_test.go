//go:build unit

package promo_test

import (
	"testing"

	"bookit/internal/domain/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	evaluator := promo.NewEvaluator()

	t.Run("percentage discount", func(t *testing.T) {
		result, err := evaluator.Evaluate("SAVE10", 1000)
		require.NoError(t, err)

		assert.Equal(t, "SAVE10", result.Code)
		assert.Equal(t, promo.TypePercentage, result.Type)
		assert.Equal(t, int64(100), result.Discount)
		assert.Equal(t, int64(900), result.FinalPrice)
	})

	t.Run("percentage rounds to nearest", func(t *testing.T) {
		// 10% of 105 = 10.5, rounds to 11
		result, err := evaluator.Evaluate("SAVE10", 105)
		require.NoError(t, err)

		assert.Equal(t, int64(11), result.Discount)
		assert.Equal(t, int64(94), result.FinalPrice)
	})

	t.Run("flat discount", func(t *testing.T) {
		result, err := evaluator.Evaluate("FLAT100", 1000)
		require.NoError(t, err)

		assert.Equal(t, promo.TypeFlat, result.Type)
		assert.Equal(t, int64(100), result.Discount)
		assert.Equal(t, int64(900), result.FinalPrice)
	})

	t.Run("flat discount capped at price", func(t *testing.T) {
		result, err := evaluator.Evaluate("FLAT100", 60)
		require.NoError(t, err)

		assert.Equal(t, int64(60), result.Discount)
		assert.Equal(t, int64(0), result.FinalPrice)
	})

	t.Run("codes are case insensitive", func(t *testing.T) {
		result, err := evaluator.Evaluate("  welcome20 ", 1000)
		require.NoError(t, err)

		assert.Equal(t, "WELCOME20", result.Code)
		assert.Equal(t, int64(200), result.Discount)
	})

	t.Run("all known codes resolve", func(t *testing.T) {
		for _, code := range []string{"SAVE10", "FLAT100", "WELCOME20", "NEWYEAR25"} {
			_, err := evaluator.Evaluate(code, 1000)
			assert.NoError(t, err, code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := evaluator.Evaluate("BOGUS", 1000)
		assert.ErrorIs(t, err, promo.ErrCodeNotFound)
	})
}
