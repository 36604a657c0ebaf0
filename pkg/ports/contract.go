package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/numeral/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	input := "X + V #" + time.Now().Format("20060102150405.000000")

	t.Run("Set and Get", func(t *testing.T) {
		want := domain.Result{Input: input, Output: "XV", System: domain.SystemRoman, Value: 15}

		err := cache.Set(ctx, input, want)
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, input)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, want, got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing-"+input)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := "overwrite-" + input
		require.NoError(t, cache.Set(ctx, key, domain.Result{Input: key, Output: "1", System: domain.SystemArabic, Value: 1}))
		require.NoError(t, cache.Set(ctx, key, domain.Result{Input: key, Output: "2", System: domain.SystemArabic, Value: 2}))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "2", got.Output)
		_ = cache.Delete(ctx, key)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, input, domain.Result{Input: input, Output: "XV", System: domain.SystemRoman, Value: 15}))

		err := cache.Delete(ctx, input)
		require.NoError(t, err, "Delete should not return error")

		_, err = cache.Get(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, input), "Deleting a missing entry should not fail")
	})
}
