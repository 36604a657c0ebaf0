package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/numeral/pkg/adapters/memory"
	"github.com/aretw0/numeral/pkg/domain"
	"github.com/aretw0/numeral/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	ports.RunResultCacheContract(t, memory.NewCache(0))
}

func TestMemoryCache_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(2)

	require.NoError(t, cache.Set(ctx, "1 + 1", domain.Result{Output: "2"}))
	require.NoError(t, cache.Set(ctx, "1 + 2", domain.Result{Output: "3"}))
	// Overwriting an existing key does not count as a new entry.
	require.NoError(t, cache.Set(ctx, "1 + 1", domain.Result{Output: "2"}))
	require.NoError(t, cache.Set(ctx, "1 + 3", domain.Result{Output: "4"}))

	assert.Equal(t, 2, cache.Len())

	_, err := cache.Get(ctx, "1 + 1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss, "oldest entry should be evicted")

	got, err := cache.Get(ctx, "1 + 3")
	require.NoError(t, err)
	assert.Equal(t, "4", got.Output)
}

func TestMemoryCache_DeleteThenRefill(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(2)

	require.NoError(t, cache.Set(ctx, "a", domain.Result{Output: "a"}))
	require.NoError(t, cache.Set(ctx, "b", domain.Result{Output: "b"}))
	require.NoError(t, cache.Delete(ctx, "a"))
	require.NoError(t, cache.Set(ctx, "c", domain.Result{Output: "c"}))

	_, err := cache.Get(ctx, "b")
	assert.NoError(t, err, "b must survive: deleting a freed a slot")
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("%d + %d", i, i)
			_ = cache.Set(ctx, key, domain.Result{Output: fmt.Sprint(2 * i)})
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 16)
}
