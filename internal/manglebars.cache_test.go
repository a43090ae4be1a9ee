package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyCache_Disabled(t *testing.T) {
	cache := NewBodyCache(0, nil)
	assert.Nil(t, cache)

	cache.Set("x", StartPosition(), []Node{NewTextNode("x", StartPosition())})
	_, ok := cache.Get("x", StartPosition())
	assert.False(t, ok)
	cache.Clear()
	assert.Equal(t, BodyCacheStats{}, cache.Stats())
}

func TestBodyCache_GetSet(t *testing.T) {
	cache := NewBodyCache(2, nil)
	require.NotNil(t, cache)

	_, ok := cache.Get("a", StartPosition())
	assert.False(t, ok)

	nodes := []Node{NewTextNode("a", StartPosition())}
	cache.Set("a", StartPosition(), nodes)

	got, ok := cache.Get("a", StartPosition())
	require.True(t, ok)
	assert.Equal(t, nodes, got)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.EntryCount)
}

func TestBodyCache_EvictsOldestFirst(t *testing.T) {
	cache := NewBodyCache(2, nil)

	cache.Set("a", StartPosition(), nil)
	cache.Set("b", StartPosition(), nil)
	cache.Set("a", StartPosition(), nil) // refresh does not reorder
	cache.Set("c", StartPosition(), nil)

	_, ok := cache.Get("a", StartPosition())
	assert.False(t, ok)
	_, ok = cache.Get("b", StartPosition())
	assert.True(t, ok)
	_, ok = cache.Get("c", StartPosition())
	assert.True(t, ok)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Equal(t, 2, stats.EntryCount)
}

func TestBodyCache_Clear(t *testing.T) {
	cache := NewBodyCache(4, nil)
	cache.Set("a", StartPosition(), nil)
	cache.Set("b", StartPosition(), nil)
	cache.Clear()

	_, ok := cache.Get("a", StartPosition())
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Stats().EntryCount)
}

func TestBodyCache_Concurrent(t *testing.T) {
	cache := NewBodyCache(8, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			cache.Set(key, StartPosition(), nil)
			cache.Get(key, StartPosition())
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Stats().EntryCount, 8)
}

func TestBodyCache_KeyedByOffset(t *testing.T) {
	cache := NewBodyCache(4, nil)
	first := Position{Offset: 5, Line: 1, Column: 6}
	second := Position{Offset: 40, Line: 3, Column: 6}

	cache.Set("x", first, []Node{NewTextNode("x", first)})

	_, ok := cache.Get("x", second)
	assert.False(t, ok)

	cache.Set("x", second, []Node{NewTextNode("x", second)})
	got, ok := cache.Get("x", second)
	require.True(t, ok)
	assert.Equal(t, second, got[0].Pos())
	assert.Equal(t, 2, cache.Stats().EntryCount)
}
