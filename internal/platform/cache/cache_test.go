package cache_test

import (
	"testing"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/platform/cache"
	"github.com/stretchr/testify/assert"
)

func TestTagCache_GetSet(t *testing.T) {
	c := cache.NewTagCache[int](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 42, cache.ResourceFinance)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestTagCache_Expiry(t *testing.T) {
	c := cache.NewTagCache[string](-time.Second) // already expired on insert
	c.Set("a", "stale", cache.ResourceFinance)

	_, ok := c.Get("a")
	assert.False(t, ok)

	assert.Equal(t, 1, c.CleanExpired())
	assert.Equal(t, 0, c.Size())
}

func TestTagCache_InvalidateByResource(t *testing.T) {
	c := cache.NewTagCache[int](time.Minute)
	c.Set("summary:2024", 1, cache.ResourceFinance)
	c.Set("summary:2023", 2, cache.ResourceFinance)
	c.Set("fund-list", 3, cache.ResourceFunds)
	c.Set("dashboard", 4, cache.ResourceFinance, cache.ResourceFunds)

	c.Invalidate(cache.ResourceFinance)

	_, ok := c.Get("summary:2024")
	assert.False(t, ok)
	_, ok = c.Get("summary:2023")
	assert.False(t, ok)
	_, ok = c.Get("dashboard")
	assert.False(t, ok, "multi-tagged entries drop when any tag is invalidated")

	got, ok := c.Get("fund-list")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestRegistry_FansOut(t *testing.T) {
	summaries := cache.NewTagCache[int](time.Minute)
	series := cache.NewTagCache[[]int](time.Minute)

	reg := cache.NewRegistry()
	reg.Register(summaries)
	reg.Register(series)

	summaries.Set("s", 1, cache.ResourceFinance)
	series.Set("m", []int{1, 2}, cache.ResourceFinance)

	reg.Invalidate(cache.ResourceFinance)

	_, ok := summaries.Get("s")
	assert.False(t, ok)
	_, ok = series.Get("m")
	assert.False(t, ok)
}
