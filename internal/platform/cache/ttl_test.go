package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/cineticket/internal/platform/cache"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

func TestIsFresh(t *testing.T) {
	base := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	assert.True(t, cache.IsFresh(base.Add(4*time.Minute), base, 5*time.Minute))
	assert.False(t, cache.IsFresh(base.Add(5*time.Minute), base, 5*time.Minute))
	assert.False(t, cache.IsFresh(base, time.Time{}, 5*time.Minute))
	assert.False(t, cache.IsFresh(base, base, 0))
}

func TestTTL_ExpiresWithClock(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)}
	c := cache.NewTTL[[]string](5*time.Minute, clk.Now)

	_, ok := c.Get()
	assert.False(t, ok)

	c.Set([]string{"a"})
	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	clk.t = clk.t.Add(6 * time.Minute)
	_, ok = c.Get()
	assert.False(t, ok)

	c.Set([]string{"b"})
	c.Invalidate()
	_, ok = c.Get()
	assert.False(t, ok)
}

func TestKeyed_SeparateEntries(t *testing.T) {
	clk := &fakeClock{t: time.Now()}
	k := cache.NewKeyed[int](time.Minute, clk.Now)

	k.Set("a", 1)
	_, ok := k.Get("b")
	assert.False(t, ok)
	v, ok := k.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	k.Invalidate()
	_, ok = k.Get("a")
	assert.False(t, ok)
}
