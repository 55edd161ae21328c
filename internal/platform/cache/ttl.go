package cache

import (
	"sync"
	"time"
)

// IsFresh reports whether data fetched at fetchedAt is still usable at now.
func IsFresh(now, fetchedAt time.Time, ttl time.Duration) bool {
	if fetchedAt.IsZero() || ttl <= 0 {
		return false
	}
	return now.Sub(fetchedAt) < ttl
}

// TTL holds one fetched value and the time it was fetched.
type TTL[T any] struct {
	mu        sync.Mutex
	data      T
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func NewTTL[T any](ttl time.Duration, now func() time.Time) *TTL[T] {
	if now == nil {
		now = time.Now
	}
	return &TTL[T]{ttl: ttl, now: now}
}

func (c *TTL[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !IsFresh(c.now(), c.fetchedAt, c.ttl) {
		var zero T
		return zero, false
	}
	return c.data, true
}

func (c *TTL[T]) Set(v T) {
	c.mu.Lock()
	c.data = v
	c.fetchedAt = c.now()
	c.mu.Unlock()
}

func (c *TTL[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.data = zero
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Keyed is a set of TTL entries addressed by key, e.g. screenings per
// (theater, movie) pair.
type Keyed[T any] struct {
	mu      sync.Mutex
	entries map[string]*TTL[T]
	ttl     time.Duration
	now     func() time.Time
}

func NewKeyed[T any](ttl time.Duration, now func() time.Time) *Keyed[T] {
	if now == nil {
		now = time.Now
	}
	return &Keyed[T]{entries: make(map[string]*TTL[T]), ttl: ttl, now: now}
}

func (k *Keyed[T]) entry(key string) *TTL[T] {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[key]
	if !ok {
		e = NewTTL[T](k.ttl, k.now)
		k.entries[key] = e
	}
	return e
}

func (k *Keyed[T]) Get(key string) (T, bool) { return k.entry(key).Get() }

func (k *Keyed[T]) Set(key string, v T) { k.entry(key).Set(v) }

func (k *Keyed[T]) Invalidate() {
	k.mu.Lock()
	k.entries = make(map[string]*TTL[T])
	k.mu.Unlock()
}
