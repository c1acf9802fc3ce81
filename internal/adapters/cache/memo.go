// Package cache memoizes normalization results. Normalization is a pure
// function of category and input, so a cached value never goes stale.
package cache

import (
	"sync/atomic"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxCachedInput is the longest input, in bytes, that is kept in the cache.
const MaxCachedInput = 256

type key struct {
	category domain.Category
	input    string
}

// Dispatcher is a ports.Dispatcher backed by a bounded LRU cache.
type Dispatcher struct {
	next   ports.Dispatcher
	cache  *lru.Cache[key, domain.Value]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New wraps next with a cache holding up to size entries.
func New(next ports.Dispatcher, size int) (*Dispatcher, error) {
	cache, err := lru.New[key, domain.Value](size)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{next: next, cache: cache}, nil
}

// Normalize implements ports.Dispatcher.
func (d *Dispatcher) Normalize(category domain.Category, input string) domain.Value {
	if len(input) > MaxCachedInput {
		return d.next.Normalize(category, input)
	}

	k := key{category: category, input: input}
	if v, ok := d.cache.Get(k); ok {
		d.hits.Add(1)
		return v
	}
	d.misses.Add(1)

	v := d.next.Normalize(category, input)
	d.cache.Add(k, v)
	return v
}

// Stats returns the number of cache hits and misses so far.
func (d *Dispatcher) Stats() (hits, misses uint64) {
	return d.hits.Load(), d.misses.Load()
}

// Len returns the number of cached entries.
func (d *Dispatcher) Len() int {
	return d.cache.Len()
}

// Purge drops every cached entry.
func (d *Dispatcher) Purge() {
	d.cache.Purge()
}
