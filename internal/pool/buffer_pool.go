package pool

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StringBuilderPool implements a pool of strings.Builder for efficient string building
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new strings.Builder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// Get retrieves a builder from the pool or creates a new one if none are available
func (sbp *StringBuilderPool) Get() *strings.Builder {
	return sbp.pool.Get().(*strings.Builder)
}

// Put returns a builder to the pool for reuse
func (sbp *StringBuilderPool) Put(sb *strings.Builder) {
	sb.Reset()
	sbp.pool.Put(sb)
}

// CaserPool hands out golang.org/x/text casers. A cases.Caser keeps state
// between calls and must not be shared between goroutines.
type CaserPool struct {
	pool sync.Pool
}

// NewUpperPool creates a pool of language-neutral upper-casing casers.
func NewUpperPool() *CaserPool {
	return newCaserPool(func() cases.Caser { return cases.Upper(language.Und) })
}

// NewLowerPool creates a pool of language-neutral lower-casing casers.
func NewLowerPool() *CaserPool {
	return newCaserPool(func() cases.Caser { return cases.Lower(language.Und) })
}

func newCaserPool(build func() cases.Caser) *CaserPool {
	return &CaserPool{
		pool: sync.Pool{
			New: func() interface{} {
				c := build()
				return &c
			},
		},
	}
}

// String maps s with a pooled caser.
func (cp *CaserPool) String(s string) string {
	c := cp.pool.Get().(*cases.Caser)
	defer cp.pool.Put(c)
	return c.String(s)
}
