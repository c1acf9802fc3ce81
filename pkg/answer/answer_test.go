package answer

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_answer_normalization/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	next  Dispatcher
	calls int
}

func (r *recordingDispatcher) Normalize(category Category, input string) Value {
	r.calls++
	return r.next.Normalize(category, input)
}

func TestNormalize(t *testing.T) {
	n, err := New(WithoutLogging())
	require.NoError(t, err)
	defer n.Close()

	assert.Equal(t, "AB12CD", n.Normalize(Mixed, "ab 12 cd").String())
	assert.Equal(t, "21MARCH2024", n.NormalizeName("date", "21st March, 2024").String())

	v := n.NormalizeName("large-number", "1,000,000")
	assert.Equal(t, KindNumber, v.Kind())
	assert.Equal(t, "1000000", v.String())
}

func TestNewRejectsNegativeCacheSize(t *testing.T) {
	_, err := New(WithoutLogging(), WithCacheSize(-1))
	assert.Error(t, err)
}

func TestCacheStats(t *testing.T) {
	n, err := New(WithoutLogging(), WithCacheSize(16))
	require.NoError(t, err)

	n.Normalize(Price, "$5")
	n.Normalize(Price, "$5")
	hits, misses := n.CacheStats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 1, misses)

	uncached, err := New(WithoutLogging())
	require.NoError(t, err)
	uncached.Normalize(Price, "$5")
	hits, misses = uncached.CacheStats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestMiddlewareSeesCachedCalls(t *testing.T) {
	var rec *recordingDispatcher
	n, err := New(WithoutLogging(), WithCacheSize(16), WithMiddleware(func(next Dispatcher) Dispatcher {
		rec = &recordingDispatcher{next: next}
		return rec
	}))
	require.NoError(t, err)

	n.Normalize(Time, "3pm")
	n.Normalize(Time, "3pm")
	assert.Equal(t, 2, rec.calls)
}

func TestGradePolicies(t *testing.T) {
	lenient, err := New(WithoutLogging())
	require.NoError(t, err)
	strict, err := New(WithoutLogging(), WithPolicy(Strict))
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, lenient.Grade(ctx, Time, "later", "12am").Correct)
	assert.False(t, strict.Grade(ctx, Time, "later", "12am").Correct)
	assert.True(t, strict.GradeWith(ctx, Lenient, Time, "later", "12am").Correct)
	assert.Equal(t, Strict, strict.Policy())
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	_, err := New(WithoutLogging(), WithPolicy(Policy(5)))
	assert.Error(t, err)
}

func TestWarmUpRunsOnce(t *testing.T) {
	n, err := New(
		WithoutLogging(),
		WithCacheSize(1024),
		WithWarmUpConfig(WarmupConfig{Concurrency: 1, Iterations: 1}),
	)
	require.NoError(t, err)

	hits, misses := n.CacheStats()
	assert.Positive(t, misses)

	n.WarmUp(context.Background(), WarmupConfig{Concurrency: 1, Iterations: 1})
	againHits, againMisses := n.CacheStats()
	assert.Equal(t, hits, againHits)
	assert.Equal(t, misses, againMisses)
}

func TestWarmUpSkipsMiddleware(t *testing.T) {
	var rec *recordingDispatcher
	parsedTimes := metrics.NormalizationsTotal.WithLabelValues("time", "parsed")
	before := testutil.ToFloat64(parsedTimes)

	n, err := New(
		WithoutLogging(),
		WithCacheSize(4096),
		WithMiddleware(metrics.Instrument),
		WithMiddleware(func(next Dispatcher) Dispatcher {
			rec = &recordingDispatcher{next: next}
			return rec
		}),
	)
	require.NoError(t, err)

	n.WarmUp(context.Background(), WarmupConfig{Concurrency: 2, Iterations: 10})

	assert.Equal(t, 0, rec.calls)
	assert.Equal(t, before, testutil.ToFloat64(parsedTimes))
	_, misses := n.CacheStats()
	assert.Positive(t, misses, "warm-up still fills the cache")

	n.Normalize(Time, "3pm")
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, before+1, testutil.ToFloat64(parsedTimes))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, Percentage, ParseCategory("Percentage"))
	p, err := ParsePolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, Strict, p)
	assert.Positive(t, DefaultWarmupConfig().Iterations)
}
