package metrics

import (
	"testing"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubDispatcher struct{}

func (stubDispatcher) Normalize(_ domain.Category, input string) domain.Value {
	if input == "" {
		return domain.UnparsedText(input)
	}
	return domain.Text(input)
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	parsed := NormalizationsTotal.WithLabelValues("price", "parsed")
	unparsed := NormalizationsTotal.WithLabelValues("price", "unparsed")
	beforeParsed := testutil.ToFloat64(parsed)
	beforeUnparsed := testutil.ToFloat64(unparsed)

	d := Instrument(stubDispatcher{})
	v := d.Normalize(domain.CategoryPrice, "12")
	d.Normalize(domain.CategoryPrice, "")
	d.Normalize(domain.CategoryPrice, "13")

	assert.Equal(t, "12", v.String())
	assert.Equal(t, beforeParsed+2, testutil.ToFloat64(parsed))
	assert.Equal(t, beforeUnparsed+1, testutil.ToFloat64(unparsed))
}

func TestMustRegisterCache(t *testing.T) {
	r := prometheus.NewRegistry()
	MustRegister(r)
	MustRegisterCache(r, func() (uint64, uint64) { return 7, 3 })

	n, err := testutil.GatherAndCount(r, "answernorm_cache_hits_total", "answernorm_cache_misses_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
