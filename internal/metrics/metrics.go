package metrics

import (
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// NormalizationsTotal counts normalized answers by category and outcome.
	NormalizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answernorm_normalizations_total",
			Help: "Normalized answers by category and outcome",
		},
		[]string{"category", "outcome"}, // parsed|unparsed
	)

	// GradesTotal counts graded answers by category, policy and reason.
	GradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answernorm_grades_total",
			Help: "Graded answers by category, policy and reason",
		},
		[]string{"category", "policy", "reason"},
	)
)

// MustRegister registers the answer counters with r.
func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		NormalizationsTotal,
		GradesTotal,
	)
}

// MustRegisterCache exposes cache hit and miss counts read from stats.
func MustRegisterCache(r prometheus.Registerer, stats func() (hits, misses uint64)) {
	r.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "answernorm_cache_hits_total",
			Help: "Normalization cache hits",
		}, func() float64 {
			hits, _ := stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "answernorm_cache_misses_total",
			Help: "Normalization cache misses",
		}, func() float64 {
			_, misses := stats()
			return float64(misses)
		}),
	)
}

type instrumented struct {
	next ports.Dispatcher
}

// Instrument counts every normalization that passes through next.
func Instrument(next ports.Dispatcher) ports.Dispatcher {
	return instrumented{next: next}
}

func (i instrumented) Normalize(category domain.Category, input string) domain.Value {
	v := i.next.Normalize(category, input)
	outcome := "parsed"
	if !v.Parsed() {
		outcome = "unparsed"
	}
	NormalizationsTotal.WithLabelValues(category.String(), outcome).Inc()
	return v
}
