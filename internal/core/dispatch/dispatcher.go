package dispatch

import (
	"github.com/baditaflorin/go_answer_normalization/internal/adapters/normalizer"
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// Dispatcher routes each answer to the normalizer for its category.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	logger      ports.Logger
	normalizers map[domain.Category]ports.Normalizer
	fallback    ports.Normalizer
}

// NewDispatcher builds one normalizer per known category with factory.
func NewDispatcher(logger ports.Logger, factory *normalizer.NormalizerFactory) *Dispatcher {
	categories := domain.Categories()
	d := &Dispatcher{
		logger:      logger,
		normalizers: make(map[domain.Category]ports.Normalizer, len(categories)),
		fallback:    factory.CreateNormalizer(domain.CategoryUnknown),
	}
	for _, c := range categories {
		d.normalizers[c] = factory.CreateNormalizer(c)
	}
	return d
}

// Normalize canonicalizes input for category. Unknown categories pass the
// input through unchanged; no input makes it fail.
func (d *Dispatcher) Normalize(category domain.Category, input string) domain.Value {
	n, ok := d.normalizers[category]
	if !ok {
		n = d.fallback
	}

	value := n.Normalize(input)

	d.logger.Debug("Normalized answer",
		"category", category.String(),
		"input", input,
		"canonical", value.String(),
		"kind", value.Kind().String(),
		"parsed", value.Parsed(),
	)
	return value
}
