package normalizer

import (
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// IdentityNormalizer returns its input unchanged. Measurements and unknown
// categories use it.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates the pass-through normalizer.
func NewIdentityNormalizer() ports.Normalizer {
	return &IdentityNormalizer{}
}

// Normalize implements ports.Normalizer.
func (n *IdentityNormalizer) Normalize(text string) domain.Value {
	return domain.Text(text)
}
