package normalizer

import (
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// MixedNormalizer canonicalizes alphanumeric codes such as booking
// references: upper-case, no whitespace.
type MixedNormalizer struct {
	space *charSet
}

// NewMixedNormalizer creates a mixed code normalizer.
func NewMixedNormalizer() ports.Normalizer {
	return &MixedNormalizer{space: newCharSet("", true)}
}

// Normalize implements ports.Normalizer.
func (n *MixedNormalizer) Normalize(text string) domain.Value {
	return domain.Text(n.space.strip(upperCasers.String(text)))
}
