package normalizer

import (
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// PhoneNormalizer removes whitespace and nothing else. Leading zeros, the +
// prefix, dashes, dots and parentheses are part of the answer.
type PhoneNormalizer struct {
	space *charSet
}

// NewPhoneNormalizer creates a phone number normalizer.
func NewPhoneNormalizer() ports.Normalizer {
	return &PhoneNormalizer{space: newCharSet("", true)}
}

// Normalize implements ports.Normalizer.
func (n *PhoneNormalizer) Normalize(text string) domain.Value {
	return domain.Text(n.space.strip(text))
}
