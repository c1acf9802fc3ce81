package ports

import "github.com/baditaflorin/go_answer_normalization/internal/core/domain"

// Normalizer canonicalizes the raw text of one answer category.
type Normalizer interface {
	Normalize(text string) domain.Value
}
