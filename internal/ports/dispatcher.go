package ports

import "github.com/baditaflorin/go_answer_normalization/internal/core/domain"

// Dispatcher routes an answer to the normalizer for its category.
type Dispatcher interface {
	Normalize(category domain.Category, input string) domain.Value
}
