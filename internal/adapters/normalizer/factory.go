package normalizer

import (
	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

// NormalizerFactory creates the normalizer for an answer category
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer returns the strategy for category. Measurements have no
// strategy of their own yet and, like unknown categories, pass through.
func (f *NormalizerFactory) CreateNormalizer(category domain.Category) ports.Normalizer {
	switch category {
	case domain.CategoryLargeNumber, domain.CategoryDecimal, domain.CategoryPrice:
		return NewNumericNormalizer()
	case domain.CategoryPercentage:
		return NewPercentageNormalizer()
	case domain.CategoryPhone:
		return NewPhoneNormalizer()
	case domain.CategoryTime:
		return NewClockNormalizer()
	case domain.CategoryDate:
		return NewDateNormalizer()
	case domain.CategoryMixed:
		return NewMixedNormalizer()
	case domain.CategoryMeasurement:
		return NewIdentityNormalizer()
	default:
		return NewIdentityNormalizer()
	}
}
