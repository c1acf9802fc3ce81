// Package answernorm canonicalizes answers typed in listening and dictation
// exercises (dates, clock times, phone numbers, prices, percentages and
// alphanumeric codes) so that a submitted answer can be compared with the
// reference answer by plain equality.
//
// Canonical forms per category:
//
//	price, large_number, decimal  "$1,234.50" -> 1234.5
//	percentage                    "45 %"      -> 45
//	phone                         "+1 (555) 123-4567" -> "+1(555)123-4567"
//	time                          "3:15pm"    -> 915 (minutes since midnight)
//	date                          "21st March, 2024" -> "21MARCH2024"
//	mixed                         "ab 12 cd"  -> "AB12CD"
//	measurement, unknown          unchanged
//
// Normalization is total: every input yields a value and none yields an
// error. Numbers that do not parse come back as the original text and clock
// times that do not parse come back as 0 minutes, both flagged with
// Parsed() == false.
package answernorm

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_answer_normalization/internal/catalog"
	"github.com/baditaflorin/go_answer_normalization/pkg/answer"
)

var (
	defaultOnce       sync.Once
	defaultNormalizer *answer.Normalizer
)

func shared() *answer.Normalizer {
	defaultOnce.Do(func() {
		opt := answer.WithoutLogging()
		if lg, err := createDefaultLogger(); err == nil {
			opt = answer.WithLogger(lg)
		}
		// With a logger supplied and no cache, New cannot fail.
		defaultNormalizer, _ = answer.New(opt)
	})
	return defaultNormalizer
}

// NormalizeInput canonicalizes raw for category.
func NormalizeInput(category answer.Category, raw string) answer.Value {
	return shared().Normalize(category, raw)
}

// NormalizeInputName canonicalizes raw for the category with the given wire
// name, e.g. "large_number". Unknown names pass raw through unchanged.
func NormalizeInputName(category, raw string) answer.Value {
	return shared().NormalizeName(category, raw)
}

// GradeWithDefaults grades answer against reference with the lenient policy.
func GradeWithDefaults(category answer.Category, ans, reference string) answer.Verdict {
	return shared().Grade(context.Background(), category, ans, reference)
}

// QuestionCategories returns the question category table in display order.
func QuestionCategories() []catalog.Descriptor {
	return catalog.QuestionCategories()
}
