package normalizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	"github.com/shopspring/decimal"
)

// numberPattern accepts an optional sign, digits with an optional decimal
// point and an optional exponent. Hex, Infinity and digit separators are
// rejected.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// maxExponent bounds the written exponent. Decimal conversion costs grow with
// the exponent's value, and no written answer needs a larger one.
const maxExponent = 400

// NumericNormalizer removes formatting noise and parses what is left as a
// decimal number. Text that does not parse is returned unmodified.
type NumericNormalizer struct {
	noise *charSet
}

// NewNumericNormalizer handles prices, large numbers and decimals: commas,
// whitespace and the $ £ € glyphs are noise.
func NewNumericNormalizer() ports.Normalizer {
	return &NumericNormalizer{noise: newCharSet(",$£€", true)}
}

// NewPercentageNormalizer handles percentages: only % and whitespace are noise.
func NewPercentageNormalizer() ports.Normalizer {
	return &NumericNormalizer{noise: newCharSet("%", true)}
}

// Normalize implements ports.Normalizer.
func (n *NumericNormalizer) Normalize(text string) domain.Value {
	if d, ok := parseDecimal(n.noise.strip(text)); ok {
		return domain.Number(d)
	}
	return domain.UnparsedText(text)
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	if !numberPattern.MatchString(s) || !exponentInRange(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Decimal{}, false
	}
	// Out of float64 range is not a number an answer can hold.
	if math.IsInf(d.InexactFloat64(), 0) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// exponentInRange reports whether the exponent of a matched number, if any,
// is at most maxExponent in magnitude.
func exponentInRange(s string) bool {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return true
	}
	digits := strings.TrimLeft(strings.TrimLeft(s[i+1:], "+-"), "0")
	if len(digits) > 3 {
		return false
	}
	exp, err := strconv.Atoi("0" + digits)
	return err == nil && exp <= maxExponent
}
