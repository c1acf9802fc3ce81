package domain

import "strings"

// Category selects the normalization strategy for an answer.
type Category int

const (
	// CategoryUnknown is any category this build does not recognise.
	// It normalizes with the identity strategy.
	CategoryUnknown Category = iota
	CategoryDate
	CategoryTime
	CategoryPhone
	CategoryPrice
	CategoryLargeNumber
	CategoryDecimal
	CategoryPercentage
	CategoryMeasurement
	CategoryMixed
)

var categoryNames = map[Category]string{
	CategoryDate:        "date",
	CategoryTime:        "time",
	CategoryPhone:       "phone",
	CategoryPrice:       "price",
	CategoryLargeNumber: "large_number",
	CategoryDecimal:     "decimal",
	CategoryPercentage:  "percentage",
	CategoryMeasurement: "measurement",
	CategoryMixed:       "mixed",
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryDate,
		CategoryTime,
		CategoryPhone,
		CategoryPrice,
		CategoryLargeNumber,
		CategoryDecimal,
		CategoryPercentage,
		CategoryMeasurement,
		CategoryMixed,
	}
}

// String returns the wire name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory resolves a wire name such as "large_number".
// Matching ignores case and surrounding whitespace; hyphens and spaces are
// accepted in place of underscores. Unrecognised names yield CategoryUnknown.
func ParseCategory(name string) Category {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for c, n := range categoryNames {
		if n == key {
			return c
		}
	}
	return CategoryUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// CategoryUnknown rather than failing.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
