package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags which variant a Value holds.
type Kind uint8

const (
	// KindText is a textual token.
	KindText Kind = iota
	// KindNumber is an exact decimal number.
	KindNumber
	// KindMinutes is a clock time expressed as minutes since midnight.
	KindMinutes
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindMinutes:
		return "minutes"
	default:
		return "text"
	}
}

// Value is the canonical form of an answer.
//
// A Value produced by a fallback path (a number that did not parse, a clock
// time that could not be read) reports Parsed() == false and keeps the
// original input, so callers can decide whether such answers may ever match.
type Value struct {
	kind    Kind
	text    string
	number  decimal.Decimal
	minutes int
	parsed  bool
}

// Text returns a parsed textual token.
func Text(token string) Value {
	return Value{kind: KindText, text: token, parsed: true}
}

// Number returns a parsed numeric value.
func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, number: d, text: d.String(), parsed: true}
}

// Minutes returns a parsed clock time.
func Minutes(m int) Value {
	return Value{kind: KindMinutes, minutes: m, parsed: true}
}

// UnparsedText is the numeric fallback: the original input kept verbatim.
func UnparsedText(original string) Value {
	return Value{kind: KindText, text: original}
}

// UnparsedMinutes is the clock fallback. It compares as midnight under Equal
// but remembers the original input.
func UnparsedMinutes(original string) Value {
	return Value{kind: KindMinutes, text: original}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Parsed reports whether the category parser accepted the input.
func (v Value) Parsed() bool { return v.parsed }

// Original returns the input kept by a fallback value, or "" for parsed
// numbers and clock times.
func (v Value) Original() string {
	if v.parsed {
		return ""
	}
	return v.text
}

// Decimal returns the numeric value and whether v holds one.
func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.number, v.kind == KindNumber
}

// Float returns the numeric value as a float64 and whether v holds one.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number.InexactFloat64(), true
}

// MinutesSinceMidnight returns the clock value and whether v holds one.
// Unparsed clock values report 0.
func (v Value) MinutesSinceMidnight() (int, bool) {
	return v.minutes, v.kind == KindMinutes
}

// String renders the canonical form. Feeding it back through the same
// category yields an equal Value.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.number.String()
	case KindMinutes:
		if !v.parsed {
			return v.text
		}
		return fmt.Sprintf("%02d:%02d", v.minutes/60, v.minutes%60)
	default:
		return v.text
	}
}

// Interface returns the value as a plain Go value: string for text,
// float64 for numbers and int for clock times.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.number.InexactFloat64()
	case KindMinutes:
		return v.minutes
	default:
		return v.text
	}
}

// Equal compares two canonical values the way the exercise grader does:
// same kind and same value. Unparsed clock times compare as 0 minutes.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.number.Equal(o.number)
	case KindMinutes:
		return v.minutes == o.minutes
	default:
		return v.text == o.text
	}
}

type valueJSON struct {
	Kind   string      `json:"kind"`
	Value  interface{} `json:"value"`
	Text   string      `json:"text"`
	Parsed bool        `json:"parsed"`
}

// MarshalJSON encodes numbers as JSON numbers without losing precision.
func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{
		Kind:   v.kind.String(),
		Text:   v.String(),
		Parsed: v.parsed,
	}
	switch v.kind {
	case KindNumber:
		out.Value = json.Number(v.number.String())
	case KindMinutes:
		out.Value = v.minutes
	default:
		out.Value = v.text
	}
	return json.Marshal(out)
}
