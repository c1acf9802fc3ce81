// Package catalog holds the static question category table shown in the
// category picker and the user-facing enumerations that go with it.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor describes one question category for the picker.
type Descriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Style string `json:"bgClass"`
}

// Question category identifiers. The set is coarser than the normalization
// categories and unrelated to them.
const (
	Date        = "Date"
	Time        = "Time"
	Phone       = "Phone"
	Price       = "Price"
	Measurement = "Measurement"
	Address     = "Address"
	Quantity    = "Quantity"
	Percentage  = "Percentage"
)

var questionCategories = [...]Descriptor{
	{ID: Date, Label: "Date", Icon: "icon--fluent--calendar-date-24-regular", Style: "bg-blue"},
	{ID: Time, Label: "Time", Icon: "icon--feather--clock", Style: "bg-orange"},
	{ID: Phone, Label: "Phone", Icon: "icon--f7--phone", Style: "bg-green"},
	{ID: Price, Label: "Price", Icon: "icon--bx--dollar-circle", Style: "bg-red"},
	{ID: Measurement, Label: "Measurement", Icon: "icon--feather--sliders", Style: "bg-purple"},
	{ID: Address, Label: "Address", Icon: "icon--mynaui--map-pinned", Style: "bg-orange-dark"},
	{ID: Quantity, Label: "Quantity", Icon: "icon--feather--box", Style: "bg-teal"},
	{ID: Percentage, Label: "Percentage", Icon: "icon--feather--percent", Style: "bg-indigo"},
}

// QuestionCategories returns the category table in display order. The
// slice is a copy and may be modified by the caller.
func QuestionCategories() []Descriptor {
	out := make([]Descriptor, len(questionCategories))
	copy(out, questionCategories[:])
	return out
}

// Lookup returns the descriptor with the given id.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range questionCategories {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ErrEmptySelection is returned when a user selects no question category.
var ErrEmptySelection = errors.New("at least one question category must be selected")

// ValidateSelection checks the question types a user chose to practise:
// non-empty, every id known, no id twice.
func ValidateSelection(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := Lookup(id); !ok {
			return fmt.Errorf("unknown question category %q", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("question category %q selected twice", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Difficulty is the exercise difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns the levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty resolves a difficulty name, ignoring case.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", name)
	}
}
