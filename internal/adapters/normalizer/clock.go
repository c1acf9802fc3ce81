package normalizer

import (
	"strconv"
	"strings"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// ClockNormalizer reads 12- and 24-hour clock text ("3:15pm", "15.15",
// "3 pm") as minutes since midnight. Text it cannot read becomes an
// unparsed value worth 0 minutes.
type ClockNormalizer struct{}

// NewClockNormalizer creates a clock time normalizer.
func NewClockNormalizer() ports.Normalizer {
	return &ClockNormalizer{}
}

// Normalize implements ports.Normalizer.
func (n *ClockNormalizer) Normalize(text string) domain.Value {
	minutes, ok := parseClock(text)
	if !ok {
		return domain.UnparsedMinutes(text)
	}
	return domain.Minutes(minutes)
}

func parseClock(text string) (int, bool) {
	lower := strings.TrimFunc(lowerCasers.String(text), isSpace)
	clock, marker := splitMeridiem(lower)

	// "." and ":" are interchangeable hour separators; only the first counts.
	if i := strings.IndexAny(clock, ".:"); i >= 0 {
		clock = clock[:i] + ":" + clock[i+1:]
	}
	fields := strings.Split(clock, ":")

	hour, ok := parseClockField(fields[0])
	if !ok {
		return 0, false
	}
	minute := 0
	if len(fields) > 1 {
		if m, ok := parseClockField(fields[1]); ok {
			minute = m
		}
	}

	switch marker {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour >= hoursPerDay || minute >= minutesPerHour {
		return 0, false
	}
	return hour*minutesPerHour + minute, true
}

// splitMeridiem cuts s at every position (other than the start) where "am"
// or "pm" begins. The first piece is the clock text and the second, if any,
// the marker.
func splitMeridiem(s string) (clock, marker string) {
	first := meridiemIndex(s, 1)
	if first < 0 {
		return s, ""
	}
	next := meridiemIndex(s, first+1)
	if next < 0 {
		return s[:first], s[first:]
	}
	return s[:first], s[first:next]
}

func meridiemIndex(s string, from int) int {
	for i := from; i+1 < len(s); i++ {
		if (s[i] == 'a' || s[i] == 'p') && s[i+1] == 'm' {
			return i
		}
	}
	return -1
}

// parseClockField reads an unsigned decimal integer, ignoring surrounding
// whitespace.
func parseClockField(s string) (int, bool) {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
