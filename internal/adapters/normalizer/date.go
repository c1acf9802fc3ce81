package normalizer

import (
	"regexp"

	"github.com/baditaflorin/go_answer_normalization/internal/core/domain"
	"github.com/baditaflorin/go_answer_normalization/internal/ports"
)

var ordinalSuffix = regexp.MustCompile(`(\d+)(ST|ND|RD|TH)`)

// DateNormalizer produces a comparison token for date text. It does not
// resolve calendar dates: "21st March, 2024" and "21 MARCH 2024" meet at
// "21MARCH2024", but "21/03/2024" stays a different token.
type DateNormalizer struct {
	noise *charSet
}

// NewDateNormalizer creates a date token normalizer.
func NewDateNormalizer() ports.Normalizer {
	return &DateNormalizer{noise: newCharSet(",.", true)}
}

// Normalize implements ports.Normalizer. Each pass strips the first ordinal
// suffix only; passes repeat until the token is stable.
func (n *DateNormalizer) Normalize(text string) domain.Value {
	token := n.pass(text)
	for i := 0; i <= len(token); i++ {
		next := n.pass(token)
		if next == token {
			break
		}
		token = next
	}
	return domain.Text(token)
}

func (n *DateNormalizer) pass(s string) string {
	s = upperCasers.String(s)
	if loc := ordinalSuffix.FindStringSubmatchIndex(s); loc != nil {
		s = s[:loc[3]] + s[loc[1]:]
	}
	return n.noise.strip(s)
}
