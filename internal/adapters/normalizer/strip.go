package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_answer_normalization/internal/pool"
)

var (
	builders    = pool.NewStringBuilderPool()
	upperCasers = pool.NewUpperPool()
	lowerCasers = pool.NewLowerPool()
)

// isSpace matches the whitespace class answers are cleaned of, including the
// byte order mark that pasted text sometimes carries. NEL (U+0085) is not
// whitespace here.
func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// charSet is a set of runes to remove from answer text.
type charSet struct {
	// Pre-computed decision table for ASCII characters (0-127)
	ascii [128]bool
	// Non-ASCII members such as currency glyphs
	other map[rune]struct{}
	space bool
}

func newCharSet(chars string, withSpace bool) *charSet {
	cs := &charSet{other: make(map[rune]struct{}), space: withSpace}
	for _, r := range chars {
		if r < 128 {
			cs.ascii[r] = true
		} else {
			cs.other[r] = struct{}{}
		}
	}
	if withSpace {
		for i := 0; i < 128; i++ {
			if isSpace(rune(i)) {
				cs.ascii[i] = true
			}
		}
	}
	return cs
}

func (cs *charSet) contains(r rune) bool {
	if r >= 0 && r < 128 {
		return cs.ascii[r]
	}
	if cs.space && isSpace(r) {
		return true
	}
	_, ok := cs.other[r]
	return ok
}

// strip removes every member of the set, keeping the order of the rest.
func (cs *charSet) strip(s string) string {
	i := strings.IndexFunc(s, cs.contains)
	if i < 0 {
		return s
	}

	sb := builders.Get()
	defer builders.Put(sb)
	sb.Grow(len(s))
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if !cs.contains(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
