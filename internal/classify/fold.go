// Package classify turns the free-text columns of the source tables into
// the discrete facts the aggregator counts: diet labels, sweet dishes,
// ingredient tokens, and regions inferred from cuisine labels. Every
// classifier is an ordered keyword rule list; order is significant and
// first match wins.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain strips combining marks so accented spellings compare equal to
// their plain forms ("Chettinād" and "Chettinad" normalize identically).
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return s
	}
	return out
}

// lettersOnly lowercases s, folds accents, replaces every non-letter with a
// space, collapses whitespace runs and trims.
func lettersOnly(s string) string {
	s = foldAccents(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
