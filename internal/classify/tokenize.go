package classify

import (
	"regexp"
	"strings"
)

var parenRe = regexp.MustCompile(`\([^)]*\)`)

// TokenizeIngredients splits a raw ingredient string into cleaned tokens:
// lowercase, split on commas, parenthesized asides removed, non-letters
// stripped, whitespace collapsed, empties dropped. Tokens keep their order
// and their duplicates; consumers needing set semantics dedupe themselves.
func TokenizeIngredients(raw string) []string {
	parts := strings.Split(strings.ToLower(raw), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = parenRe.ReplaceAllString(p, " ")
		p = lettersOnly(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
