package classify

import "strings"

// Diet is the vegetarian classification of a dish.
type Diet int

const (
	DietUnknown Diet = iota
	DietVegetarian
	DietNonVegetarian
)

func (d Diet) String() string {
	switch d {
	case DietVegetarian:
		return "vegetarian"
	case DietNonVegetarian:
		return "non-vegetarian"
	default:
		return "unknown"
	}
}

// dietRules are checked in order; the first needle contained in the label
// decides. "non" must stay ahead of "veg" because labels like
// "non-vegetarian" contain both.
var dietRules = []struct {
	needle string
	diet   Diet
}{
	{"non", DietNonVegetarian},
	{"egg", DietNonVegetarian},
	{"veg", DietVegetarian},
}

// ClassifyDiet maps a free-text diet label to a Diet. Blank labels are
// unknown.
func ClassifyDiet(raw string) Diet {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DietUnknown
	}
	for _, r := range dietRules {
		if strings.Contains(s, r.needle) {
			return r.diet
		}
	}
	return DietUnknown
}

// nonVegWords are ingredient words that contradict a vegetarian label.
// Matched per word, not per substring, so "eggplant" never fires.
var nonVegWords = map[string]bool{
	"anchovy":  true,
	"bacon":    true,
	"beef":     true,
	"chicken":  true,
	"crab":     true,
	"egg":      true,
	"eggs":     true,
	"fish":     true,
	"ham":      true,
	"keema":    true,
	"lamb":     true,
	"meat":     true,
	"mutton":   true,
	"pork":     true,
	"prawn":    true,
	"prawns":   true,
	"sardine":  true,
	"sardines": true,
	"shrimp":   true,
	"squid":    true,
	"trotters": true,
}

// HasNonVegToken reports whether any ingredient token contains a word from
// the non-veg evidence list.
func HasNonVegToken(tokens []string) bool {
	for _, tok := range tokens {
		for _, w := range strings.Fields(tok) {
			if nonVegWords[w] {
				return true
			}
		}
	}
	return false
}
