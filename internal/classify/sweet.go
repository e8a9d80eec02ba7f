package classify

import "strings"

// Course labels that mark a dish as a sweet outright.
var sweetCourseNeedles = []string{"dessert", "sweet"}

// Dish-name keywords for classic sweets.
var sweetDishKeywords = []string{
	"barfi", "basundi", "burfi", "chikki", "gajak", "gulab jamun", "halwa",
	"imarti", "jalebi", "kheer", "kulfi", "laddu", "ladoo", "malpua",
	"mithai", "modak", "mysore pak", "payasam", "payesh", "peda", "petha",
	"phirni", "rabri", "rasgulla", "rasmalai", "sandesh", "sheera",
	"shrikhand", "sweet",
}

// Ingredient keywords that signal a sweet preparation. The full list is
// matched against the raw ingredient text; the token-level pass below only
// sees the single-word entries, so a multi-word keyword split across a
// comma boundary does not fire there.
var sweetIngredientKeywords = []string{
	"condensed milk", "dates", "honey", "jaggery", "khoya", "mawa",
	"molasses", "sugar",
}

var sweetIngredientWords = func() []string {
	out := make([]string, 0, len(sweetIngredientKeywords))
	for _, k := range sweetIngredientKeywords {
		if !strings.Contains(k, " ") {
			out = append(out, k)
		}
	}
	return out
}()

// IsSweet decides whether a dish is a sweet. Evidence is checked in order:
// course label, dish name, raw ingredient text, then individual ingredient
// tokens.
func IsSweet(name, course string, tokens []string, rawIngredients string) bool {
	c := strings.ToLower(course)
	for _, needle := range sweetCourseNeedles {
		if strings.Contains(c, needle) {
			return true
		}
	}
	n := strings.ToLower(name)
	for _, k := range sweetDishKeywords {
		if strings.Contains(n, k) {
			return true
		}
	}
	ing := strings.ToLower(rawIngredients)
	for _, k := range sweetIngredientKeywords {
		if strings.Contains(ing, k) {
			return true
		}
	}
	for _, tok := range tokens {
		for _, k := range sweetIngredientWords {
			if strings.Contains(tok, k) {
				return true
			}
		}
	}
	return false
}
