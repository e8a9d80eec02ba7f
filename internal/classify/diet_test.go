package classify

import "testing"

func TestClassifyDiet(t *testing.T) {
	cases := []struct {
		in   string
		want Diet
	}{
		{"vegetarian", DietVegetarian},
		{"Vegetarian", DietVegetarian},
		{"veg", DietVegetarian},
		// Contains both "non" and "veg"; "non" rule must win.
		{"non-vegetarian", DietNonVegetarian},
		{"non vegetarian", DietNonVegetarian},
		{"NON-VEGETARIAN", DietNonVegetarian},
		{"eggetarian", DietNonVegetarian},
		{"High Protein Non Vegetarian", DietNonVegetarian},
		{"vegan", DietVegetarian},
		{"", DietUnknown},
		{"   ", DietUnknown},
		{"pescatarian", DietUnknown},
	}
	for _, c := range cases {
		if got := ClassifyDiet(c.in); got != c.want {
			t.Errorf("ClassifyDiet(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestHasNonVegToken(t *testing.T) {
	cases := []struct {
		tokens []string
		want   bool
	}{
		{[]string{"chicken breast", "onion"}, true},
		{[]string{"onion", "tomato", "egg"}, true},
		{[]string{"mutton keema"}, true},
		{[]string{"onion", "tomato", "paneer"}, false},
		// Word-level match: eggplant is not egg.
		{[]string{"eggplant", "rice"}, false},
		{nil, false},
	}
	for _, c := range cases {
		if got := HasNonVegToken(c.tokens); got != c.want {
			t.Errorf("HasNonVegToken(%v) = %v, want %v", c.tokens, got, c.want)
		}
	}
}
