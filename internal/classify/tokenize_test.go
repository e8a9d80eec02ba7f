package classify

import (
	"reflect"
	"testing"
)

func TestTokenizeIngredients(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{
			"Rice flour, Jaggery, Coconut",
			[]string{"rice flour", "jaggery", "coconut"},
		},
		{
			"Arhar (split toor) dal, ghee",
			[]string{"arhar dal", "ghee"},
		},
		{
			"  Milk , ,  Sugar  ",
			[]string{"milk", "sugar"},
		},
		{
			"2 cups basmati rice, 1/2 tsp turmeric",
			[]string{"cups basmati rice", "tsp turmeric"},
		},
		// Duplicates survive; dedup is the consumer's job.
		{
			"salt, salt, salt",
			[]string{"salt", "salt", "salt"},
		},
		// Accented spellings fold to plain letters.
		{
			"Chettinād masala, curry leaves",
			[]string{"chettinad masala", "curry leaves"},
		},
		{"", nil},
		{" , , ", nil},
	}
	for _, c := range cases {
		got := TokenizeIngredients(c.in)
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("TokenizeIngredients(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTokenizeSplitsInsideParens(t *testing.T) {
	// The comma split runs before the paren strip, so an aside containing a
	// comma breaks into two tokens and the orphaned parens are dropped by
	// the letter filter.
	got := TokenizeIngredients("salt (to taste, optional), pepper")
	want := []string{"salt to taste", "optional", "pepper"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeIngredients = %v, want %v", got, want)
	}
}
