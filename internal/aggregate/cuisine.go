// Package aggregate folds classified dish rows and incidence rows into
// per-region accumulators and finalizes them into summary records. All
// accumulation is single-pass and keyed on the canonical region name.
package aggregate

import (
	"sort"
	"strings"

	"github.com/rhicksrad/India/internal/classify"
	"github.com/rhicksrad/India/internal/region"
)

// Observation is one dish row reduced to the facts the aggregator counts.
type Observation struct {
	Name           string
	Course         string
	Diet           classify.Diet
	Tokens         []string
	RawIngredients string
	PrepMinutes    *float64
	CookMinutes    *float64
}

// categoryRules drive the per-dish ingredient mention counters. A dish
// counts once per category no matter how many of its tokens match.
var categoryRules = []struct {
	key   string
	words map[string]bool
}{
	{"lentil", wordSet("dal", "lentil", "lentils", "masoor", "moong", "toor", "arhar", "urad")},
	{"red_meat", wordSet("mutton", "lamb", "pork", "beef")},
	{"poultry", wordSet("chicken")},
	{"fish", wordSet("fish", "prawn", "prawns", "shrimp", "crab", "squid", "anchovy", "sardine", "sardines")},
	{"turmeric", wordSet("turmeric", "haldi")},
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func anyTokenWord(tokens []string, words map[string]bool) bool {
	for _, tok := range tokens {
		for _, w := range strings.Fields(tok) {
			if words[w] {
				return true
			}
		}
	}
	return false
}

type regionAcc struct {
	dishes     int
	veg        int
	sweet      int
	prepSum    float64
	prepN      int
	cookSum    float64
	cookN      int
	categories map[string]int
	freq       map[string]int
}

// CuisineAggregator accumulates dish observations per canonical region.
type CuisineAggregator struct {
	table   *region.Table
	regions map[string]*regionAcc
	added   int
	dropped int
}

func NewCuisineAggregator(tbl *region.Table) *CuisineAggregator {
	return &CuisineAggregator{table: tbl, regions: map[string]*regionAcc{}}
}

// Add folds one observation into its region's accumulator. Rows whose
// region is empty or the "-1" sentinel are dropped.
func (a *CuisineAggregator) Add(rawRegion string, obs Observation) {
	name := a.table.Normalize(rawRegion)
	if name == "" || name == "-1" {
		a.dropped++
		return
	}
	acc := a.regions[name]
	if acc == nil {
		acc = &regionAcc{categories: map[string]int{}, freq: map[string]int{}}
		a.regions[name] = acc
	}
	a.added++
	acc.dishes++
	if obs.Diet == classify.DietVegetarian && !classify.HasNonVegToken(obs.Tokens) {
		acc.veg++
	}
	if classify.IsSweet(obs.Name, obs.Course, obs.Tokens, obs.RawIngredients) {
		acc.sweet++
	}
	if obs.PrepMinutes != nil {
		acc.prepSum += *obs.PrepMinutes
		acc.prepN++
	}
	if obs.CookMinutes != nil {
		acc.cookSum += *obs.CookMinutes
		acc.cookN++
	}
	// Dedupe tokens before the category flags and the frequency map so a
	// dish listing an ingredient twice counts it once.
	seen := make(map[string]bool, len(obs.Tokens))
	uniq := make([]string, 0, len(obs.Tokens))
	for _, tok := range obs.Tokens {
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		uniq = append(uniq, tok)
	}
	for _, c := range categoryRules {
		if anyTokenWord(uniq, c.words) {
			acc.categories[c.key]++
		}
	}
	for _, tok := range uniq {
		acc.freq[tok]++
	}
}

// Added returns the number of observations folded in.
func (a *CuisineAggregator) Added() int { return a.added }

// Dropped returns the number of observations rejected for a missing region.
func (a *CuisineAggregator) Dropped() int { return a.dropped }

// IngredientCount is one entry of a region's ingredient frequency list.
type IngredientCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RegionSummary is the finalized per-region cuisine profile. Share and
// average fields are nil when no observation contributed to them.
type RegionSummary struct {
	Region         string            `json:"region"`
	DishCount      int               `json:"dish_count"`
	VegPct         *float64          `json:"veg_pct"`
	SweetPct       *float64          `json:"sweet_pct"`
	LentilPct      *float64          `json:"lentil_pct"`
	RedMeatPct     *float64          `json:"red_meat_pct"`
	PoultryPct     *float64          `json:"poultry_pct"`
	FishPct        *float64          `json:"fish_pct"`
	TurmericPct    *float64          `json:"turmeric_pct"`
	AvgPrepMinutes *float64          `json:"avg_prep_minutes"`
	AvgCookMinutes *float64          `json:"avg_cook_minutes"`
	Ingredients    []IngredientCount `json:"ingredients"`
}

// Finalize builds the summary records, sorted by region. Ingredient lists
// are ordered by count descending, name ascending on ties.
func (a *CuisineAggregator) Finalize() []RegionSummary {
	out := make([]RegionSummary, 0, len(a.regions))
	for name, acc := range a.regions {
		s := RegionSummary{Region: name, DishCount: acc.dishes}
		s.VegPct = share(acc.veg, acc.dishes)
		s.SweetPct = share(acc.sweet, acc.dishes)
		s.LentilPct = share(acc.categories["lentil"], acc.dishes)
		s.RedMeatPct = share(acc.categories["red_meat"], acc.dishes)
		s.PoultryPct = share(acc.categories["poultry"], acc.dishes)
		s.FishPct = share(acc.categories["fish"], acc.dishes)
		s.TurmericPct = share(acc.categories["turmeric"], acc.dishes)
		s.AvgPrepMinutes = average(acc.prepSum, acc.prepN)
		s.AvgCookMinutes = average(acc.cookSum, acc.cookN)
		tops := make([]IngredientCount, 0, len(acc.freq))
		for k, v := range acc.freq {
			tops = append(tops, IngredientCount{Name: k, Count: v})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Name < tops[j].Name
			}
			return tops[i].Count > tops[j].Count
		})
		s.Ingredients = tops
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

// share returns count/total, or nil when the denominator is zero.
func share(count, total int) *float64 {
	if total == 0 {
		return nil
	}
	v := float64(count) / float64(total)
	return &v
}

// average returns sum/n, or nil when no samples contributed.
func average(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	v := sum / float64(n)
	return &v
}
