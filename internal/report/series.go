package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rhicksrad/India/internal/aggregate"
	"github.com/rhicksrad/India/internal/stats"
)

// cuisineMetrics are the precomputed cuisine-side fields offered to the
// correlation scan, in the order they rank on label ties.
var cuisineMetrics = []struct {
	key   string
	label string
	get   func(*aggregate.RegionSummary) *float64
}{
	{"veg_pct", "vegetarian share", func(s *aggregate.RegionSummary) *float64 { return s.VegPct }},
	{"sweet_pct", "sweet dish share", func(s *aggregate.RegionSummary) *float64 { return s.SweetPct }},
	{"lentil_pct", "lentil mention share", func(s *aggregate.RegionSummary) *float64 { return s.LentilPct }},
	{"red_meat_pct", "red meat mention share", func(s *aggregate.RegionSummary) *float64 { return s.RedMeatPct }},
	{"poultry_pct", "poultry mention share", func(s *aggregate.RegionSummary) *float64 { return s.PoultryPct }},
	{"fish_pct", "fish mention share", func(s *aggregate.RegionSummary) *float64 { return s.FishPct }},
	{"turmeric_pct", "turmeric mention share", func(s *aggregate.RegionSummary) *float64 { return s.TurmericPct }},
	{"avg_prep_minutes", "average prep minutes", func(s *aggregate.RegionSummary) *float64 { return s.AvgPrepMinutes }},
	{"avg_cook_minutes", "average cook minutes", func(s *aggregate.RegionSummary) *float64 { return s.AvgCookMinutes }},
}

// CandidateX builds the cuisine-side candidate series: every precomputed
// share and average field, plus one usage-share pseudo-metric per
// ingredient mentioned in at least minIngredientRegions regions.
func CandidateX(joined []JoinedRecord, minIngredientRegions int) []stats.Series {
	if minIngredientRegions < 1 {
		minIngredientRegions = 1
	}
	out := make([]stats.Series, 0, len(cuisineMetrics))
	for _, m := range cuisineMetrics {
		s := stats.Series{Key: m.key, Label: m.label, Values: map[string]*float64{}}
		for i := range joined {
			if joined[i].Cuisine == nil {
				s.Values[joined[i].Region] = nil
				continue
			}
			s.Values[joined[i].Region] = m.get(joined[i].Cuisine)
		}
		out = append(out, s)
	}

	// Ingredient usage share: the fraction of a region's dishes mentioning
	// the ingredient at least once.
	shares := map[string]map[string]*float64{}
	spread := map[string]int{}
	for i := range joined {
		cs := joined[i].Cuisine
		if cs == nil || cs.DishCount == 0 {
			continue
		}
		for _, ic := range cs.Ingredients {
			if shares[ic.Name] == nil {
				shares[ic.Name] = map[string]*float64{}
			}
			v := float64(ic.Count) / float64(cs.DishCount)
			shares[ic.Name][joined[i].Region] = &v
			spread[ic.Name]++
		}
	}
	names := make([]string, 0, len(shares))
	for name := range shares {
		if spread[name] >= minIngredientRegions {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		s := stats.Series{
			Key:    "ingredient:" + name,
			Label:  fmt.Sprintf("%q usage share", name),
			Values: map[string]*float64{},
		}
		for i := range joined {
			s.Values[joined[i].Region] = shares[name][joined[i].Region]
		}
		out = append(out, s)
	}
	return out
}

// YearsOf recovers the year columns from a joined record set, for
// callers working from the written output rather than a live build.
func YearsOf(joined []JoinedRecord) []int {
	seen := map[int]bool{}
	for i := range joined {
		if joined[i].Cancer == nil {
			continue
		}
		for key := range joined[i].Cancer.Counts {
			if y, err := strconv.Atoi(key); err == nil {
				seen[y] = true
			}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// CandidateY builds the incidence-side candidate series: one per-capita
// rate series per year plus the growth series.
func CandidateY(joined []JoinedRecord, years []int) []stats.Series {
	out := make([]stats.Series, 0, len(years)+1)
	for _, y := range years {
		key := strconv.Itoa(y)
		s := stats.Series{
			Key:    "rate_" + key,
			Label:  fmt.Sprintf("cases per 100k (%d)", y),
			Values: map[string]*float64{},
		}
		for i := range joined {
			if joined[i].Cancer == nil {
				s.Values[joined[i].Region] = nil
				continue
			}
			s.Values[joined[i].Region] = joined[i].Cancer.RatesPer100k[key]
		}
		out = append(out, s)
	}
	growth := stats.Series{Key: "cagr", Label: "incidence growth (CAGR)", Values: map[string]*float64{}}
	for i := range joined {
		if joined[i].Cancer == nil {
			growth.Values[joined[i].Region] = nil
			continue
		}
		growth.Values[joined[i].Region] = joined[i].Cancer.CAGR
	}
	out = append(out, growth)
	return out
}
