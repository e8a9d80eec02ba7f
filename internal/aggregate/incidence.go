package aggregate

import (
	"sort"

	"github.com/rhicksrad/India/internal/region"
)

type incidenceAcc struct {
	sums    map[int]float64
	tainted map[int]bool
}

// IncidenceAggregator accumulates per-region yearly case counts. A missing
// count on any contributing row poisons that whole region-year: the total
// finalizes to nil, never to a partial sum.
type IncidenceAggregator struct {
	table   *region.Table
	regions map[string]*incidenceAcc
	years   map[int]bool
	added   int
	dropped int
}

func NewIncidenceAggregator(tbl *region.Table) *IncidenceAggregator {
	return &IncidenceAggregator{
		table:   tbl,
		regions: map[string]*incidenceAcc{},
		years:   map[int]bool{},
	}
}

// Add folds one region-year count in. A nil count marks the year tainted
// for the region; rows with an empty or sentinel region are dropped.
func (a *IncidenceAggregator) Add(rawRegion string, year int, count *float64) {
	name := a.table.Normalize(rawRegion)
	if name == "" || name == "-1" {
		a.dropped++
		return
	}
	a.years[year] = true
	acc := a.regions[name]
	if acc == nil {
		acc = &incidenceAcc{sums: map[int]float64{}, tainted: map[int]bool{}}
		a.regions[name] = acc
	}
	a.added++
	if count == nil {
		acc.tainted[year] = true
		return
	}
	acc.sums[year] += *count
}

// Added returns the number of rows folded in.
func (a *IncidenceAggregator) Added() int { return a.added }

// Dropped returns the number of rows rejected for a missing region.
func (a *IncidenceAggregator) Dropped() int { return a.dropped }

// Years returns every observed year in ascending order.
func (a *IncidenceAggregator) Years() []int {
	out := make([]int, 0, len(a.years))
	for y := range a.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// IncidenceSummary is the finalized per-region count series. Counts carries
// an entry for every observed year; nil means the year total is unknown for
// the region, which is distinct from zero.
type IncidenceSummary struct {
	Region string
	Counts map[int]*float64
}

// Finalize builds the summary records, sorted by region. Tainted years and
// years the region was never observed for finalize to nil.
func (a *IncidenceAggregator) Finalize() []IncidenceSummary {
	years := a.Years()
	out := make([]IncidenceSummary, 0, len(a.regions))
	for name, acc := range a.regions {
		counts := make(map[int]*float64, len(years))
		for _, y := range years {
			if acc.tainted[y] {
				counts[y] = nil
				continue
			}
			if v, ok := acc.sums[y]; ok {
				vv := v
				counts[y] = &vv
			} else {
				counts[y] = nil
			}
		}
		out = append(out, IncidenceSummary{Region: name, Counts: counts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}
