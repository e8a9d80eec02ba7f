// Package report assembles the output collections: it enriches the
// finalized aggregates with per-capita rates and growth, joins the
// incidence and cuisine sides into one record set, and writes the JSON
// outputs, the run manifest, and the optional review workbook.
package report

import (
	"strconv"

	"github.com/rhicksrad/India/internal/aggregate"
	"github.com/rhicksrad/India/internal/region"
	"github.com/rhicksrad/India/internal/stats"
)

// IncidenceRecord is the output form of one region's incidence series.
// Counts and rates are keyed by year; nil values mean unknown, never zero.
type IncidenceRecord struct {
	Region       string              `json:"region"`
	Counts       map[string]*float64 `json:"counts"`
	RatesPer100k map[string]*float64 `json:"rates_per_100k"`
	CAGR         *float64            `json:"cagr"`
}

// JoinedRecord pairs one region's incidence record with its cuisine
// profile. A side the sources never reported stays nil rather than
// dropping the region.
type JoinedRecord struct {
	Region  string                   `json:"region"`
	Cancer  *IncidenceRecord         `json:"cancer"`
	Cuisine *aggregate.RegionSummary `json:"cuisine"`
}

// Outputs carries the three output collections of a build run.
type Outputs struct {
	Years     []int
	Incidence []IncidenceRecord
	Cuisine   []aggregate.RegionSummary
	Joined    []JoinedRecord
}

// Build enriches the finalized aggregates and joins them. Every region
// reaching the output must have a population figure; any without one fail
// the whole build by name.
func Build(inc []aggregate.IncidenceSummary, cui []aggregate.RegionSummary, years []int, tbl *region.Table) (*Outputs, error) {
	regions := make([]string, 0, len(inc)+len(cui))
	for _, s := range inc {
		regions = append(regions, s.Region)
	}
	for _, s := range cui {
		regions = append(regions, s.Region)
	}
	if err := tbl.RequirePopulations(regions); err != nil {
		return nil, err
	}

	out := &Outputs{Years: years, Cuisine: cui}
	out.Incidence = make([]IncidenceRecord, 0, len(inc))
	for _, s := range inc {
		pop, _ := tbl.Population(s.Region)
		rec := IncidenceRecord{
			Region:       s.Region,
			Counts:       make(map[string]*float64, len(years)),
			RatesPer100k: make(map[string]*float64, len(years)),
		}
		for _, y := range years {
			key := strconv.Itoa(y)
			rec.Counts[key] = s.Counts[y]
			rec.RatesPer100k[key] = stats.PerCapitaRate(s.Counts[y], pop)
		}
		if len(years) >= 2 {
			first, last := years[0], years[len(years)-1]
			rec.CAGR = stats.CAGR(s.Counts[first], s.Counts[last], float64(last-first))
		}
		out.Incidence = append(out.Incidence, rec)
	}
	out.Joined = Join(out.Incidence, cui)
	return out, nil
}
