package aggregate

import (
	"testing"

	"github.com/rhicksrad/India/internal/region"
)

func fp(v float64) *float64 { return &v }

func TestIncidenceMissingRowPoisonsYear(t *testing.T) {
	agg := NewIncidenceAggregator(region.Default())
	agg.Add("Kerala", 2016, fp(5))
	agg.Add("Kerala", 2016, nil)
	agg.Add("Kerala", 2016, fp(3))
	agg.Add("Kerala", 2017, fp(4))
	sums := agg.Finalize()
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1", len(sums))
	}
	counts := sums[0].Counts
	if counts[2016] != nil {
		t.Fatalf("2016 total = %v, want nil (poisoned)", *counts[2016])
	}
	if counts[2017] == nil || *counts[2017] != 4 {
		t.Fatalf("2017 total = %v, want 4", counts[2017])
	}
}

func TestIncidenceAbsentYearIsNilNotZero(t *testing.T) {
	agg := NewIncidenceAggregator(region.Default())
	agg.Add("Goa", 2016, fp(2))
	agg.Add("Kerala", 2017, fp(7))
	sums := agg.Finalize()
	byRegion := map[string]IncidenceSummary{}
	for _, s := range sums {
		byRegion[s.Region] = s
	}
	goa := byRegion["Goa"]
	if goa.Counts[2016] == nil || *goa.Counts[2016] != 2 {
		t.Fatalf("Goa 2016 = %v, want 2", goa.Counts[2016])
	}
	if v, ok := goa.Counts[2017]; !ok || v != nil {
		t.Fatalf("Goa 2017 = %v (present=%v), want explicit nil", v, ok)
	}
}

func TestIncidenceAliasAndDropRules(t *testing.T) {
	agg := NewIncidenceAggregator(region.Default())
	agg.Add("Orissa", 2016, fp(1))
	agg.Add("Odisha", 2016, fp(1))
	agg.Add("-1", 2016, fp(1))
	agg.Add("", 2016, fp(1))
	if agg.Dropped() != 2 {
		t.Fatalf("dropped = %d, want 2", agg.Dropped())
	}
	sums := agg.Finalize()
	if len(sums) != 1 || sums[0].Region != "Odisha" {
		t.Fatalf("summaries = %v, want just Odisha", sums)
	}
	if *sums[0].Counts[2016] != 2 {
		t.Fatalf("Odisha 2016 = %v, want 2", *sums[0].Counts[2016])
	}
}

func TestIncidenceYearsSorted(t *testing.T) {
	agg := NewIncidenceAggregator(region.Default())
	agg.Add("Goa", 2018, fp(1))
	agg.Add("Goa", 2016, fp(1))
	agg.Add("Goa", 2017, fp(1))
	years := agg.Years()
	if len(years) != 3 || years[0] != 2016 || years[1] != 2017 || years[2] != 2018 {
		t.Fatalf("years = %v, want [2016 2017 2018]", years)
	}
}
