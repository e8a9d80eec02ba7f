package report

import (
	"sort"

	"github.com/rhicksrad/India/internal/aggregate"
)

// Join pairs incidence records and cuisine summaries by region. The union
// of both key sets survives; a region only one side knows keeps the other
// side nil. Records come back sorted by region ascending.
func Join(inc []IncidenceRecord, cui []aggregate.RegionSummary) []JoinedRecord {
	byRegion := map[string]*JoinedRecord{}
	ensure := func(name string) *JoinedRecord {
		jr := byRegion[name]
		if jr == nil {
			jr = &JoinedRecord{Region: name}
			byRegion[name] = jr
		}
		return jr
	}
	for i := range inc {
		ensure(inc[i].Region).Cancer = &inc[i]
	}
	for i := range cui {
		ensure(cui[i].Region).Cuisine = &cui[i]
	}
	names := make([]string, 0, len(byRegion))
	for name := range byRegion {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]JoinedRecord, 0, len(names))
	for _, name := range names {
		out = append(out, *byRegion[name])
	}
	return out
}
