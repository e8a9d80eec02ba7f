package stats

import (
	"math"
	"sort"
)

// Series is one candidate metric: a value per region, nil where the metric
// is unknown for that region.
type Series struct {
	Key    string
	Label  string
	Values map[string]*float64
}

// Combo is one scored metric pairing from the exhaustive scan.
type Combo struct {
	XKey   string  `json:"x_key"`
	XLabel string  `json:"x_label"`
	YKey   string  `json:"y_key"`
	YLabel string  `json:"y_label"`
	R      float64 `json:"r"`
	N      int     `json:"n"`
}

// MinSamplesFloor is the smallest paired-sample count a combo may rank
// with. Asking for less scans with the floor anyway; correlations over a
// handful of regions are noise.
const MinSamplesFloor = 6

// Discover scans every X,Y series pairing, fits the regions both sides
// carry a value for, and ranks the pairings by |r| descending with ties
// broken by sample count then labels. Pairings with fewer paired
// observations than minSamples are skipped.
func Discover(xs, ys []Series, minSamples int) []Combo {
	if minSamples < MinSamplesFloor {
		minSamples = MinSamplesFloor
	}
	combos := make([]Combo, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			samples := PairSeries(x, y)
			if len(samples) < minSamples {
				continue
			}
			reg := Fit(samples)
			if reg == nil {
				continue
			}
			combos = append(combos, Combo{
				XKey:   x.Key,
				XLabel: x.Label,
				YKey:   y.Key,
				YLabel: y.Label,
				R:      reg.R,
				N:      reg.N,
			})
		}
	}
	sort.Slice(combos, func(i, j int) bool {
		ai, aj := math.Abs(combos[i].R), math.Abs(combos[j].R)
		if ai == aj {
			if combos[i].N == combos[j].N {
				if combos[i].XLabel == combos[j].XLabel {
					return combos[i].YLabel < combos[j].YLabel
				}
				return combos[i].XLabel < combos[j].XLabel
			}
			return combos[i].N > combos[j].N
		}
		return ai > aj
	})
	return combos
}

// PairSeries collects samples for the regions where both series carry a
// value, in region order.
func PairSeries(x, y Series) []Sample {
	keys := make([]string, 0, len(x.Values))
	for k := range x.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Sample, 0, len(keys))
	for _, k := range keys {
		xv := x.Values[k]
		if xv == nil {
			continue
		}
		yv, ok := y.Values[k]
		if !ok || yv == nil {
			continue
		}
		out = append(out, Sample{Label: k, X: *xv, Y: *yv})
	}
	return out
}
