// Package stats is the pure numeric layer: growth and per-capita rates for
// the incidence series, two-variable least squares fits, and the exhaustive
// correlation scan over candidate metric pairs. Nothing here touches I/O.
package stats

import "math"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CAGR returns the compound annual growth rate between v0 and v1 over the
// given span in years. Nil when either value is missing or non-finite, the
// base value is not positive, the span is not positive, or the formula
// itself degenerates.
func CAGR(v0, v1 *float64, years float64) *float64 {
	if v0 == nil || v1 == nil || years <= 0 {
		return nil
	}
	a, b := *v0, *v1
	if !isFinite(a) || !isFinite(b) || a <= 0 {
		return nil
	}
	r := math.Pow(b/a, 1/years) - 1
	if !isFinite(r) {
		return nil
	}
	return &r
}

// PerCapitaRate converts a case count into cases per 100,000 population.
// Nil when the count is missing or the population is unusable.
func PerCapitaRate(count *float64, population int64) *float64 {
	if count == nil || population <= 0 || !isFinite(*count) {
		return nil
	}
	v := *count / float64(population) * 100000
	return &v
}
