package stats

import (
	"math"
	"sort"
)

// Sample is one labelled (x, y) observation.
type Sample struct {
	Label string
	X, Y  float64
}

// Residual is one sample's vertical distance from the fitted line.
type Residual struct {
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Residual float64 `json:"residual"`
}

// Regression is a two-variable least squares fit.
type Regression struct {
	Slope     float64    `json:"slope"`
	Intercept float64    `json:"intercept"`
	R         float64    `json:"r"`
	N         int        `json:"n"`
	Residuals []Residual `json:"residuals"`
}

// Fit computes a least squares line through the finite samples using
// population moments. Nil when no finite sample remains. A flat x column
// fits slope 0 through the mean; r is 0 whenever either variance is 0.
// Residuals come back ordered by |residual| descending, label ascending on
// ties.
func Fit(samples []Sample) *Regression {
	valid := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if isFinite(s.X) && isFinite(s.Y) {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	n := float64(len(valid))
	var sumX, sumY float64
	for _, s := range valid {
		sumX += s.X
		sumY += s.Y
	}
	meanX := sumX / n
	meanY := sumY / n
	var varX, varY, cov float64
	for _, s := range valid {
		dx := s.X - meanX
		dy := s.Y - meanY
		varX += dx * dx
		varY += dy * dy
		cov += dx * dy
	}
	varX /= n
	varY /= n
	cov /= n

	slope := 0.0
	if varX != 0 {
		slope = cov / varX
	}
	intercept := meanY - slope*meanX
	r := 0.0
	if varX != 0 && varY != 0 {
		r = cov / math.Sqrt(varX*varY)
		if r > 1 {
			r = 1
		} else if r < -1 {
			r = -1
		}
	}

	reg := &Regression{Slope: slope, Intercept: intercept, R: r, N: len(valid)}
	reg.Residuals = make([]Residual, 0, len(valid))
	for _, s := range valid {
		res := s.Y - (slope*s.X + intercept)
		reg.Residuals = append(reg.Residuals, Residual{Label: s.Label, X: s.X, Y: s.Y, Residual: res})
	}
	sort.Slice(reg.Residuals, func(i, j int) bool {
		ai, aj := math.Abs(reg.Residuals[i].Residual), math.Abs(reg.Residuals[j].Residual)
		if ai == aj {
			return reg.Residuals[i].Label < reg.Residuals[j].Label
		}
		return ai > aj
	})
	return reg
}
