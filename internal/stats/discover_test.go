package stats

import (
	"math"
	"testing"
)

func seriesOf(key string, vals map[string]*float64) Series {
	return Series{Key: key, Label: key, Values: vals}
}

func TestDiscoverRanksByAbsR(t *testing.T) {
	regions := []string{"r1", "r2", "r3", "r4", "r5", "r6"}
	perfect := map[string]*float64{}
	noisy := map[string]*float64{}
	target := map[string]*float64{}
	noisyVals := []float64{2, 1, 4, 3, 6, 5}
	for i, r := range regions {
		perfect[r] = fp(float64(i + 1))
		noisy[r] = fp(noisyVals[i])
		target[r] = fp(float64(2 * (i + 1)))
	}

	combos := Discover(
		[]Series{seriesOf("noisy", noisy), seriesOf("perfect", perfect)},
		[]Series{seriesOf("target", target)},
		6,
	)
	if len(combos) != 2 {
		t.Fatalf("got %d combos, want 2", len(combos))
	}
	if combos[0].XKey != "perfect" || !almostEqual(combos[0].R, 1, 1e-9) {
		t.Fatalf("top combo = %s r=%v, want perfect r=1", combos[0].XKey, combos[0].R)
	}
	if combos[1].XKey != "noisy" || math.Abs(combos[1].R) >= 1 {
		t.Fatalf("second combo = %s r=%v, want noisy with |r| < 1", combos[1].XKey, combos[1].R)
	}
	if combos[0].N != 6 || combos[1].N != 6 {
		t.Fatalf("sample counts = %d/%d, want 6/6", combos[0].N, combos[1].N)
	}
}

func TestDiscoverSkipsSparsePairs(t *testing.T) {
	x := map[string]*float64{}
	yFull := map[string]*float64{}
	ySparse := map[string]*float64{}
	for i, r := range []string{"r1", "r2", "r3", "r4", "r5", "r6"} {
		x[r] = fp(float64(i + 1))
		yFull[r] = fp(float64(i + 1))
		if i < 5 {
			ySparse[r] = fp(float64(i + 1))
		} else {
			ySparse[r] = nil
		}
	}
	combos := Discover(
		[]Series{seriesOf("x", x)},
		[]Series{seriesOf("full", yFull), seriesOf("sparse", ySparse)},
		6,
	)
	if len(combos) != 1 || combos[0].YKey != "full" {
		t.Fatalf("combos = %v, want only the full pairing", combos)
	}
}

func TestDiscoverEnforcesSampleFloor(t *testing.T) {
	x := map[string]*float64{}
	y := map[string]*float64{}
	for i, r := range []string{"r1", "r2", "r3", "r4", "r5"} {
		x[r] = fp(float64(i + 1))
		y[r] = fp(float64(i + 1))
	}
	// Five paired regions; asking for a floor of 1 still scans with the
	// fixed floor of 6, so nothing ranks.
	combos := Discover([]Series{seriesOf("x", x)}, []Series{seriesOf("y", y)}, 1)
	if len(combos) != 0 {
		t.Fatalf("got %d combos, want 0 under the sample floor", len(combos))
	}
}

func TestDiscoverDeterministicTieOrder(t *testing.T) {
	vals := map[string]*float64{}
	for i, r := range []string{"r1", "r2", "r3", "r4", "r5", "r6"} {
		vals[r] = fp(float64(i + 1))
	}
	// Two identical X series against one Y: identical |r| and n, so the
	// labels decide the order.
	combos := Discover(
		[]Series{seriesOf("b_metric", vals), seriesOf("a_metric", vals)},
		[]Series{seriesOf("y", vals)},
		6,
	)
	if len(combos) != 2 {
		t.Fatalf("got %d combos, want 2", len(combos))
	}
	if combos[0].XKey != "a_metric" || combos[1].XKey != "b_metric" {
		t.Fatalf("tie order = %s, %s, want a_metric, b_metric", combos[0].XKey, combos[1].XKey)
	}
}
