// Package stats holds the numeric pieces behind the figures: empirical CDF,
// least-squares fit with a confidence band, Gaussian KDE and letter values.
package stats

import (
	"math"
	"sort"
)

// ECDF sorts values ascending and assigns rank/(N-1) to each, so the curve
// starts at 0 and ends at 1. A single value gets probability 1.
func ECDF(values []float64) (xs, ys []float64) {
	xs = Sorted(values)
	ys = make([]float64, len(xs))
	if len(xs) == 1 {
		ys[0] = 1
		return xs, ys
	}
	denom := float64(len(xs) - 1)
	for i := range xs {
		ys[i] = float64(i) / denom
	}
	return xs, ys
}

// Sorted returns an ascending copy of values.
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// Linspace returns n evenly spaced points over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Extent returns the min and max of the finite values. ok is false when
// there are none.
func Extent(values ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, series := range values {
		for _, v := range series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// LinearScale maps [d0, d1] onto [r0, r1]. A degenerate domain maps to the
// middle of the range.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

func (s LinearScale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}
