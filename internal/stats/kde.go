package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	kdeGridSize = 200
	kdeCut      = 3.0
)

// Density is a smoothed density curve sampled on a regular grid.
type Density struct {
	X         []float64
	Y         []float64
	Bandwidth float64
}

// KDE estimates a Gaussian kernel density. The bandwidth follows Scott's rule
// (std * n^-1/5) scaled by adjust, and the curve extends kdeCut bandwidths past
// the data on both sides. ok is false for fewer than two values or zero spread.
func KDE(values []float64, adjust float64) (Density, bool) {
	n := len(values)
	if n < 2 {
		return Density{}, false
	}
	std := stat.StdDev(values, nil)
	if std == 0 || math.IsNaN(std) {
		return Density{}, false
	}

	bw := std * math.Pow(float64(n), -1.0/5.0) * adjust
	lo, hi, _ := Extent(values)
	xs := Linspace(lo-kdeCut*bw, hi+kdeCut*bw, kdeGridSize)

	norm := 1 / (float64(n) * bw * math.Sqrt(2*math.Pi))
	ys := make([]float64, len(xs))
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		ys[i] = sum * norm
	}
	return Density{X: xs, Y: ys, Bandwidth: bw}, true
}
