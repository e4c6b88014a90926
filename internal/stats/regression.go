package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LineFit is an ordinary least-squares fit y = Intercept + Slope*x together
// with what is needed for a confidence band of the mean response.
type LineFit struct {
	Intercept float64
	Slope     float64
	N         int

	xMean  float64
	sxx    float64
	resid  float64 // residual standard error
	tCrit  float64
	banded bool
}

// FitLine fits y on x. ok is false when fewer than two points are given or
// x has no spread. The band is only available with three or more points.
func FitLine(x, y []float64, level float64) (LineFit, bool) {
	n := len(x)
	if n < 2 || len(y) != n {
		return LineFit{}, false
	}

	xMean := stat.Mean(x, nil)
	var sxx float64
	for _, v := range x {
		sxx += (v - xMean) * (v - xMean)
	}
	if sxx == 0 {
		return LineFit{}, false
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	fit := LineFit{Intercept: alpha, Slope: beta, N: n, xMean: xMean, sxx: sxx}

	if n > 2 {
		var sse float64
		for i := range x {
			r := y[i] - fit.At(x[i])
			sse += r * r
		}
		fit.resid = math.Sqrt(sse / float64(n-2))
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		fit.tCrit = t.Quantile(0.5 + level/2)
		fit.banded = true
	}
	return fit, true
}

func (f LineFit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// Band returns the confidence interval of the mean response at x. Without a
// band both bounds equal the fitted value.
func (f LineFit) Band(x float64) (lo, hi float64) {
	y := f.At(x)
	if !f.banded {
		return y, y
	}
	se := f.resid * math.Sqrt(1/float64(f.N)+(x-f.xMean)*(x-f.xMean)/f.sxx)
	return y - f.tCrit*se, y + f.tCrit*se
}
