package stats

import "math"

// LetterBox is one nested box of a letter-value plot, Depth 1 being the
// interquartile box.
type LetterBox struct {
	Depth  int
	Lo, Hi float64
}

type LetterValues struct {
	Median   float64
	Boxes    []LetterBox
	Outliers []float64
	N        int
}

// ComputeLetterValues picks the number of boxes with Tukey's rule
// k = floor(log2 n) - 3 (at least 1). Box i spans the 0.5^(i+1) and
// 1-0.5^(i+1) quantiles; values outside the outermost box are outliers.
func ComputeLetterValues(values []float64) (LetterValues, bool) {
	n := len(values)
	if n == 0 {
		return LetterValues{}, false
	}
	sorted := Sorted(values)

	k := int(math.Floor(math.Log2(float64(n)))) - 3
	if k < 1 {
		k = 1
	}

	quantile := func(p float64) float64 { return Quantile(sorted, p) }

	lv := LetterValues{Median: quantile(0.5), N: n}
	for depth := 1; depth <= k; depth++ {
		p := math.Pow(0.5, float64(depth+1))
		lv.Boxes = append(lv.Boxes, LetterBox{Depth: depth, Lo: quantile(p), Hi: quantile(1 - p)})
	}

	outer := lv.Boxes[len(lv.Boxes)-1]
	for _, v := range sorted {
		if v < outer.Lo || v > outer.Hi {
			lv.Outliers = append(lv.Outliers, v)
		}
	}
	return lv, true
}

// Quantile interpolates linearly between the closest ranks of sorted, which
// must be ascending: position p*(n-1), as numpy's default method.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo < 0 {
		return sorted[0]
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
