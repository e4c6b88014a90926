package figures

import (
	"strconv"
	"time"

	"frontier-report/internal/stats"
	"frontier-report/internal/trials"
)

const (
	minSizeArea = 10
	maxSizeArea = 200
)

// RenderTimeComplexity scatters A* execution time against distance, coloured
// by distance category and sized by the number of nodes A* visited.
func (r *Renderer) RenderTimeComplexity(tb *trials.Table) (string, error) {
	started := time.Now()
	f := r.newFigure(10, 7)
	s := r.style

	var xs, ys, visited []float64
	var cats []trials.Category
	for _, t := range tb.Trials {
		if t.Category == trials.CategoryNone {
			continue
		}
		xs = append(xs, t.DistanceKM)
		ys = append(ys, t.TimeAStarMS)
		visited = append(visited, t.AStarVisited)
		cats = append(cats, t.Category)
	}

	vlo, vhi, ok := stats.Extent(visited)
	if !ok {
		vlo, vhi = 0, 1
	}
	size := stats.LinearScale{D0: vlo, D1: vhi, R0: minSizeArea, R1: maxSizeArea}

	entries := make([]legendEntry, 0, len(trials.Categories)+6)
	for _, c := range trials.Categories {
		entries = append(entries, legendEntry{label: c.String(), handle: handleMarker, color: magma5[int(c)]})
	}
	entries = append(entries, legendEntry{label: trials.ColAStarVisited, handle: handleHeader})
	for _, v := range sizeSamples(vlo, vhi) {
		entries = append(entries, legendEntry{
			label:  strconv.FormatFloat(v, 'f', -1, 64),
			handle: handleMarker,
			color:  colorMedianLine,
			radius: s.markerRadius(size.Map(v)),
		})
	}
	legendOpts := legendOptions{loc: legendOutsideRight, title: "Scale Categories"}

	outer := f.bounds()
	outer.x1 -= f.legendWidth(entries, legendOpts) + s.px(12)

	xlim := [2]float64{0, 1}
	if lo, hi, ok := stats.Extent(xs); ok {
		xlim = paddedLimits(lo, hi, 0.05)
	}
	ylim := [2]float64{0, 1}
	if lo, hi, ok := stats.Extent(ys); ok {
		ylim = paddedLimits(lo, hi, 0.05)
	}

	a := f.newAxes(outer, axesOptions{
		title:  "Fig 6. A* Performance Profile: Execution Time vs. Euclidean Magnitude",
		xlabel: "Traversal Distance (KM)",
		ylabel: "CPU Execution Time (Milliseconds)",
		xlim:   xlim,
		ylim:   ylim,
		xticks: niceTicks(xlim[0], xlim[1], 6),
		yticks: niceTicks(ylim[0], ylim[1], 6),
	})

	a.clip()
	for i := range xs {
		c := withAlpha(magma5[int(cats[i])], 0.6)
		f.drawMarker(markerCircle, a.px(xs[i]), a.py(ys[i]), s.markerRadius(size.Map(visited[i])), c, withAlpha(colorWhite, 0.6), s.px(0.5))
	}

	a.finish()
	a.legend(entries, legendOpts)
	return r.save(f, FileTimeComplexity, started)
}

// sizeSamples picks a handful of round values inside [lo, hi] for the marker
// size key.
func sizeSamples(lo, hi float64) []float64 {
	var out []float64
	for _, t := range niceTicks(lo, hi, 4) {
		if t.v >= lo && t.v <= hi {
			out = append(out, t.v)
		}
	}
	if len(out) == 0 {
		out = append(out, lo)
	}
	return out
}
