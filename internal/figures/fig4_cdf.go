package figures

import (
	"time"

	"frontier-report/internal/stats"
	"frontier-report/internal/trials"
)

// RenderEfficiencyCDF plots the empirical CDF of efficiency gain with the
// area under the curve shaded and a reference line at probability 0.5.
func (r *Renderer) RenderEfficiencyCDF(tb *trials.Table) (string, error) {
	started := time.Now()
	f := r.newFigure(10, 7)
	s := r.style

	xs, ys := stats.ECDF(tb.EfficiencyGains())

	xlim := [2]float64{0, 100}
	if lo, hi, ok := stats.Extent(xs); ok {
		xlim = paddedLimits(lo, hi, 0.05)
	}
	ylim := paddedLimits(0, 1, 0.05)

	a := f.newAxes(f.bounds(), axesOptions{
		title:  "Fig 4. Empirical Cumulative Distribution of Algorithmic Savings",
		xlabel: "Search Space Reduction (%)",
		ylabel: "Cumulative Probability",
		xlim:   xlim,
		ylim:   ylim,
		xticks: niceTicks(xlim[0], xlim[1], 6),
		yticks: niceTicks(ylim[0], ylim[1], 6),
	})

	a.clip()
	zero := make([]float64, len(xs))
	a.fillBetween(xs, zero, ys, withAlpha(colorCDF, 0.1))
	a.polyline(xs, ys, s.px(4), colorCDF)
	if len(xs) == 1 {
		f.drawMarker(markerCircle, a.px(xs[0]), a.py(ys[0]), s.px(3), colorCDF, nil, 0)
	}

	dotted := []float64{s.px(1), s.px(2.5)}
	a.hline(0.5, s.px(1.5), colorMedianLine, dotted...)

	a.finish()
	a.legend([]legendEntry{
		{label: "A* Search Advantage", handle: handleLine, color: colorCDF, width: s.px(4)},
		{label: "Median Gain", handle: handleLine, color: colorMedianLine, width: s.px(1.5), dash: dotted},
	}, legendOptions{loc: legendUpperLeft})
	return r.save(f, FileEfficiencyCDF, started)
}
