package figures

import (
	"time"

	"frontier-report/internal/stats"
	"frontier-report/internal/trials"
)

// RenderEfficiencyBoxen draws a letter-value plot of efficiency gain per
// distance category. Categories keep their slot even when empty so the x
// axis always reads in increasing-distance order.
func (r *Renderer) RenderEfficiencyBoxen(tb *trials.Table) (string, error) {
	started := time.Now()
	f := r.newFigure(12, 7)
	s := r.style

	groups := tb.GainsByCategory()
	ylo, yhi, ok := stats.Extent(groups...)
	if !ok {
		ylo, yhi = 0, 100
	}

	xticks := make([]tick, len(trials.Categories))
	for i, c := range trials.Categories {
		xticks[i] = tick{v: float64(i), label: c.String()}
	}
	ylim := paddedLimits(ylo, yhi, 0.05)
	a := f.newAxes(f.bounds(), axesOptions{
		title:         "Fig 2. Search Efficiency Distribution by Geographic Sector",
		xlabel:        "Scale Category",
		ylabel:        "Efficiency Gain (%)",
		xlim:          [2]float64{-0.5, float64(len(trials.Categories)) - 0.5},
		ylim:          ylim,
		xticks:        xticks,
		yticks:        niceTicks(ylim[0], ylim[1], 6),
		xtickRotation: 15,
	})

	a.clip()
	dc := f.dc
	edge := hex("#3d3d3d")
	for i, values := range groups {
		lv, ok := stats.ComputeLetterValues(values)
		if !ok {
			continue
		}
		base := viridis5[i%len(viridis5)]
		k := len(lv.Boxes)
		center := float64(i)

		// Outermost box first so the narrower-quantile boxes sit on top.
		for j := k - 1; j >= 0; j-- {
			box := lv.Boxes[j]
			half := 0.4 * float64(k-j) / float64(k)
			x0, x1 := a.px(center-half), a.px(center+half)
			y0, y1 := a.py(box.Hi), a.py(box.Lo)
			if y1-y0 < s.px(0.8) {
				y0, y1 = (y0+y1)/2-s.px(0.4), (y0+y1)/2+s.px(0.4)
			}
			dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
			dc.SetColor(lighten(base, 0.75*float64(j)/float64(k)))
			dc.FillPreserve()
			dc.SetColor(edge)
			dc.SetLineWidth(s.px(0.6))
			dc.Stroke()
		}

		inner := 0.4
		dc.SetColor(edge)
		dc.SetLineWidth(s.px(1.5))
		dc.DrawLine(a.px(center-inner), a.py(lv.Median), a.px(center+inner), a.py(lv.Median))
		dc.Stroke()

		for _, o := range lv.Outliers {
			f.drawMarker(markerDiamond, a.px(center), a.py(o), s.markerRadius(6), base, nil, 0)
		}
	}

	a.finish()
	return r.save(f, FileEfficiencyBox, started)
}
