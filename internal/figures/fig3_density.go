package figures

import (
	"image/color"
	"time"

	logging "frontier-report/internal/infra/log"
	"frontier-report/internal/stats"
	"frontier-report/internal/trials"

	"go.uber.org/zap"
)

const densityBandwidthAdjust = 0.5

// RenderExpansionDensity overlays kernel density estimates of both expansion
// factors. Rows with undefined factors are left out.
func (r *Renderer) RenderExpansionDensity(tb *trials.Table) (string, error) {
	started := time.Now()
	f := r.newFigure(10, 7)
	s := r.style

	series := []struct {
		label  string
		values []float64
		color  color.NRGBA
	}{
		{"Dijkstra (Nodes/KM)", tb.ValidDijkstraFactors(), colorDijkstraLine},
		{"A* (Nodes/KM)", tb.ValidAStarFactors(), colorAStarLine},
	}

	var curves []stats.Density
	var colors []color.NRGBA
	var entries []legendEntry
	var allX, allY []float64
	for _, sr := range series {
		d, ok := stats.KDE(sr.values, densityBandwidthAdjust)
		if !ok {
			logging.LogWarn("Not enough spread for a density estimate",
				zap.String("series", sr.label),
				zap.Int("values", len(sr.values)))
			continue
		}
		curves = append(curves, d)
		colors = append(colors, sr.color)
		allX = append(allX, d.X...)
		allY = append(allY, d.Y...)
		entries = append(entries, legendEntry{label: sr.label, handle: handlePatch, color: withAlpha(sr.color, 0.5)})
	}

	xlim := [2]float64{0, 1}
	if lo, hi, ok := stats.Extent(allX); ok && hi > lo {
		xlim = [2]float64{lo, hi}
	}
	ylim := [2]float64{0, 1}
	if _, hi, ok := stats.Extent(allY); ok && hi > 0 {
		ylim = [2]float64{0, hi * 1.05}
	}

	a := f.newAxes(f.bounds(), axesOptions{
		title:  "Fig 3. Probability Density of Node Expansion Factor",
		xlabel: "Expansion Intensity (Nodes Explored per Kilometer)",
		ylabel: "Density of Trials",
		xlim:   xlim,
		ylim:   ylim,
		xticks: niceTicks(xlim[0], xlim[1], 6),
		yticks: niceTicks(ylim[0], ylim[1], 5),
	})

	a.clip()
	for i, d := range curves {
		zero := make([]float64, len(d.X))
		a.fillBetween(d.X, zero, d.Y, withAlpha(colors[i], 0.25))
		a.polyline(d.X, d.Y, s.px(1.5), colors[i])
	}

	a.finish()
	a.legend(entries, legendOptions{loc: legendUpperRight})
	return r.save(f, FileDensity, started)
}
