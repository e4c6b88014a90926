package figures

import (
	"image/color"
	"time"

	"frontier-report/internal/stats"
	"frontier-report/internal/trials"
)

const confidenceLevel = 0.95

// RenderRegression plots distance against nodes visited for both algorithms
// with a least-squares trend line and its confidence band.
func (r *Renderer) RenderRegression(tb *trials.Table) (string, error) {
	started := time.Now()
	f := r.newFigure(10, 7)
	s := r.style

	distance := tb.Distances()
	series := []struct {
		label   string
		visited []float64
		point   color.NRGBA
		line    color.NRGBA
	}{
		{"Dijkstra (Uninformed)", tb.DijkstraVisited(), brightPalette[0], colorDijkstraLine},
		{"A* (Haversine Informed)", tb.AStarVisited(), brightPalette[1], colorAStarLine},
	}

	xlo, xhi, ok := stats.Extent(distance)
	if !ok {
		xlo, xhi = 0, 1
	}
	ylo, yhi, ok := stats.Extent(series[0].visited, series[1].visited)
	if !ok {
		ylo, yhi = 0, 1
	}

	fits := make([]stats.LineFit, len(series))
	fitted := make([]bool, len(series))
	for i, sr := range series {
		fits[i], fitted[i] = stats.FitLine(distance, sr.visited, confidenceLevel)
		if fitted[i] {
			for _, x := range []float64{xlo, xhi} {
				lo, hi := fits[i].Band(x)
				ylo, yhi = min(ylo, lo), max(yhi, hi)
			}
		}
	}

	xlim := paddedLimits(xlo, xhi, 0.05)
	ylim := paddedLimits(ylo, yhi, 0.05)
	a := f.newAxes(f.bounds(), axesOptions{
		title:  "Fig 1. State-Space Expansion Dynamics vs. Urban Scale",
		xlabel: "Geodesic Path Distance (Kilometers)",
		ylabel: "Nodes Popped from Priority Queue",
		xlim:   xlim,
		ylim:   ylim,
		xticks: niceTicks(xlim[0], xlim[1], 6),
		yticks: niceTicks(ylim[0], ylim[1], 6),
	})

	a.clip()
	radius := s.markerRadius(10)
	for _, sr := range series {
		a.scatter(distance, sr.visited, radius, withAlpha(sr.point, 0.1))
	}

	xs := stats.Linspace(xlo, xhi, 100)
	var entries []legendEntry
	for i, sr := range series {
		if !fitted[i] {
			entries = append(entries, legendEntry{label: sr.label, handle: handleMarker, color: sr.point})
			continue
		}
		lo := make([]float64, len(xs))
		hi := make([]float64, len(xs))
		line := make([]float64, len(xs))
		for j, x := range xs {
			lo[j], hi[j] = fits[i].Band(x)
			line[j] = fits[i].At(x)
		}
		a.fillBetween(xs, lo, hi, withAlpha(sr.line, 0.15))
		a.polyline(xs, line, s.px(2), sr.line)
		entries = append(entries, legendEntry{label: sr.label, handle: handleLine, color: sr.line, width: s.px(2)})
	}

	a.finish()
	a.legend(entries, legendOptions{loc: legendUpperLeft, shadow: true})

	return r.save(f, FileRegression, started)
}
