package figures

import (
	"time"

	"frontier-report/internal/frontier"
	"frontier-report/internal/stats"
)

// RenderGeospatial draws the synthetic Gomti river scenario: the radial
// Dijkstra frontier on the left and the bridge-bound A* corridor on the
// right, sharing the y axis, the river and the endpoint markers.
func (r *Renderer) RenderGeospatial(sc *frontier.Scenario) (string, error) {
	started := time.Now()
	f := r.newFigure(18, 8)
	s := r.style

	area := f.suptitle("Fig 5. The Gomti Riverine Bottleneck Paradox: Informed vs. Uninformed Frontiers", s.SuptitleSize+4)

	rx, ry := split(sc.Radial)
	cx, cy := split(sc.Corridor)
	bx, by := split(sc.Barrier)
	lx := []float64{sc.Source.X, sc.Goal.X, sc.Bridge.X}
	ly := []float64{sc.Source.Y, sc.Goal.Y, sc.Bridge.Y}

	ylo, yhi, _ := stats.Extent(ry, cy, by, ly)
	ylim := paddedLimits(ylo, yhi, 0.05)
	yticks := niceTicks(ylim[0], ylim[1], 6)

	gap := s.px(18)
	left := rect{area.x0, area.y0, area.x0 + (area.w()-gap)/2, area.y1}
	right := rect{left.x1 + gap, area.y0, area.x1, area.y1}

	river := withAlpha(colorRiver, 0.4)
	riverWidth := s.px(8)
	sourceR := s.markerRadius(150)
	goalR := s.markerRadius(200)
	edgeW := s.px(1.2)

	drawEndpoints := func(a *axes) {
		f.drawMarker(markerCircle, a.px(sc.Source.X), a.py(sc.Source.Y), sourceR, colorBlack, colorWhite, edgeW)
		f.drawMarker(markerX, a.px(sc.Goal.X), a.py(sc.Goal.Y), goalR, colorGoal, colorWhite, edgeW)
	}

	// A. Dijkstra
	xlo, xhi, _ := stats.Extent(rx, bx, lx)
	xlim := paddedLimits(xlo, xhi, 0.05)
	a1 := f.newAxes(left, axesOptions{
		title:     "A. Dijkstra: Stochastic Global Expansion",
		titleSize: s.TitleSize + 2,
		xlim:      xlim,
		ylim:      ylim,
		xticks:    niceTicks(xlim[0], xlim[1], 6),
		yticks:    yticks,
	})
	a1.clip()
	a1.scatter(rx, ry, s.markerRadius(1), withAlpha(colorDijkstraLine, 0.15))
	a1.polyline(bx, by, riverWidth, river)
	drawEndpoints(a1)
	a1.finish()
	a1.legend([]legendEntry{
		{label: "Frontier Expansion", handle: handleMarker, color: colorDijkstraLine},
		{label: "Gomti River Barrier", handle: handleLine, color: river, width: s.px(4)},
		{label: "Source (LU)", handle: handleMarker, color: colorBlack, edge: colorWhite},
		{label: "Goal (Gomti Nagar)", handle: handleMarker, marker: markerX, color: colorGoal, edge: colorWhite},
	}, legendOptions{loc: legendLowerLeft})

	// B. A*
	xlo, xhi, _ = stats.Extent(cx, bx, lx)
	xlim = paddedLimits(xlo, xhi, 0.05)
	a2 := f.newAxes(right, axesOptions{
		title:           "B. A*: Bridge-Targeted Beam Search",
		titleSize:       s.TitleSize + 2,
		xlim:            xlim,
		ylim:            ylim,
		xticks:          niceTicks(xlim[0], xlim[1], 6),
		yticks:          yticks,
		hideYTickLabels: true,
	})
	a2.clip()
	a2.scatter(cx, cy, s.markerRadius(4), withAlpha(colorAStarLine, 0.5))
	a2.polyline(bx, by, riverWidth, river)
	drawEndpoints(a2)
	f.drawMarker(markerSquare, a2.px(sc.Bridge.X), a2.py(sc.Bridge.Y), sourceR, colorBridge, colorBlack, edgeW)
	a2.finish()
	a2.legend([]legendEntry{
		{label: "Heuristic Corridor", handle: handleMarker, color: colorAStarLine},
		{label: "Nishatganj Bridge Gateway", handle: handleMarker, marker: markerSquare, color: colorBridge, edge: colorBlack},
	}, legendOptions{loc: legendLowerLeft})

	return r.save(f, FileGeospatial, started)
}

func split(points []frontier.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
