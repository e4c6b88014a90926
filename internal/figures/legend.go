package figures

import (
	"image/color"
	"math"
)

type legendHandle int

const (
	handleMarker legendHandle = iota
	handleLine
	handlePatch
	handleHeader // label only, used as a section title
)

type legendEntry struct {
	label  string
	handle legendHandle
	color  color.NRGBA
	marker markerKind
	radius float64 // marker radius in pixels, 0 for the default
	edge   color.Color
	dash   []float64 // line handles, pixels
	width  float64   // line handles, pixels
}

type legendLoc int

const (
	legendUpperRight legendLoc = iota
	legendUpperLeft
	legendLowerLeft
	legendLowerRight
	legendOutsideRight // to the right of the plot box, top aligned
)

type legendOptions struct {
	loc    legendLoc
	title  string
	shadow bool
}

// legendWidth measures the legend box so callers can reserve space for an
// outside legend before laying out the axes.
func (f *figure) legendWidth(entries []legendEntry, opts legendOptions) float64 {
	s := f.style
	pad := s.px(6)
	handleW := s.px(s.LegendSize * 2)
	gap := s.px(5)

	var labelW float64
	for _, e := range entries {
		w, _ := f.measure(e.label, s.LegendSize)
		if e.handle == handleHeader {
			labelW = math.Max(labelW, w-handleW-gap)
			continue
		}
		labelW = math.Max(labelW, w)
		if e.radius > 0 {
			handleW = math.Max(handleW, e.radius*2)
		}
	}
	if opts.title != "" {
		w, _ := f.measure(opts.title, s.LegendSize)
		labelW = math.Max(labelW, w-handleW-gap)
	}
	return pad*2 + handleW + gap + labelW
}

func (a *axes) legend(entries []legendEntry, opts legendOptions) {
	if len(entries) == 0 {
		return
	}
	f := a.fig
	dc := f.dc
	s := f.style
	pad := s.px(6)
	gap := s.px(5)
	margin := s.px(6)

	handleW := s.px(s.LegendSize * 2)
	for _, e := range entries {
		if e.radius > 0 {
			handleW = math.Max(handleW, e.radius*2)
		}
	}

	lh := f.lineHeight(s.LegendSize)
	rowH := lh * 1.35
	rows := make([]float64, len(entries))
	for i, e := range entries {
		rows[i] = rowH
		if e.radius*2 > rowH*0.9 {
			rows[i] = e.radius*2 + lh*0.4
		}
	}
	height := pad * 2
	if opts.title != "" {
		height += rowH
	}
	for _, r := range rows {
		height += r
	}
	width := f.legendWidth(entries, opts)

	var x, y float64
	switch opts.loc {
	case legendUpperLeft:
		x, y = a.box.x0+margin, a.box.y0+margin
	case legendLowerLeft:
		x, y = a.box.x0+margin, a.box.y1-margin-height
	case legendLowerRight:
		x, y = a.box.x1-margin-width, a.box.y1-margin-height
	case legendOutsideRight:
		x, y = a.box.x1+margin*2, a.box.y0
	default:
		x, y = a.box.x1-margin-width, a.box.y0+margin
	}

	dc.ResetClip()
	if opts.shadow {
		off := s.px(2.5)
		dc.SetColor(withAlpha(colorBlack, 0.25))
		dc.DrawRoundedRectangle(x+off, y+off, width, height, s.px(2))
		dc.Fill()
	}
	dc.DrawRoundedRectangle(x, y, width, height, s.px(2))
	dc.SetColor(withAlpha(colorWhite, 0.85))
	dc.FillPreserve()
	dc.SetColor(hex("#cccccc"))
	dc.SetLineWidth(s.px(0.8))
	dc.Stroke()

	cy := y + pad
	if opts.title != "" {
		f.text(opts.title, x+width/2, cy+rowH/2, 0.5, 0.35, s.LegendSize, colorText)
		cy += rowH
	}

	hx := x + pad
	for i, e := range entries {
		mid := cy + rows[i]/2
		switch e.handle {
		case handleHeader:
			f.text(e.label, hx, mid, 0, 0.35, s.LegendSize, colorText)
			cy += rows[i]
			continue
		case handleLine:
			w := e.width
			if w == 0 {
				w = s.px(2)
			}
			dc.SetColor(e.color)
			dc.SetLineWidth(w)
			dc.SetDash(e.dash...)
			dc.DrawLine(hx, mid, hx+handleW, mid)
			dc.Stroke()
			dc.SetDash()
		case handlePatch:
			ph := lh * 0.7
			dc.DrawRectangle(hx, mid-ph/2, handleW, ph)
			dc.SetColor(e.color)
			dc.Fill()
		default:
			r := e.radius
			if r == 0 {
				r = lh * 0.25
			}
			f.drawMarker(e.marker, hx+handleW/2, mid, r, e.color, e.edge, s.px(1))
		}
		f.text(e.label, hx+handleW+gap, mid, 0, 0.35, s.LegendSize, colorText)
		cy += rows[i]
	}
}
