package figures

import (
	"image/color"
	"math"
	"strconv"
)

type tick struct {
	v     float64
	label string
}

type axesOptions struct {
	title, xlabel, ylabel string
	titleSize             float64 // defaults to Style.TitleSize
	xlim, ylim            [2]float64
	xticks, yticks        []tick
	xtickRotation         float64 // degrees, counter-clockwise
	hideYTickLabels       bool
}

// axes maps data coordinates into a pixel box and draws the frame around it.
type axes struct {
	fig  *figure
	box  rect
	opts axesOptions
}

// newAxes lays out an axes inside outer, reserving room for the title, the
// axis labels and the tick labels, and paints the background and grid.
func (f *figure) newAxes(outer rect, opts axesOptions) *axes {
	s := f.style
	if opts.titleSize == 0 {
		opts.titleSize = s.TitleSize
	}
	pad := s.px(4)

	box := outer
	if opts.title != "" {
		box.y0 += f.lineHeight(opts.titleSize)*1.2 + pad
	} else {
		box.y0 += pad
	}
	if opts.ylabel != "" {
		box.x0 += f.lineHeight(s.LabelSize) + pad
	}
	box.x0 += yTickBand(f, opts)
	box.y1 -= xTickBand(f, opts)
	if opts.xlabel != "" {
		box.y1 -= f.lineHeight(s.LabelSize) + pad
	}

	// Leave room for half of the last horizontal x tick label.
	right := pad
	if n := len(opts.xticks); n > 0 && opts.xtickRotation == 0 {
		w, _ := f.measure(opts.xticks[n-1].label, s.FontSize)
		right = math.Max(right, w/2)
	}
	box.x1 -= right

	a := &axes{fig: f, box: box, opts: opts}
	a.drawBackground()
	return a
}

func (a *axes) px(x float64) float64 {
	lo, hi := a.opts.xlim[0], a.opts.xlim[1]
	return a.box.x0 + (x-lo)/(hi-lo)*a.box.w()
}

func (a *axes) py(y float64) float64 {
	lo, hi := a.opts.ylim[0], a.opts.ylim[1]
	return a.box.y1 - (y-lo)/(hi-lo)*a.box.h()
}

func (a *axes) drawBackground() {
	dc := a.fig.dc
	s := a.fig.style

	dc.SetColor(colorWhite)
	dc.DrawRectangle(a.box.x0, a.box.y0, a.box.w(), a.box.h())
	dc.Fill()

	dash := make([]float64, len(s.GridDash))
	for i, d := range s.GridDash {
		dash[i] = s.px(d)
	}
	dc.SetDash(dash...)
	dc.SetLineWidth(s.px(0.8))
	dc.SetColor(withAlpha(colorGrid, s.GridAlpha*2))
	for _, t := range a.opts.xticks {
		x := a.px(t.v)
		dc.DrawLine(x, a.box.y0, x, a.box.y1)
		dc.Stroke()
	}
	for _, t := range a.opts.yticks {
		y := a.py(t.v)
		dc.DrawLine(a.box.x0, y, a.box.x1, y)
		dc.Stroke()
	}
	dc.SetDash()
}

// finish draws spines, ticks, tick labels, axis labels and the title on top
// of whatever was plotted.
func (a *axes) finish() {
	f := a.fig
	dc := f.dc
	s := f.style
	pad := s.px(4)
	tickLen := s.px(3.5)

	dc.ResetClip()
	dc.SetColor(colorSpine)
	dc.SetLineWidth(s.px(0.8))
	dc.DrawRectangle(a.box.x0, a.box.y0, a.box.w(), a.box.h())
	dc.Stroke()

	for _, t := range a.opts.xticks {
		x := a.px(t.v)
		dc.SetColor(colorSpine)
		dc.DrawLine(x, a.box.y1, x, a.box.y1+tickLen)
		dc.Stroke()
		ly := a.box.y1 + tickLen + pad
		if a.opts.xtickRotation != 0 {
			f.textRotated(t.label, x, ly, 0.5, 1, s.FontSize, a.opts.xtickRotation, colorText)
		} else {
			f.text(t.label, x, ly, 0.5, 0.8, s.FontSize, colorText)
		}
	}
	for _, t := range a.opts.yticks {
		y := a.py(t.v)
		dc.SetColor(colorSpine)
		dc.DrawLine(a.box.x0-tickLen, y, a.box.x0, y)
		dc.Stroke()
		if !a.opts.hideYTickLabels {
			f.text(t.label, a.box.x0-tickLen-pad, y, 1, 0.35, s.FontSize, colorText)
		}
	}

	if a.opts.xlabel != "" {
		f.text(a.opts.xlabel, (a.box.x0+a.box.x1)/2, a.box.y1+xTickBand(f, a.opts)+pad, 0.5, 0.8, s.LabelSize, colorText)
	}
	if a.opts.ylabel != "" {
		x := a.box.x0 - yTickBand(f, a.opts) - pad - f.lineHeight(s.LabelSize)/2
		f.textRotated(a.opts.ylabel, x, (a.box.y0+a.box.y1)/2, 0.5, 0.35, s.LabelSize, 90, colorText)
	}
	if a.opts.title != "" {
		f.text(a.opts.title, (a.box.x0+a.box.x1)/2, a.box.y0-pad, 0.5, 0, a.opts.titleSize, colorText)
	}
}

// xTickBand is the height taken below the plot box by ticks and their labels.
func xTickBand(f *figure, opts axesOptions) float64 {
	s := f.style
	lh := f.lineHeight(s.FontSize)
	rad := opts.xtickRotation * math.Pi / 180
	var band float64
	for _, t := range opts.xticks {
		w, _ := f.measure(t.label, s.FontSize)
		band = math.Max(band, w*math.Abs(math.Sin(rad))+lh*math.Abs(math.Cos(rad)))
	}
	return band + s.px(3.5) + s.px(4)
}

// yTickBand is the width taken left of the plot box by ticks and their labels.
func yTickBand(f *figure, opts axesOptions) float64 {
	s := f.style
	if opts.hideYTickLabels {
		return s.px(3.5)
	}
	var maxW float64
	for _, t := range opts.yticks {
		w, _ := f.measure(t.label, s.FontSize)
		maxW = math.Max(maxW, w)
	}
	return maxW + s.px(3.5) + s.px(4)
}

// clip restricts drawing to the plot box until finish is called.
func (a *axes) clip() {
	a.fig.dc.DrawRectangle(a.box.x0, a.box.y0, a.box.w(), a.box.h())
	a.fig.dc.Clip()
}

// scatter draws each point as its own marker so overlapping alpha accumulates.
func (a *axes) scatter(xs, ys []float64, radius float64, c color.Color) {
	dc := a.fig.dc
	dc.SetColor(c)
	for i := range xs {
		dc.DrawCircle(a.px(xs[i]), a.py(ys[i]), radius)
		dc.Fill()
	}
}

func (a *axes) polyline(xs, ys []float64, width float64, c color.Color, dash ...float64) {
	if len(xs) < 2 {
		return
	}
	dc := a.fig.dc
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.SetDash(dash...)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.MoveTo(a.px(xs[0]), a.py(ys[0]))
	for i := 1; i < len(xs); i++ {
		dc.LineTo(a.px(xs[i]), a.py(ys[i]))
	}
	dc.Stroke()
	dc.SetDash()
}

// fillBetween fills the band between lo and hi along xs.
func (a *axes) fillBetween(xs, lo, hi []float64, c color.Color) {
	if len(xs) < 2 {
		return
	}
	dc := a.fig.dc
	dc.NewSubPath()
	dc.MoveTo(a.px(xs[0]), a.py(hi[0]))
	for i := 1; i < len(xs); i++ {
		dc.LineTo(a.px(xs[i]), a.py(hi[i]))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		dc.LineTo(a.px(xs[i]), a.py(lo[i]))
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

func (a *axes) hline(y, width float64, c color.Color, dash ...float64) {
	a.polyline([]float64{a.opts.xlim[0], a.opts.xlim[1]}, []float64{y, y}, width, c, dash...)
}

// paddedLimits widens [lo, hi] by margin of its span on both sides. A zero
// span is widened around the value so the axis stays drawable.
func paddedLimits(lo, hi, margin float64) [2]float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		d := math.Abs(lo) * 0.05
		if d == 0 {
			d = 1
		}
		return [2]float64{lo - d, hi + d}
	}
	return [2]float64{lo - span*margin, hi + span*margin}
}

// niceTicks returns round tick positions inside [lo, hi], about target of them.
func niceTicks(lo, hi float64, target int) []tick {
	if !(hi > lo) || target < 1 {
		return nil
	}
	step := niceStep((hi - lo) / float64(target))
	first := math.Ceil(lo/step) * step
	decimals := stepDecimals(step)

	var out []tick
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		// Snap to the step grid to avoid drift such as 0.30000000000000004.
		snapped := math.Round(v/step) * step
		if snapped == 0 {
			snapped = 0 // no "-0"
		}
		out = append(out, tick{v: snapped, label: formatTick(snapped, decimals)})
	}
	return out
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 2.5:
		return 2.5 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// stepDecimals is the number of decimals needed to print multiples of step.
func stepDecimals(step float64) int {
	for d := 0; d < 10; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*scaled {
			return d
		}
	}
	return 10
}

func formatTick(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
