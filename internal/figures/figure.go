package figures

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) w() float64 { return r.x1 - r.x0 }
func (r rect) h() float64 { return r.y1 - r.y0 }

// figure is one gg canvas sized in inches at the style's resolution.
type figure struct {
	dc    *gg.Context
	style Style
	fonts *FontBook
	w, h  float64
}

func (r *Renderer) newFigure(widthIn, heightIn float64) *figure {
	w := int(math.Round(widthIn * r.style.DPI))
	h := int(math.Round(heightIn * r.style.DPI))
	dc := gg.NewContext(w, h)
	dc.SetColor(colorWhite)
	dc.Clear()
	return &figure{dc: dc, style: r.style, fonts: r.fonts, w: float64(w), h: float64(h)}
}

// bounds is the whole canvas minus an outer padding.
func (f *figure) bounds() rect {
	pad := f.style.px(6)
	return rect{pad, pad, f.w - pad, f.h - pad}
}

func (f *figure) setFont(size float64) {
	f.dc.SetFontFace(f.fonts.Face(size))
}

func (f *figure) measure(s string, size float64) (w, h float64) {
	f.setFont(size)
	return f.dc.MeasureString(s)
}

func (f *figure) lineHeight(size float64) float64 {
	_, h := f.measure("Mg", size)
	return h
}

// text draws s anchored at (x, y); ax/ay follow gg's anchor convention.
func (f *figure) text(s string, x, y, ax, ay, size float64, c color.Color) {
	f.setFont(size)
	f.dc.SetColor(c)
	f.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// textRotated draws s rotated by deg degrees counter-clockwise around (x, y).
func (f *figure) textRotated(s string, x, y, ax, ay, size, deg float64, c color.Color) {
	f.dc.Push()
	f.dc.RotateAbout(gg.Radians(-deg), x, y)
	f.text(s, x, y, ax, ay, size, c)
	f.dc.Pop()
}

// suptitle centres a figure-level title in the top band and returns the
// remaining area below it.
func (f *figure) suptitle(s string, size float64) rect {
	b := f.bounds()
	lh := f.lineHeight(size)
	f.text(s, f.w/2, b.y0+lh*0.5, 0.5, 0.5, size, colorText)
	b.y0 += lh * 1.6
	return b
}

type markerKind int

const (
	markerCircle markerKind = iota
	markerSquare
	markerX
	markerDiamond
)

// drawMarker draws a filled marker of radius r (pixels) with an optional edge.
func (f *figure) drawMarker(kind markerKind, x, y, r float64, fill color.Color, edge color.Color, edgeWidth float64) {
	dc := f.dc
	switch kind {
	case markerX:
		arm := r * 0.95
		if edge != nil && edgeWidth > 0 {
			dc.SetColor(edge)
			dc.SetLineWidth(r*0.55 + 2*edgeWidth)
			dc.SetLineCapSquare()
			f.cross(x, y, arm+edgeWidth*0.5)
		}
		dc.SetColor(fill)
		dc.SetLineWidth(r * 0.55)
		dc.SetLineCapButt()
		f.cross(x, y, arm)
		dc.SetLineCapRound()
		return
	case markerSquare:
		side := r * 1.8
		dc.DrawRectangle(x-side/2, y-side/2, side, side)
	case markerDiamond:
		dc.DrawRegularPolygon(4, x, y, r*1.2, 0)
	default:
		dc.DrawCircle(x, y, r)
	}
	dc.SetColor(fill)
	if edge != nil && edgeWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(edge)
		dc.SetLineWidth(edgeWidth)
		dc.Stroke()
		return
	}
	dc.Fill()
}

func (f *figure) cross(x, y, arm float64) {
	d := arm / math.Sqrt2
	f.dc.DrawLine(x-d, y-d, x+d, y+d)
	f.dc.Stroke()
	f.dc.DrawLine(x-d, y+d, x+d, y-d)
	f.dc.Stroke()
}
