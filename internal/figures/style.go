package figures

import "math"

// Style holds the rendering settings shared by all figures. It is built once
// from configuration and handed to the Renderer; nothing reads global state.
type Style struct {
	DPI float64

	// Font sizes in points.
	FontSize     float64
	LabelSize    float64
	TitleSize    float64
	LegendSize   float64
	SuptitleSize float64

	GridAlpha float64
	// GridDash is the on/off dash pattern of grid lines, in points.
	GridDash []float64

	// FontPaths are tried before the built-in candidates.
	FontPaths []string
}

func DefaultStyle() Style {
	return Style{
		DPI:          300,
		FontSize:     12,
		LabelSize:    14,
		TitleSize:    16,
		LegendSize:   12,
		SuptitleSize: 18,
		GridAlpha:    0.3,
		GridDash:     []float64{3.7, 1.6},
	}
}

// px converts points to pixels at the style's resolution.
func (s Style) px(pt float64) float64 {
	return pt * s.DPI / 72
}

// markerRadius converts a scatter marker area in pt² to a radius in pixels.
func (s Style) markerRadius(area float64) float64 {
	return s.px(math.Sqrt(area / math.Pi))
}
