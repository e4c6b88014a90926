package figures

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	colorDijkstraLine = hex("#e74c3c")
	colorAStarLine    = hex("#3498db")
	colorCDF          = hex("#2ecc71")
	colorRiver        = hex("#34495e")
	colorGoal         = hex("#27ae60")
	colorBridge       = hex("#f1c40f")
	colorMedianLine   = hex("#808080")
	colorGrid         = hex("#b0b0b0")
	colorText         = hex("#262626")
	colorSpine        = hex("#262626")
	colorWhite        = hex("#ffffff")
	colorBlack        = hex("#000000")
)

// brightPalette is the default cycle for scatter points.
var brightPalette = []color.NRGBA{
	hex("#023eff"), hex("#ff7c00"), hex("#1ac938"), hex("#e8000b"), hex("#8b2be2"),
}

var viridis5 = []color.NRGBA{
	hex("#46327e"), hex("#365c8d"), hex("#277f8e"), hex("#1fa187"), hex("#4ac16d"),
}

var magma5 = []color.NRGBA{
	hex("#2c115f"), hex("#721f81"), hex("#b73779"), hex("#f1605d"), hex("#feb078"),
}

// hex parses "#rrggbb". Palette literals are fixed, so a bad literal is a bug.
func hex(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		panic("figures: bad color literal " + s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(alpha) * 255))
	return c
}

// lighten mixes c toward white by f in [0, 1].
func lighten(c color.NRGBA, f float64) color.NRGBA {
	f = clamp01(f)
	mix := func(v uint8) uint8 { return uint8(math.Round(float64(v) + (255-float64(v))*f)) }
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
