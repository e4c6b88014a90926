// Package figures renders the six comparison figures with gg. Every figure is
// drawn on its own canvas and written through a temporary file, so a failed
// figure never leaves a half-written PNG behind.
package figures

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"frontier-report/internal/infra/fs"
	logging "frontier-report/internal/infra/log"

	"go.uber.org/zap"
)

// Output file names.
const (
	FileRegression     = "fig1_regression_detailed.png"
	FileEfficiencyBox  = "fig2_efficiency_boxen.png"
	FileDensity        = "fig3_expansion_density_detailed.png"
	FileEfficiencyCDF  = "fig4_efficiency_cdf_detailed.png"
	FileGeospatial     = "fig5_gomti_geospatial_detailed.png"
	FileTimeComplexity = "fig6_time_complexity_detailed.png"
)

// FileNames lists the outputs in rendering order.
var FileNames = []string{
	FileRegression,
	FileEfficiencyBox,
	FileDensity,
	FileEfficiencyCDF,
	FileGeospatial,
	FileTimeComplexity,
}

type Renderer struct {
	style  Style
	fonts  *FontBook
	outDir string
}

func NewRenderer(style Style, outDir string) (*Renderer, error) {
	if style.DPI <= 0 {
		return nil, fmt.Errorf("invalid dpi %v", style.DPI)
	}
	fonts, err := LoadFontBook(style.FontPaths, style.DPI)
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}
	if outDir == "" {
		outDir = "."
	}
	return &Renderer{style: style, fonts: fonts, outDir: outDir}, nil
}

func (r *Renderer) OutDir() string { return r.outDir }

// save encodes the figure as PNG under the output directory and checks the
// result is not empty.
func (r *Renderer) save(f *figure, name string, started time.Time) (string, error) {
	path := filepath.Join(r.outDir, name)
	if err := fs.WriteAtomic(path, func(w io.Writer) error {
		return f.dc.EncodePNG(w)
	}); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}

	size, err := fs.EnsureNonEmpty(path)
	if err != nil {
		logging.LogError("Figure file is empty after rendering", zap.String("filename", path))
		return "", err
	}

	logging.LogSuccess("Figure generated",
		zap.String("filename", path),
		zap.Int64("file_size", size),
		zap.Int64("duration_ms", time.Since(started).Milliseconds()))
	return path, nil
}
