// Package report runs the whole pipeline: load trials, render the six
// figures in order and optionally export the frontier clouds.
package report

import (
	"fmt"
	"io"
	"time"

	"frontier-report/internal/figures"
	"frontier-report/internal/frontier"
	"frontier-report/internal/infra/config"
	"frontier-report/internal/infra/fs"
	logging "frontier-report/internal/infra/log"
	"frontier-report/internal/trials"

	"go.uber.org/zap"
)

// Result lists what a run produced. On error it still holds the figures
// written before the failure.
type Result struct {
	Figures         []string
	GeoJSON         string
	Trials          int
	InvalidDistance int
	Duration        time.Duration
}

// Summary is a short plain-text description of the run.
func (r *Result) Summary() string {
	s := fmt.Sprintf("Dijkstra vs A*: %d trials, %d figures", r.Trials, len(r.Figures))
	if r.InvalidDistance > 0 {
		s += fmt.Sprintf(", %d rows with non-positive distance left out of the density plot", r.InvalidDistance)
	}
	return s
}

func Style(c config.StyleConfig) figures.Style {
	s := figures.DefaultStyle()
	s.DPI = c.DPI
	s.FontSize = c.FontSize
	s.LabelSize = c.LabelSize
	s.TitleSize = c.TitleSize
	s.LegendSize = c.LegendSize
	s.SuptitleSize = c.SuptitleSize
	s.GridAlpha = c.GridAlpha
	s.FontPaths = c.FontPaths
	return s
}

func SimulationParams(c config.SimulationConfig) frontier.Params {
	return frontier.Params{
		Seed:           c.Seed,
		RadialPoints:   c.RadialPoints,
		RadialSigma:    c.RadialSigma,
		CorridorPoints: c.CorridorPoints,
		CorridorSplit:  c.CorridorSplit,
		CorridorNoise:  c.CorridorNoise,
	}
}

// Generate renders every figure into cfg.Output.Dir. Input problems fail
// before anything is drawn; a failing figure stops the run and leaves the
// earlier files in place.
func Generate(cfg *config.Config) (*Result, error) {
	started := time.Now()

	tb, err := trials.Load(cfg.Input.Path, trials.LoadOptions{StrictDistance: cfg.Input.StrictDistance})
	if err != nil {
		return nil, err
	}

	renderer, err := figures.NewRenderer(Style(cfg.Style), cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Trials: tb.Len(), InvalidDistance: tb.InvalidDistance}
	var scenario *frontier.Scenario

	steps := []struct {
		name   string
		render func() (string, error)
	}{
		{figures.FileRegression, func() (string, error) { return renderer.RenderRegression(tb) }},
		{figures.FileEfficiencyBox, func() (string, error) { return renderer.RenderEfficiencyBoxen(tb) }},
		{figures.FileDensity, func() (string, error) { return renderer.RenderExpansionDensity(tb) }},
		{figures.FileEfficiencyCDF, func() (string, error) { return renderer.RenderEfficiencyCDF(tb) }},
		{figures.FileGeospatial, func() (string, error) {
			scenario = frontier.Simulate(SimulationParams(cfg.Simulation))
			return renderer.RenderGeospatial(scenario)
		}},
		{figures.FileTimeComplexity, func() (string, error) { return renderer.RenderTimeComplexity(tb) }},
	}

	for _, step := range steps {
		path, err := step.render()
		if err != nil {
			logging.LogError("Figure failed", zap.String("figure", step.name), zap.Error(err))
			res.Duration = time.Since(started)
			return res, fmt.Errorf("failed to render %s: %w", step.name, err)
		}
		res.Figures = append(res.Figures, path)
	}

	if cfg.Output.GeoJSON != "" {
		if err := fs.WriteAtomic(cfg.Output.GeoJSON, func(w io.Writer) error {
			return scenario.WriteGeoJSON(w)
		}); err != nil {
			res.Duration = time.Since(started)
			return res, fmt.Errorf("failed to export geojson: %w", err)
		}
		res.GeoJSON = cfg.Output.GeoJSON
		logging.LogSuccess("Frontier clouds exported", zap.String("path", cfg.Output.GeoJSON))
	}

	res.Duration = time.Since(started)
	logging.LogInfo("Report complete",
		zap.Int("trials", res.Trials),
		zap.Int("figures", len(res.Figures)),
		zap.Int("invalid_distance", res.InvalidDistance),
		zap.Int64("duration_ms", res.Duration.Milliseconds()))
	return res, nil
}
