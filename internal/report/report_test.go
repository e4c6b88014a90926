package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"frontier-report/internal/figures"
	"frontier-report/internal/infra/config"
	"frontier-report/internal/trials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, csv string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "trials.csv")
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	return &config.Config{
		Input:  config.InputConfig{Path: input},
		Output: config.OutputConfig{Dir: filepath.Join(dir, "out")},
		Simulation: config.SimulationConfig{
			Seed: 42, RadialPoints: 200, RadialSigma: 0.045,
			CorridorPoints: 80, CorridorSplit: 0.6, CorridorNoise: 0.004,
		},
		Style: config.StyleConfig{
			DPI: 20, FontSize: 12, LabelSize: 14, TitleSize: 16,
			LegendSize: 12, SuptitleSize: 18, GridAlpha: 0.3,
		},
	}
}

const threeRows = `Trial,Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS
0,3.2,3100,700,77.4,0.9
1,18.5,41000,3300,91.9,4.4
2,57,130000,8100,93.8,12.7
`

func TestGenerateWritesSixFigures(t *testing.T) {
	cfg := testConfig(t, threeRows)
	cfg.Output.GeoJSON = filepath.Join(cfg.Output.Dir, "frontier.geojson")

	res, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, res.Figures, 6)
	assert.Equal(t, 3, res.Trials)
	assert.Zero(t, res.InvalidDistance)

	for i, name := range figures.FileNames {
		assert.Equal(t, filepath.Join(cfg.Output.Dir, name), res.Figures[i])
		info, err := os.Stat(res.Figures[i])
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	entries, err := os.ReadDir(cfg.Output.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 7)

	data, err := os.ReadFile(res.GeoJSON)
	require.NoError(t, err)
	var fc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Equal(t, "FeatureCollection", fc["type"])
}

func TestGenerateCountsZeroDistance(t *testing.T) {
	cfg := testConfig(t, threeRows+"3,0,10,10,0,0.1\n")

	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Len(t, res.Figures, 6)
	assert.Equal(t, 1, res.InvalidDistance)
	assert.Contains(t, res.Summary(), "1 rows with non-positive distance")
}

func TestGenerateFailsBeforeDrawing(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		cfg := testConfig(t, "Distance_KM,Dijkstra_Visited\n1,2\n")
		res, err := Generate(cfg)
		assert.ErrorIs(t, err, trials.ErrMissingColumn)
		assert.Nil(t, res)
		_, statErr := os.Stat(cfg.Output.Dir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t, threeRows)
		cfg.Input.Path = filepath.Join(t.TempDir(), "nope.csv")
		_, err := Generate(cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("non-finite value", func(t *testing.T) {
		cfg := testConfig(t, threeRows+"3,12,900,NaN,40,2\n")
		_, err := Generate(cfg)
		assert.ErrorIs(t, err, trials.ErrMalformedValue)
		_, statErr := os.Stat(cfg.Output.Dir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("strict distance", func(t *testing.T) {
		cfg := testConfig(t, threeRows+"3,0,10,10,0,0.1\n")
		cfg.Input.StrictDistance = true
		_, err := Generate(cfg)
		assert.ErrorIs(t, err, trials.ErrNonPositiveDistance)
	})
}

func TestStyleFromConfig(t *testing.T) {
	s := Style(config.StyleConfig{DPI: 100, FontSize: 9, GridAlpha: 0.5, FontPaths: []string{"/x.ttf"}})
	assert.Equal(t, 100.0, s.DPI)
	assert.Equal(t, 9.0, s.FontSize)
	assert.Equal(t, 0.5, s.GridAlpha)
	assert.Equal(t, []string{"/x.ttf"}, s.FontPaths)
	assert.Equal(t, figures.DefaultStyle().GridDash, s.GridDash)
}
