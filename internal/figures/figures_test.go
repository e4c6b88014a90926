package figures

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frontier-report/internal/frontier"
	"frontier-report/internal/trials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const figureCSV = `Trial,Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS
0,2.5,2400,600,75,0.8
1,9,14000,1900,86.4,2.1
2,22,52000,4100,92.1,5.4
3,41,98000,6400,93.5,9.9
4,70,160000,9000,94.4,14.2
5,12,21000,2600,87.6,3.0
`

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	style := DefaultStyle()
	style.DPI = 24
	r, err := NewRenderer(style, t.TempDir())
	require.NoError(t, err)
	return r
}

func testTable(t *testing.T, csv string) *trials.Table {
	t.Helper()
	tb, err := trials.Read(strings.NewReader(csv), trials.LoadOptions{})
	require.NoError(t, err)
	return tb
}

func requirePNG(t *testing.T, path string, wantW, wantH int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, wantW, cfg.Width)
	assert.Equal(t, wantH, cfg.Height)
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 1, 5)
	require.Len(t, ticks, 6)
	assert.Equal(t, 0.0, ticks[0].v)
	assert.Equal(t, "0.0", ticks[0].label)
	assert.Equal(t, "0.6", ticks[3].label)
	assert.InDelta(t, 1.0, ticks[5].v, 1e-12)

	ticks = niceTicks(-3, 97, 5)
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.label
	}
	assert.Equal(t, []string{"0", "20", "40", "60", "80"}, labels)

	assert.Empty(t, niceTicks(5, 5, 4))
}

func TestPaddedLimits(t *testing.T) {
	assert.Equal(t, [2]float64{-0.5, 10.5}, paddedLimits(0, 10, 0.05))
	assert.Equal(t, [2]float64{-1, 1}, paddedLimits(0, 0, 0.05))
	assert.Equal(t, [2]float64{9.5, 10.5}, paddedLimits(10, 10, 0.05))
	assert.Equal(t, [2]float64{-0.5, 10.5}, paddedLimits(10, 0, 0.05))
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}, colorDijkstraLine)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, lighten(colorBlack, 0.5))
	assert.Equal(t, uint8(38), withAlpha(colorRiver, 0.15).A)
	assert.Panics(t, func() { hex("#12") })
}

func TestSizeSamplesDegenerateRange(t *testing.T) {
	assert.Equal(t, []float64{4200}, sizeSamples(4200, 4200))
	for _, v := range sizeSamples(980, 9000) {
		assert.GreaterOrEqual(t, v, 980.0)
		assert.LessOrEqual(t, v, 9000.0)
	}
}

func TestNewRendererRejectsBadDPI(t *testing.T) {
	style := DefaultStyle()
	style.DPI = 0
	_, err := NewRenderer(style, t.TempDir())
	assert.Error(t, err)
}

func TestRenderAllFigures(t *testing.T) {
	r := testRenderer(t)
	tb := testTable(t, figureCSV)

	params := frontier.DefaultParams()
	params.RadialPoints = 300
	params.CorridorPoints = 100
	sc := frontier.Simulate(params)

	renders := []struct {
		name   string
		render func() (string, error)
		w, h   int
	}{
		{FileRegression, func() (string, error) { return r.RenderRegression(tb) }, 240, 168},
		{FileEfficiencyBox, func() (string, error) { return r.RenderEfficiencyBoxen(tb) }, 288, 168},
		{FileDensity, func() (string, error) { return r.RenderExpansionDensity(tb) }, 240, 168},
		{FileEfficiencyCDF, func() (string, error) { return r.RenderEfficiencyCDF(tb) }, 240, 168},
		{FileGeospatial, func() (string, error) { return r.RenderGeospatial(sc) }, 432, 192},
		{FileTimeComplexity, func() (string, error) { return r.RenderTimeComplexity(tb) }, 240, 168},
	}
	for _, tc := range renders {
		t.Run(tc.name, func(t *testing.T) {
			path, err := tc.render()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(r.OutDir(), tc.name), path)
			requirePNG(t, path, tc.w, tc.h)
		})
	}
}

func TestRenderSingleRow(t *testing.T) {
	r := testRenderer(t)
	tb := testTable(t, `Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS
10,2000,500,75,1.2
`)

	for _, render := range []func(*trials.Table) (string, error){
		r.RenderRegression,
		r.RenderEfficiencyBoxen,
		r.RenderExpansionDensity,
		r.RenderEfficiencyCDF,
		r.RenderTimeComplexity,
	} {
		path, err := render(tb)
		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRenderTimeComplexitySkipsUncategorized(t *testing.T) {
	r := testRenderer(t)
	tb := testTable(t, `Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS
150,90000,7000,92.2,20
220,140000,9500,93.2,31
`)
	for _, tr := range tb.Trials {
		require.Equal(t, trials.CategoryNone, tr.Category)
	}

	path, err := r.RenderTimeComplexity(tb)
	require.NoError(t, err)
	requirePNG(t, path, 240, 168)
}
