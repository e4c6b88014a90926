package trials

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Trial,Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS
0,4.9,4900,980,80,1.5
1,20,60000,3000,95,6.25
2,0,10,10,0,0.1
`

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		distance float64
		want     Category
	}{
		{0, CategoryUltraShort},
		{4.9, CategoryUltraShort},
		{5.0, CategoryShort},
		{14.999, CategoryShort},
		{15, CategoryMedium},
		{30, CategoryLong},
		{49.9, CategoryLong},
		{50, CategoryUltraLong},
		{100.0, CategoryUltraLong},
		{100.01, CategoryNone},
		{-0.1, CategoryNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.distance), "distance %v", tt.distance)
	}
}

func TestCategoryLabelsInOrder(t *testing.T) {
	var labels []string
	for _, c := range Categories {
		labels = append(labels, c.String())
	}
	assert.Equal(t, []string{
		"Ultra-Short (<5km)",
		"Short (5-15km)",
		"Medium (15-30km)",
		"Long (30-50km)",
		"Ultra-Long (>50km)",
	}, labels)
	assert.Equal(t, "Uncategorized", CategoryNone.String())
}

func TestReadDerivesFactors(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV), LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	for _, tr := range table.Trials[:2] {
		require.True(t, tr.DijkstraFactor.Valid)
		require.True(t, tr.AStarFactor.Valid)
		assert.Equal(t, tr.DijkstraVisited/tr.DistanceKM, tr.DijkstraFactor.Value)
		assert.Equal(t, tr.AStarVisited/tr.DistanceKM, tr.AStarFactor.Value)
	}

	zero := table.Trials[2]
	assert.False(t, zero.DijkstraFactor.Valid)
	assert.False(t, zero.AStarFactor.Valid)
	assert.Equal(t, 1, table.InvalidDistance)
	assert.Len(t, table.ValidDijkstraFactors(), 2)
	assert.Len(t, table.ValidAStarFactors(), 2)

	assert.Equal(t, CategoryUltraShort, table.Trials[0].Category)
	assert.Equal(t, CategoryMedium, table.Trials[1].Category)
}

func TestReadStrictDistance(t *testing.T) {
	_, err := Read(strings.NewReader(sampleCSV), LoadOptions{StrictDistance: true})
	assert.ErrorIs(t, err, ErrNonPositiveDistance)
}

func TestReadMissingColumn(t *testing.T) {
	in := "Distance_KM,Dijkstra_Visited,AStar_Visited,Time_AStar_MS\n1,2,3,4\n"
	_, err := Read(strings.NewReader(in), LoadOptions{})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), ColEfficiencyGain)
}

func TestReadColumnsAreCaseSensitive(t *testing.T) {
	in := "distance_km,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS\n1,2,3,4,5\n"
	_, err := Read(strings.NewReader(in), LoadOptions{})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadMalformedValue(t *testing.T) {
	in := "Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS\n1,2,three,4,5\n"
	_, err := Read(strings.NewReader(in), LoadOptions{})
	require.ErrorIs(t, err, ErrMalformedValue)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadShortRow(t *testing.T) {
	in := "Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS\n1,2,3\n"
	_, err := Read(strings.NewReader(in), LoadOptions{})
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestReadRejectsNonFinite(t *testing.T) {
	const header = "Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS\n"
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"nan gain", "1,2,3,NaN,5", ColEfficiencyGain},
		{"inf distance", "Inf,2,3,4,5", ColDistanceKM},
		{"positive inf time", "1,2,3,4,+Inf", ColTimeAStarMS},
		{"negative inf visited", "1,-Inf,3,4,5", ColDijkstraVisited},
		{"overflow", "1,2,1e400,4,5", ColAStarVisited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(header+"1,2,3,4,5\n"+tt.row+"\n"), LoadOptions{})
			require.ErrorIs(t, err, ErrMalformedValue)
			assert.Contains(t, err.Error(), "row 3")
			assert.Contains(t, err.Error(), tt.column)
		})
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""), LoadOptions{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), LoadOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGainsByCategoryKeepsOrder(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV), LoadOptions{})
	require.NoError(t, err)

	groups := table.GainsByCategory()
	require.Len(t, groups, len(Categories))
	assert.Equal(t, []float64{80, 0}, groups[CategoryUltraShort])
	assert.Empty(t, groups[CategoryShort])
	assert.Equal(t, []float64{95}, groups[CategoryMedium])
}

func TestSynthesizeRoundTripsThroughCSV(t *testing.T) {
	rows := Synthesize(rand.New(rand.NewSource(1337)), 50)
	require.Len(t, rows, 50)
	for _, r := range rows {
		assert.Greater(t, r.DistanceKM, 0.0)
		assert.LessOrEqual(t, r.AStarVisited, r.DijkstraVisited)
		assert.InDelta(t, (r.DijkstraVisited-r.AStarVisited)/r.DijkstraVisited*100, r.EfficiencyGainPercent, 1e-9)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(),
		"Trial,Distance_KM,Dijkstra_Visited,AStar_Visited,Efficiency_Gain_Percent,Time_AStar_MS\n"))

	table, err := Read(&buf, LoadOptions{StrictDistance: true})
	require.NoError(t, err)
	require.Equal(t, len(rows), table.Len())
	assert.Equal(t, rows[7].DistanceKM, table.Trials[7].DistanceKM)
	assert.Equal(t, 7, table.Trials[7].Index)
}
