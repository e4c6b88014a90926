package trials

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
)

// Synthesize fabricates n plausible trials for demos and smoke tests. Dijkstra
// effort grows with the area of the search disc, A* with a narrow corridor.
// The numbers are illustrative only.
func Synthesize(rng *rand.Rand, n int) []Trial {
	out := make([]Trial, 0, n)
	for i := 0; i < n; i++ {
		d := 0.3 + 59.7*rng.Float64()*rng.Float64()

		dijkstra := math.Round(320*d*d*(0.7+0.6*rng.Float64())) + 2
		astar := math.Round(90*math.Pow(d, 1.35)*(0.6+0.8*rng.Float64())) + 1
		if astar > dijkstra {
			astar = dijkstra
		}

		t := Trial{
			Index:                 i,
			DistanceKM:            d,
			DijkstraVisited:       dijkstra,
			AStarVisited:          astar,
			EfficiencyGainPercent: (dijkstra - astar) / dijkstra * 100,
			TimeAStarMS:           astar*0.0021 + math.Abs(rng.NormFloat64())*0.4,
		}
		t.Derive()
		out = append(out, t)
	}
	return out
}

// WriteCSV writes rows with the generator's column layout.
func WriteCSV(w io.Writer, rows []Trial) error {
	cw := csv.NewWriter(w)
	header := append([]string{ColTrial}, RequiredColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range rows {
		record := []string{
			strconv.Itoa(t.Index),
			formatFloat(t.DistanceKM),
			formatFloat(t.DijkstraVisited),
			formatFloat(t.AStarVisited),
			formatFloat(t.EfficiencyGainPercent),
			formatFloat(t.TimeAStarMS),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write trial %d: %w", t.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
