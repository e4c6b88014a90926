package frontier

import (
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection exports the scenario as GeoJSON: one MultiPoint per cloud,
// the barrier as a LineString and each landmark as a Point.
func (s *Scenario) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	radial := geojson.NewMultiPointFeature(coords(s.Radial)...)
	radial.SetProperty("name", "dijkstra_frontier")
	radial.SetProperty("kind", "radial")
	radial.SetProperty("count", len(s.Radial))
	fc.AddFeature(radial)

	corridor := geojson.NewMultiPointFeature(coords(s.Corridor)...)
	corridor.SetProperty("name", "astar_corridor")
	corridor.SetProperty("kind", "corridor")
	corridor.SetProperty("count", len(s.Corridor))
	fc.AddFeature(corridor)

	barrier := geojson.NewLineStringFeature(coords(s.Barrier))
	barrier.SetProperty("name", "gomti_river_barrier")
	fc.AddFeature(barrier)

	for _, lm := range []struct {
		name string
		p    Point
	}{
		{"source", s.Source},
		{"goal", s.Goal},
		{"bridge_gateway", s.Bridge},
	} {
		f := geojson.NewPointFeature([]float64{lm.p.X, lm.p.Y})
		f.SetProperty("name", lm.name)
		fc.AddFeature(f)
	}
	return fc
}

// WriteGeoJSON encodes the scenario's feature collection to w.
func (s *Scenario) WriteGeoJSON(w io.Writer) error {
	data, err := s.FeatureCollection().MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal frontier geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write frontier geojson: %w", err)
	}
	return nil
}

func coords(points []Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}
