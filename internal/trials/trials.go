package trials

// Trial table: one row per Dijkstra vs A* comparison, plus the derived
// expansion factors and the distance category used by the figures.

import (
	"errors"
	"math"
)

// Column names as written by the trial generator.
const (
	ColTrial           = "Trial"
	ColDistanceKM      = "Distance_KM"
	ColDijkstraVisited = "Dijkstra_Visited"
	ColAStarVisited    = "AStar_Visited"
	ColEfficiencyGain  = "Efficiency_Gain_Percent"
	ColTimeAStarMS     = "Time_AStar_MS"
)

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = []string{
	ColDistanceKM,
	ColDijkstraVisited,
	ColAStarVisited,
	ColEfficiencyGain,
	ColTimeAStarMS,
}

var (
	ErrEmptyInput          = errors.New("trials: input has no header")
	ErrMissingColumn       = errors.New("trials: required column missing")
	ErrMalformedValue      = errors.New("trials: malformed numeric value")
	ErrNonPositiveDistance = errors.New("trials: distance must be positive")
)

// Factor is an expansion factor (nodes visited per km). Valid is false when
// the trial distance is zero or negative and the ratio is undefined.
type Factor struct {
	Value float64
	Valid bool
}

// NewFactor divides visited by distance, marking non-positive distances invalid.
func NewFactor(visited, distanceKM float64) Factor {
	if distanceKM <= 0 || math.IsNaN(distanceKM) {
		return Factor{}
	}
	return Factor{Value: visited / distanceKM, Valid: true}
}

type Trial struct {
	Index                 int
	DistanceKM            float64
	DijkstraVisited       float64
	AStarVisited          float64
	EfficiencyGainPercent float64
	TimeAStarMS           float64

	DijkstraFactor Factor
	AStarFactor    Factor
	Category       Category
}

// Derive fills the factor and category columns from the raw fields.
func (t *Trial) Derive() {
	t.DijkstraFactor = NewFactor(t.DijkstraVisited, t.DistanceKM)
	t.AStarFactor = NewFactor(t.AStarVisited, t.DistanceKM)
	t.Category = Categorize(t.DistanceKM)
}

// Table is the loaded trial set. It is not modified after loading.
type Table struct {
	Trials []Trial
	// InvalidDistance counts rows whose distance was zero or negative.
	InvalidDistance int
}

func (tb *Table) Len() int { return len(tb.Trials) }

func (tb *Table) Distances() []float64 {
	return tb.column(func(t *Trial) float64 { return t.DistanceKM })
}

func (tb *Table) DijkstraVisited() []float64 {
	return tb.column(func(t *Trial) float64 { return t.DijkstraVisited })
}

func (tb *Table) AStarVisited() []float64 {
	return tb.column(func(t *Trial) float64 { return t.AStarVisited })
}

func (tb *Table) EfficiencyGains() []float64 {
	return tb.column(func(t *Trial) float64 { return t.EfficiencyGainPercent })
}

func (tb *Table) AStarTimes() []float64 {
	return tb.column(func(t *Trial) float64 { return t.TimeAStarMS })
}

// ValidDijkstraFactors returns only the defined Dijkstra factors.
func (tb *Table) ValidDijkstraFactors() []float64 {
	return tb.validFactors(func(t *Trial) Factor { return t.DijkstraFactor })
}

// ValidAStarFactors returns only the defined A* factors.
func (tb *Table) ValidAStarFactors() []float64 {
	return tb.validFactors(func(t *Trial) Factor { return t.AStarFactor })
}

// GainsByCategory groups efficiency gains by category, in category order.
// Rows without a category are left out.
func (tb *Table) GainsByCategory() [][]float64 {
	groups := make([][]float64, len(Categories))
	for i := range tb.Trials {
		t := &tb.Trials[i]
		if t.Category == CategoryNone {
			continue
		}
		idx := int(t.Category)
		groups[idx] = append(groups[idx], t.EfficiencyGainPercent)
	}
	return groups
}

func (tb *Table) column(get func(t *Trial) float64) []float64 {
	out := make([]float64, len(tb.Trials))
	for i := range tb.Trials {
		out[i] = get(&tb.Trials[i])
	}
	return out
}

func (tb *Table) validFactors(get func(t *Trial) Factor) []float64 {
	out := make([]float64, 0, len(tb.Trials))
	for i := range tb.Trials {
		if f := get(&tb.Trials[i]); f.Valid {
			out = append(out, f.Value)
		}
	}
	return out
}
