// Package frontier fabricates the illustrative search frontiers shown in the
// Gomti river figure: a radial cloud for uninformed expansion and a two-leg
// corridor through a bridge for heuristic-guided expansion. None of it is
// measured data.
package frontier

import (
	"math"
	"math/rand"

	"frontier-report/internal/stats"
)

// Point is a lon/lat pair in degrees.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) Lerp(q Point, t float64) Point { return p.Add(q.Sub(p).Scale(t)) }

// Landmarks of the Lucknow central scenario.
var (
	Source = Point{80.937, 26.865} // Lucknow University
	Goal   = Point{81.020, 26.840} // Gomti Nagar
	Bridge = Point{80.975, 26.855} // Nishatganj bridge
)

const (
	barrierStartX  = 80.95
	barrierEndX    = 80.99
	barrierSamples = 100
	barrierBaseY   = 26.88
	barrierSlope   = -0.5
	barrierAmp     = 0.005
	barrierFreq    = 50.0
)

// Barrier returns the river polyline: a linear trend plus a sinusoidal wiggle.
func Barrier() []Point {
	xs := stats.Linspace(barrierStartX, barrierEndX, barrierSamples)
	out := make([]Point, len(xs))
	for i, x := range xs {
		dx := x - barrierStartX
		out[i] = Point{X: x, Y: barrierBaseY + barrierSlope*dx + math.Sin(dx*barrierFreq)*barrierAmp}
	}
	return out
}

// Params controls the synthetic clouds.
type Params struct {
	Seed           int64
	RadialPoints   int
	RadialSigma    float64
	CorridorPoints int
	CorridorSplit  float64 // probability of the source→bridge leg
	CorridorNoise  float64
}

func DefaultParams() Params {
	return Params{
		Seed:           42,
		RadialPoints:   6000,
		RadialSigma:    0.045,
		CorridorPoints: 1500,
		CorridorSplit:  0.6,
		CorridorNoise:  0.004,
	}
}

// Radial draws n points from an isotropic normal centred on center. X and Y
// are drawn in that order for each point.
func Radial(rng *rand.Rand, center Point, sigma float64, n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{
			X: center.X + rng.NormFloat64()*sigma,
			Y: center.Y + rng.NormFloat64()*sigma,
		}
	}
	return out
}

// Leg identifies which corridor segment a point was interpolated on.
type Leg int

const (
	LegToBridge Leg = iota
	LegToGoal
)

// Corridor draws n points along source→bridge (probability split) or
// bridge→goal, each at a uniform position on its leg plus isotropic noise.
func Corridor(rng *rand.Rand, source, bridge, goal Point, split, noise float64, n int) ([]Point, []Leg) {
	points := make([]Point, n)
	legs := make([]Leg, n)
	for i := range points {
		var p Point
		if rng.Float64() < split {
			p = source.Lerp(bridge, rng.Float64())
			legs[i] = LegToBridge
		} else {
			p = bridge.Lerp(goal, rng.Float64())
			legs[i] = LegToGoal
		}
		p.X += rng.NormFloat64() * noise
		p.Y += rng.NormFloat64() * noise
		points[i] = p
	}
	return points, legs
}

// Scenario bundles both clouds with the shared geometry.
type Scenario struct {
	Source, Goal, Bridge Point
	Barrier              []Point
	Radial               []Point
	Corridor             []Point
	Legs                 []Leg
}

// Simulate builds both clouds from one generator seeded with p.Seed; the
// corridor continues the stream after the radial cloud.
func Simulate(p Params) *Scenario {
	rng := rand.New(rand.NewSource(p.Seed))
	radial := Radial(rng, Source, p.RadialSigma, p.RadialPoints)
	corridor, legs := Corridor(rng, Source, Bridge, Goal, p.CorridorSplit, p.CorridorNoise, p.CorridorPoints)
	return &Scenario{
		Source:   Source,
		Goal:     Goal,
		Bridge:   Bridge,
		Barrier:  Barrier(),
		Radial:   radial,
		Corridor: corridor,
		Legs:     legs,
	}
}
