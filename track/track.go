// Package track holds the immutable track model: curvature/length segments
// with their obstacles, the three built-in maps, and the overhead polyline
// derivation used only by the minimap.
package track

import (
	"math"

	"github.com/lixenwraith/term-racer/constants"
)

// Obstacle sits at a fixed position inside its segment. Immutable once placed.
type Obstacle struct {
	SegDistance float64 // Distance from the segment start
	OffsetX     float64 // Lateral center in [-1, 1]
	Width       float64 // Width in normalized road coordinates
}

// Left and Right are the obstacle's lateral extent
func (o Obstacle) Left() float64  { return o.OffsetX - o.Width/2 }
func (o Obstacle) Right() float64 { return o.OffsetX + o.Width/2 }

// Segment is a contiguous stretch of track with one target curvature
type Segment struct {
	Curvature float64
	Length    float64
	Obstacles []Obstacle
}

// Track is an ordered segment sequence, read-only during a race
type Track struct {
	Segments []Segment
	total    float64
}

// New computes the cached total length for a segment list
func New(segments []Segment) *Track {
	t := &Track{Segments: segments}
	for _, s := range segments {
		t.total += s.Length
	}
	return t
}

// TotalLength returns the sum of all segment lengths
func (t *Track) TotalLength() float64 {
	return t.total
}

// Locate finds the segment containing the given distance, returning its
// index and the remaining distance inside it. Past the end it returns
// (len(Segments), 0); the callers treat that as open road.
func (t *Track) Locate(distance float64) (int, float64) {
	pos := distance
	for i, seg := range t.Segments {
		if pos < seg.Length {
			return i, pos
		}
		pos -= seg.Length
	}
	return len(t.Segments), 0
}

// CurvatureAt returns the target curvature at the given distance, zero past
// the track end
func (t *Track) CurvatureAt(distance float64) float64 {
	i, _ := t.Locate(distance)
	if i >= len(t.Segments) {
		return 0
	}
	return t.Segments[i].Curvature
}

// Point is one overhead map vertex
type Point struct {
	X, Y float64
}

// Polyline walks the segments in fixed distance steps, integrating heading
// from curvature and dead-reckoning into (x, y). Purely a rendering
// artifact: physics keeps its own curvature smoothing and never reads this.
func (t *Track) Polyline() []Point {
	var points []Point
	var x, y, angle float64
	for _, seg := range t.Segments {
		for d := 0.0; d < seg.Length; d += constants.PolylineStep {
			angle += seg.Curvature * constants.PolylineStep * constants.PolylineCurveGain
			x += math.Sin(angle) * constants.PolylineStep
			y += math.Cos(angle) * constants.PolylineStep
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// GlobalObstacles returns every obstacle with its distance from the track
// start, in track order. Used by the warning scan and the minimap.
func (t *Track) GlobalObstacles() []Obstacle {
	var out []Obstacle
	var acc float64
	for _, seg := range t.Segments {
		for _, obs := range seg.Obstacles {
			out = append(out, Obstacle{
				SegDistance: acc + obs.SegDistance,
				OffsetX:     obs.OffsetX,
				Width:       obs.Width,
			})
		}
		acc += seg.Length
	}
	return out
}
