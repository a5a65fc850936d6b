package race

import (
	"errors"
	"fmt"
)

// ErrDegeneratePath is reported when a path has fewer than two points
var ErrDegeneratePath = errors.New("path needs at least two points")

// defaultPathPoints is used in place of a degenerate path so bots and
// checkpoints always have somewhere to go
var defaultPathPoints = []Point{{X: 100, Y: 100}, {X: 200, Y: 100}}

// Path is an ordered, closed loop of waypoints. It is immutable once built
// and can be shared freely between bots and the checkpoint tracker.
type Path struct {
	points []Point
}

// NewPath copies points into a Path. Fewer than two points fall back to the
// default path and ErrDegeneratePath is returned alongside it.
func NewPath(points []Point) (Path, error) {
	if len(points) < 2 {
		return Path{points: append([]Point(nil), defaultPathPoints...)},
			fmt.Errorf("%w: got %d", ErrDegeneratePath, len(points))
	}
	return Path{points: append([]Point(nil), points...)}, nil
}

// MustPath is NewPath for literal paths known to be valid
func MustPath(points []Point) Path {
	p, err := NewPath(points)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of waypoints
func (p Path) Len() int {
	if len(p.points) == 0 {
		return len(defaultPathPoints)
	}
	return len(p.points)
}

// At returns waypoint i, wrapping around the loop
func (p Path) At(i int) Point {
	pts := p.points
	if len(pts) == 0 {
		pts = defaultPathPoints
	}
	i %= len(pts)
	if i < 0 {
		i += len(pts)
	}
	return pts[i]
}

// Points returns a copy of the waypoints
func (p Path) Points() []Point {
	out := make([]Point, p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// StartPose is the pose at the first waypoint facing the second
func (p Path) StartPose() Pose {
	first := p.At(0)
	return Pose{X: first.X, Y: first.Y, Heading: Bearing(first, p.At(1))}
}
