package race

import "math"

// DefaultHeading is used whenever no forward direction can be derived
const DefaultHeading = 0.0

// Point is a position in track image coordinates
type Point struct {
	X, Y float64
}

// Size is a vehicle body size. Width runs along the heading axis.
type Size struct {
	Width, Height float64
}

// Pose is a position plus heading in degrees, normalized to [0,360)
type Pose struct {
	X, Y    float64
	Heading float64
}

// Position returns the pose location as a Point
func (p Pose) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// NormalizeHeading wraps an angle in degrees into [0,360)
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod of a tiny negative can round back up to 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// AngleDiff returns the shortest signed turn from one heading to another, in (-180,180]
func AngleDiff(from, to float64) float64 {
	diff := math.Mod(to-from, 360)
	for diff <= -180 {
		diff += 360
	}
	for diff > 180 {
		diff -= 360
	}
	return diff
}

// Bearing returns the heading in degrees pointing from a to b.
// Coincident points have no direction and yield DefaultHeading.
func Bearing(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return DefaultHeading
	}
	return NormalizeHeading(math.Atan2(dy, dx) * 180 / math.Pi)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Kinematics is the pose and speed shared by every car type
type Kinematics struct {
	Pose  Pose
	Speed float64 // pixels per tick, negative when reversing

	// MaxTurn caps the heading change per tick in degrees. Zero means no cap.
	MaxTurn float64
}

// Turn rotates the heading by delta degrees, clamped to MaxTurn
func (k *Kinematics) Turn(delta float64) {
	if k.MaxTurn > 0 {
		delta = clamp(delta, -k.MaxTurn, k.MaxTurn)
	}
	k.Pose.Heading = NormalizeHeading(k.Pose.Heading + delta)
}

// TurnToward rotates toward a target heading by at most gain of the remaining difference
func (k *Kinematics) TurnToward(target, gain float64) {
	k.Turn(AngleDiff(k.Pose.Heading, target) * gain)
}

// Advance moves the pose along the current heading by the current speed
func (k *Kinematics) Advance() {
	rad := k.Pose.Heading * math.Pi / 180
	k.Pose.X += k.Speed * math.Cos(rad)
	k.Pose.Y += k.Speed * math.Sin(rad)
}

// decayToward moves v toward zero by step, snapping to zero once within one step
func decayToward(v, step float64) float64 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
