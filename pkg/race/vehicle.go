package race

// Steerable is anything with a pose the renderer and checkpoint tracker can read
type Steerable interface {
	Pose() Pose
	Speed() float64
	BodySize() Size
}

// LapTrackable is anything that counts completed laps
type LapTrackable interface {
	Lap() int
	CompleteLap()
}

// Vehicle is a car taking part in the race
type Vehicle interface {
	Steerable
	LapTrackable
	Name() string
	Reset()
}

// placeholderBody is the size used when a car sprite could not be loaded
var placeholderBody = Size{Width: 30, Height: 15}

// PlaceholderBody returns the fixed body size substituted for missing sprites
func PlaceholderBody() Size {
	return placeholderBody
}

func bodyOrPlaceholder(s Size) Size {
	if s.Width <= 0 || s.Height <= 0 {
		return placeholderBody
	}
	return s
}
