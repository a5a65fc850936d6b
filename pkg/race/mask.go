package race

// Surface classifies a single track pixel
type Surface int

const (
	OutOfBounds Surface = iota
	Drivable
	OffTrack
)

func (s Surface) String() string {
	switch s {
	case Drivable:
		return "drivable"
	case OffTrack:
		return "off-track"
	default:
		return "out-of-bounds"
	}
}

// Mask answers drivable-area lookups by integer pixel coordinate.
// Implementations are read-only once built.
type Mask interface {
	Classify(x, y int) Surface
}

// OpenMask is used when no track image could be loaded. Every lookup is out
// of bounds, so vehicles are never penalised.
type OpenMask struct{}

// Classify always reports OutOfBounds
func (OpenMask) Classify(x, y int) Surface {
	return OutOfBounds
}
