package race

import "strings"

// Intents is the set of directional controls held during a tick
type Intents uint8

const (
	Accelerate Intents = 1 << iota
	Reverse
	SteerLeft
	SteerRight
)

// NoIntents means the driver is coasting
const NoIntents Intents = 0

// Has reports whether every intent in want is held
func (i Intents) Has(want Intents) bool {
	return want != 0 && i&want == want
}

// With returns the set with the given intents added
func (i Intents) With(more Intents) Intents {
	return i | more
}

func (i Intents) String() string {
	if i == NoIntents {
		return "coast"
	}
	var parts []string
	for _, n := range []struct {
		bit  Intents
		name string
	}{
		{Accelerate, "accelerate"},
		{Reverse, "reverse"},
		{SteerLeft, "left"},
		{SteerRight, "right"},
	} {
		if i.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}
