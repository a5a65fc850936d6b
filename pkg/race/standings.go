package race

import (
	"sort"
	"time"
)

// LapClock times the player's laps while the race is running
type LapClock struct {
	elapsed  time.Duration
	lapStart time.Duration
	last     time.Duration
	best     time.Duration
	laps     []time.Duration
}

// Reset clears all times
func (c *LapClock) Reset() {
	*c = LapClock{}
}

// Tick adds dt to the race time
func (c *LapClock) Tick(dt time.Duration) {
	c.elapsed += dt
}

// Lap closes the current lap and returns its time
func (c *LapClock) Lap() time.Duration {
	t := c.elapsed - c.lapStart
	c.lapStart = c.elapsed
	c.last = t
	if c.best == 0 || t < c.best {
		c.best = t
	}
	c.laps = append(c.laps, t)
	return t
}

// Elapsed is the total racing time
func (c *LapClock) Elapsed() time.Duration { return c.elapsed }

// Current is the time spent on the lap in progress
func (c *LapClock) Current() time.Duration { return c.elapsed - c.lapStart }

// Last is the most recent lap time, zero before the first lap
func (c *LapClock) Last() time.Duration { return c.last }

// Best is the fastest lap time, zero before the first lap
func (c *LapClock) Best() time.Duration { return c.best }

// Laps returns a copy of every completed lap time
func (c *LapClock) Laps() []time.Duration {
	return append([]time.Duration(nil), c.laps...)
}

// Standing is one racer's place in the running order
type Standing struct {
	Name     string
	IsPlayer bool
	Position int // 1-based
	Lap      int

	// Passed counts waypoints passed over the whole race
	Passed int
	// ToNext is the distance to the next waypoint
	ToNext float64
}

// rankStandings orders racers by progress and assigns positions. Racers with
// equal progress share a position.
func rankStandings(s []Standing) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Passed != s[j].Passed {
			return s[i].Passed > s[j].Passed
		}
		return s[i].ToNext < s[j].ToNext
	})
	for i := range s {
		s[i].Position = i + 1
		if i > 0 && s[i].Passed == s[i-1].Passed && s[i].ToNext == s[i-1].ToNext {
			s[i].Position = s[i-1].Position
		}
	}
}
