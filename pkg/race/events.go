package race

import "time"

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventCountdownTick EventKind = iota
	EventRaceStarted
	EventCheckpointPassed
	EventLapCompleted
	EventRaceFinished
)

func (k EventKind) String() string {
	switch k {
	case EventCountdownTick:
		return "countdown"
	case EventRaceStarted:
		return "race-started"
	case EventCheckpointPassed:
		return "checkpoint"
	case EventLapCompleted:
		return "lap"
	case EventRaceFinished:
		return "finished"
	}
	return "unknown"
}

// Event is raised by Session.Update for audio and logging
type Event struct {
	Kind EventKind

	Racer    string
	IsPlayer bool

	// Countdown is the new countdown value (0 is GO)
	Countdown int
	// Checkpoint is the index passed
	Checkpoint int
	// Lap is the lap just completed
	Lap int
	// LapTime is set for player laps
	LapTime time.Duration
	// Message is the finish result
	Message string
}
