package race

import (
	"strconv"
	"time"
)

// Phase is the stage the race is in
type Phase int

const (
	Countdown Phase = iota
	Racing
	RaceOver
)

func (p Phase) String() string {
	switch p {
	case Countdown:
		return "countdown"
	case Racing:
		return "racing"
	case RaceOver:
		return "race-over"
	}
	return "unknown"
}

// GoMessage is shown for the final countdown interval
const GoMessage = "GO!"

// StateMachine sequences countdown, racing and the finish
type StateMachine struct {
	phase Phase

	countdownFrom  int
	interval       time.Duration
	countdownValue int
	accumulator    time.Duration

	message string
	result  string
}

// NewStateMachine starts a countdown from `from` ticking once per interval
func NewStateMachine(from int, interval time.Duration) *StateMachine {
	sm := &StateMachine{countdownFrom: from, interval: interval}
	sm.Restart()
	return sm
}

// Restart re-enters the countdown from the top, whatever the current phase
func (sm *StateMachine) Restart() {
	sm.phase = Countdown
	sm.countdownValue = sm.countdownFrom
	sm.accumulator = 0
	sm.message = strconv.Itoa(sm.countdownValue)
	sm.result = ""
}

// Phase returns the current phase
func (sm *StateMachine) Phase() Phase { return sm.phase }

// MovementEnabled is true only while racing
func (sm *StateMachine) MovementEnabled() bool { return sm.phase == Racing }

// CountdownValue is the number currently counted down to
func (sm *StateMachine) CountdownValue() int { return sm.countdownValue }

// Message is the countdown text, empty once racing has started
func (sm *StateMachine) Message() string { return sm.message }

// Result is the finish message, empty until the race is over
func (sm *StateMachine) Result() string { return sm.result }

// Tick advances the countdown by dt. It reports whether the countdown value
// changed and whether this tick started the race.
func (sm *StateMachine) Tick(dt time.Duration) (stepped, started bool) {
	if sm.phase != Countdown {
		return false, false
	}
	sm.accumulator += dt
	if sm.accumulator < sm.interval {
		return false, false
	}
	sm.accumulator -= sm.interval
	sm.countdownValue--

	switch {
	case sm.countdownValue > 0:
		sm.message = strconv.Itoa(sm.countdownValue)
	case sm.countdownValue == 0:
		sm.message = GoMessage
	default:
		sm.phase = Racing
		sm.message = ""
		return true, true
	}
	return true, false
}

// Finish ends the race with a result message. It only applies while racing.
func (sm *StateMachine) Finish(result string) bool {
	if sm.phase != Racing {
		return false
	}
	sm.phase = RaceOver
	sm.result = result
	return true
}
