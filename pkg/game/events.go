package game

import (
	"github.com/golangdaddy/formula/pkg/audio"
	"github.com/golangdaddy/formula/pkg/race"
	"github.com/rs/zerolog"
)

// CueFor picks the sound for a race event. Bot laps stay silent.
func CueFor(e race.Event) (audio.Cue, bool) {
	switch e.Kind {
	case race.EventCountdownTick:
		if e.Countdown > 0 {
			return audio.CueCountdown, true
		}
		return audio.CueGo, true
	case race.EventCheckpointPassed:
		return audio.CueCheckpoint, true
	case race.EventLapCompleted:
		if e.IsPlayer {
			return audio.CueLap, true
		}
	case race.EventRaceFinished:
		if e.IsPlayer {
			return audio.CueWin, true
		}
		return audio.CueLose, true
	}
	return 0, false
}

// logEvent writes one race event at a level matching its weight
func logEvent(log zerolog.Logger, e race.Event) {
	var ev *zerolog.Event
	switch e.Kind {
	case race.EventRaceStarted, race.EventRaceFinished, race.EventLapCompleted:
		ev = log.Info()
	default:
		ev = log.Debug()
	}
	if e.Racer != "" {
		ev = ev.Str("racer", e.Racer).Bool("player", e.IsPlayer)
	}
	switch e.Kind {
	case race.EventCountdownTick:
		ev = ev.Int("countdown", e.Countdown)
	case race.EventCheckpointPassed:
		ev = ev.Int("checkpoint", e.Checkpoint)
	case race.EventLapCompleted:
		ev = ev.Int("lap", e.Lap)
		if e.LapTime > 0 {
			ev = ev.Dur("lapTime", e.LapTime)
		}
	case race.EventRaceFinished:
		ev = ev.Str("result", e.Message)
	}
	ev.Msg(e.Kind.String())
}
