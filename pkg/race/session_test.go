package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carBody = Size{Width: 30, Height: 15}

func newTestSession(t *testing.T, bots ...BotSpec) *Session {
	t.Helper()
	settings := DefaultSettings()
	if len(bots) > 0 {
		settings.Bots = bots
	}
	return NewSession(settings, squareCheckpoints, allDrivable, carBody, carBody)
}

// runCountdown ticks until the race starts and returns the events of the start tick
func runCountdown(t *testing.T, s *Session, in Intents) []Event {
	t.Helper()
	for i := 0; i < 1000; i++ {
		s.Update(in, tick)
		if s.Phase() == Racing {
			return s.Events()
		}
	}
	require.FailNow(t, "race never started")
	return nil
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSession_CountdownHoldsEveryoneOnTheGrid(t *testing.T) {
	s := newTestSession(t)
	start := s.Player().Pose()
	botStart := s.Bots()[0].Pose()

	var countdowns []int
	for i := 0; i < 199; i++ {
		s.Update(Accelerate|SteerLeft, tick)
		for _, e := range s.Events() {
			if e.Kind == EventCountdownTick {
				countdowns = append(countdowns, e.Countdown)
			}
		}
		require.Equal(t, Countdown, s.Phase())
	}

	assert.Equal(t, []int{2, 1, 0}, countdowns)
	assert.Equal(t, start, s.Player().Pose())
	assert.Equal(t, 0.0, s.Player().Speed())
	assert.Equal(t, botStart, s.Bots()[0].Pose())
	assert.Equal(t, "GO!", s.Snapshot().Message())
}

func TestSession_StartTick(t *testing.T) {
	s := newTestSession(t)
	events := runCountdown(t, s, Accelerate)

	assert.Equal(t, 1, countEvents(events, EventRaceStarted))
	// The start tick still holds the car, but the player is sitting on
	// checkpoint 0 so it is collected straight away
	assert.Equal(t, 0.0, s.Player().Speed())
	assert.Equal(t, 1, s.Tracker().Cursor())
	assert.Equal(t, 0, s.Player().Lap())
	assert.Equal(t, 1, countEvents(events, EventCheckpointPassed))
	assert.Empty(t, s.Snapshot().Message())

	s.Update(Accelerate, tick)
	assert.InDelta(t, 0.3, s.Player().Speed(), 1e-9)
	assert.Greater(t, s.Bots()[0].Speed(), 0.0)
}

func TestSession_PlayerWinsOnTheTickTheLastLapCompletes(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)

	last := squareCheckpoints.Len() - 1
	s.player.lap = s.settings.TotalLaps - 1
	s.tracker.cursor = last
	s.player.kin.Pose = Pose{X: squareCheckpoints.At(last).X, Y: squareCheckpoints.At(last).Y}

	s.Update(NoIntents, tick)

	assert.Equal(t, RaceOver, s.Phase())
	assert.Equal(t, 3, s.Player().Lap())
	assert.Equal(t, "Player WINS!", s.Snapshot().Message())
	require.Equal(t, 1, countEvents(s.Events(), EventRaceFinished))
	assert.True(t, s.Events()[len(s.Events())-1].IsPlayer)
	assert.Nil(t, s.Snapshot().Checkpoint)

	// Sitting on a checkpoint after the finish scores nothing
	s.player.kin.Pose = Pose{X: squareCheckpoints.At(0).X, Y: squareCheckpoints.At(0).Y}
	for i := 0; i < 10; i++ {
		s.Update(NoIntents, tick)
		assert.Empty(t, s.Events())
	}
	assert.Equal(t, 0, s.Tracker().Cursor())
	assert.Equal(t, 3, s.Player().Lap())
}

func TestSession_BotWins(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)

	bot := s.bots[0]
	last := squareCheckpoints.Len() - 1
	bot.lap = s.settings.TotalLaps - 1
	bot.target = last
	bot.kin.Pose = Pose{X: squareCheckpoints.At(last).X, Y: squareCheckpoints.At(last).Y}

	s.Update(NoIntents, tick)

	assert.Equal(t, RaceOver, s.Phase())
	assert.Equal(t, "Bot WINS!", s.Snapshot().Result)
	assert.Equal(t, 1, countEvents(s.Events(), EventLapCompleted))
}

func TestSession_TiesGoToThePlayerThenRosterOrder(t *testing.T) {
	s := newTestSession(t, BotSpec{Name: "Alice", CruiseSpeed: 4.5}, BotSpec{Name: "Bruno", CruiseSpeed: 4.5})
	runCountdown(t, s, NoIntents)

	for _, b := range s.bots {
		b.lap = s.settings.TotalLaps
	}
	s.Update(NoIntents, tick)
	assert.Equal(t, "Alice WINS!", s.Snapshot().Result)

	s.RestartRace()
	runCountdown(t, s, NoIntents)
	for _, b := range s.bots {
		b.lap = s.settings.TotalLaps
	}
	s.player.lap = s.settings.TotalLaps
	s.Update(NoIntents, tick)
	assert.Equal(t, "Player WINS!", s.Snapshot().Result)
}

func TestSession_RaceOverLetsCarsRollToAStop(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)
	for i := 0; i < 20; i++ {
		s.Update(Accelerate, tick)
	}
	require.Greater(t, s.Player().Speed(), 1.0)

	s.player.lap = s.settings.TotalLaps
	s.Update(Accelerate, tick)
	require.Equal(t, RaceOver, s.Phase())

	prev := s.Player().Speed()
	for i := 0; i < 5; i++ {
		s.Update(Accelerate, tick)
		assert.Less(t, s.Player().Speed(), prev)
		assert.Equal(t, 0.0, s.Bots()[0].Speed())
		prev = s.Player().Speed()
	}
}

func TestSession_RestartRace(t *testing.T) {
	s := newTestSession(t)
	start := s.Player().Pose()
	runCountdown(t, s, NoIntents)
	for i := 0; i < 50; i++ {
		s.Update(Accelerate|SteerRight, tick)
	}
	s.player.lap = s.settings.TotalLaps
	s.Update(NoIntents, tick)
	require.Equal(t, RaceOver, s.Phase())

	s.RestartRace()
	snap := s.Snapshot()
	s.RestartRace()

	assert.Equal(t, snap, s.Snapshot())
	assert.Equal(t, Countdown, s.Phase())
	assert.Equal(t, "3", snap.Message())
	assert.Equal(t, start, s.Player().Pose())
	assert.Equal(t, 0, s.Player().Lap())
	assert.Equal(t, 0, s.Tracker().Cursor())
	assert.Equal(t, 0, s.Bots()[0].Lap())
	assert.Equal(t, time.Duration(0), snap.RaceTime)
}

func TestSession_LapTimes(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)

	n := squareCheckpoints.Len()
	lapAt := func(ticks int) time.Duration {
		for i := 0; i < ticks; i++ {
			s.Update(NoIntents, tick)
		}
		var lap time.Duration
		for i := 1; i <= n; i++ {
			p := squareCheckpoints.At(i)
			s.player.kin.Pose = Pose{X: p.X, Y: p.Y}
			s.Update(NoIntents, tick)
			for _, e := range s.Events() {
				if e.Kind == EventLapCompleted && e.IsPlayer {
					lap = e.LapTime
				}
			}
		}
		return lap
	}

	first := lapAt(100)
	second := lapAt(10)
	assert.Equal(t, 103*tick, first)
	assert.Equal(t, 14*tick, second)

	snap := s.Snapshot()
	assert.Equal(t, second, snap.LastLap)
	assert.Equal(t, second, snap.BestLap)
	assert.Equal(t, 2, snap.Player.Lap)
}

func TestSession_SnapshotIsReadOnly(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)
	for i := 0; i < 30; i++ {
		s.Update(Accelerate, tick)
	}

	a := s.Snapshot()
	b := s.Snapshot()
	assert.Equal(t, a, b)
	require.NotNil(t, a.Checkpoint)
	assert.Equal(t, 1, a.Checkpoint.Index)
	assert.Equal(t, 30.0, a.Checkpoint.Radius)
	assert.Len(t, a.Bots, 1)
	assert.Equal(t, 3, a.TotalLaps)
}

func TestSession_Standings(t *testing.T) {
	s := newTestSession(t)
	runCountdown(t, s, NoIntents)
	s.Update(NoIntents, tick)

	// Player collected checkpoint 0 on the start tick, the bot left waypoint 0
	// on its first moving tick; put the player a lap ahead
	s.player.lap = 1
	st := s.Snapshot().PlayerStanding()
	assert.Equal(t, 1, st.Position)

	s.player.lap = 0
	s.bots[0].lap = 1
	st = s.Snapshot().PlayerStanding()
	assert.Equal(t, 2, st.Position)
}

func TestSession_DegeneratePathNeverPanics(t *testing.T) {
	path, err := NewPath(nil)
	require.ErrorIs(t, err, ErrDegeneratePath)

	s := NewSession(DefaultSettings(), path, nil, Size{}, Size{})
	assert.Equal(t, PlaceholderBody(), s.Player().BodySize())
	assert.NotPanics(t, func() {
		for i := 0; i < 2000; i++ {
			s.Update(Accelerate|SteerLeft, tick)
			_ = s.Snapshot()
		}
	})
}
