package race

import (
	"fmt"
	"time"
)

// WinMessage formats the result banner for a winner
func WinMessage(name string) string {
	return fmt.Sprintf("%s WINS!", name)
}

// Session owns everything on track and is the only thing that mutates it.
// Drive it with one Update per tick and read Snapshot for drawing.
type Session struct {
	settings Settings
	path     Path
	mask     Mask

	player  *PlayerCar
	bots    []*BotCar
	tracker *CheckpointTracker
	state   *StateMachine
	clock   LapClock

	events []Event
}

// NewSession builds a race on path. The player starts on the first waypoint
// and the checkpoints are the waypoints themselves. A nil mask never
// penalises anyone.
func NewSession(settings Settings, path Path, mask Mask, playerBody, botBody Size) *Session {
	settings = settings.withDefaults()
	if mask == nil {
		mask = OpenMask{}
	}

	s := &Session{
		settings: settings,
		path:     path,
		mask:     mask,
		player:   NewPlayerCar(settings.PlayerName, path.StartPose(), playerBody, settings.Player),
		tracker:  NewCheckpointTracker(path, settings.CheckpointRadius),
		state:    NewStateMachine(settings.CountdownFrom, settings.CountdownInterval),
	}
	for _, spec := range settings.Bots {
		s.bots = append(s.bots, NewBotCar(spec.Name, path, botBody, spec.CruiseSpeed, settings.Bot))
	}
	return s
}

// Settings returns the constants the session was built with
func (s *Session) Settings() Settings { return s.settings }

// Path returns the waypoint loop shared by bots and checkpoints
func (s *Session) Path() Path { return s.path }

// Player returns the player car
func (s *Session) Player() *PlayerCar { return s.player }

// Bots returns the bot roster in race order
func (s *Session) Bots() []*BotCar { return s.bots }

// Tracker returns the player's checkpoint tracker
func (s *Session) Tracker() *CheckpointTracker { return s.tracker }

// Phase returns the current race phase
func (s *Session) Phase() Phase { return s.state.Phase() }

// Events returns what happened during the last Update
func (s *Session) Events() []Event { return s.events }

// RestartRace puts every car back on the grid and starts a new countdown
func (s *Session) RestartRace() {
	s.state.Restart()
	s.player.Reset()
	for _, b := range s.bots {
		b.Reset()
	}
	s.tracker.Reset()
	s.clock.Reset()
	s.events = s.events[:0]
}

// Update advances the race by one tick
func (s *Session) Update(in Intents, dt time.Duration) {
	s.events = s.events[:0]

	// Gate on the phase at the start of the tick, so the tick that ends the
	// countdown still holds everyone on the grid
	movement := s.state.MovementEnabled()

	if stepped, started := s.state.Tick(dt); started {
		s.emit(Event{Kind: EventRaceStarted})
	} else if stepped {
		s.emit(Event{Kind: EventCountdownTick, Countdown: s.state.CountdownValue()})
	}
	if movement {
		s.clock.Tick(dt)
	}

	s.player.Update(in, s.mask, movement)
	for _, b := range s.bots {
		lap := b.Lap()
		b.Update(movement)
		if b.Lap() > lap {
			s.emit(Event{Kind: EventLapCompleted, Racer: b.Name(), Lap: b.Lap()})
		}
	}

	if s.state.Phase() == Racing {
		s.checkPlayerProgress()
		s.evaluateWin()
	}
}

func (s *Session) checkPlayerProgress() {
	if s.player.Lap() >= s.settings.TotalLaps {
		return
	}
	res := s.tracker.Check(s.player)
	if !res.Passed {
		return
	}
	s.emit(Event{Kind: EventCheckpointPassed, Racer: s.player.Name(), IsPlayer: true, Checkpoint: res.Index})
	if res.LapCompleted {
		s.emit(Event{
			Kind:     EventLapCompleted,
			Racer:    s.player.Name(),
			IsPlayer: true,
			Lap:      s.player.Lap(),
			LapTime:  s.clock.Lap(),
		})
	}
}

// evaluateWin ends the race once someone has done every lap. The player is
// checked first, then bots in roster order.
func (s *Session) evaluateWin() {
	total := s.settings.TotalLaps
	if s.player.Lap() >= total {
		s.finish(s.player.Name(), true)
		return
	}
	for _, b := range s.bots {
		if b.Lap() >= total {
			s.finish(b.Name(), false)
			return
		}
	}
}

func (s *Session) finish(name string, player bool) {
	msg := WinMessage(name)
	if s.state.Finish(msg) {
		s.emit(Event{Kind: EventRaceFinished, Racer: name, IsPlayer: player, Message: msg})
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
