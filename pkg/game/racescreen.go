package game

import (
	"time"

	"github.com/golangdaddy/formula/pkg/audio"
	"github.com/golangdaddy/formula/pkg/input"
	"github.com/golangdaddy/formula/pkg/race"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// RaceScreen runs one race session and draws it
type RaceScreen struct {
	session *race.Session
	res     *Resources
	dt      time.Duration

	raceID  uuid.UUID
	started time.Time
	log     zerolog.Logger
	sound   *audio.Player

	onExit func() // Callback when the player leaves the race
}

// NewRaceScreen builds a session on the loaded track and starts the countdown
func NewRaceScreen(settings race.Settings, res *Resources, dt time.Duration, log zerolog.Logger, sound *audio.Player, onExit func()) *RaceScreen {
	rs := &RaceScreen{
		session: race.NewSession(settings, res.Track.Path, res.Track.Mask, res.PlayerCar.Size, res.BotCar.Size),
		res:     res,
		dt:      dt,
		log:     log,
		sound:   sound,
		onExit:  onExit,
	}
	rs.beginRace()
	return rs
}

// Session exposes the running race
func (rs *RaceScreen) Session() *race.Session { return rs.session }

// RaceID identifies the current race in the logs
func (rs *RaceScreen) RaceID() uuid.UUID { return rs.raceID }

func (rs *RaceScreen) beginRace() {
	rs.raceID = uuid.New()
	rs.started = time.Now()
	rs.log.Info().
		Stringer("race", rs.raceID).
		Int("laps", rs.session.Settings().TotalLaps).
		Int("bots", len(rs.session.Bots())).
		Msg("countdown")
	rs.sound.Play(audio.CueCountdown)
}

// Restart puts the race back on the grid. Only offered once the race is over.
func (rs *RaceScreen) Restart() bool {
	if rs.session.Phase() != race.RaceOver {
		return false
	}
	rs.session.RestartRace()
	rs.beginRace()
	return true
}

// Update advances the race by one tick
func (rs *RaceScreen) Update() error {
	if input.BackPressed() {
		rs.log.Info().Stringer("race", rs.raceID).Msg("left race")
		if rs.onExit != nil {
			rs.onExit()
		}
		return nil
	}
	if input.ConfirmPressed() && rs.Restart() {
		return nil
	}

	rs.session.Update(input.Poll(), rs.dt)
	rs.handleEvents(rs.session.Events())
	return nil
}

func (rs *RaceScreen) handleEvents(events []race.Event) {
	log := rs.log.With().Stringer("race", rs.raceID).Logger()
	for _, e := range events {
		logEvent(log, e)
		if cue, ok := CueFor(e); ok {
			rs.sound.Play(cue)
		}
		if e.Kind == race.EventRaceFinished {
			log.Info().Dur("wallTime", time.Since(rs.started)).Msg("race over")
		}
	}
}

// Draw renders the track, cars and HUD
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	snap := rs.session.Snapshot()
	trackImg, playerImg, botImg := rs.res.images()

	screen.DrawImage(trackImg, nil)
	if snap.Checkpoint != nil {
		drawCheckpoint(screen, *snap.Checkpoint)
	}
	for _, b := range snap.Bots {
		drawCar(screen, botImg, b)
	}
	drawCar(screen, playerImg, snap.Player)

	drawHUD(screen, snap, rs.res.Warnings)
	drawBanner(screen, snap)
}
