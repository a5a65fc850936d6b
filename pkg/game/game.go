package game

import (
	"time"

	"github.com/golangdaddy/formula/pkg/audio"
	"github.com/golangdaddy/formula/pkg/config"
	"github.com/golangdaddy/formula/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg       config.Config
	log       zerolog.Logger
	sound     *audio.Player
	resources *Resources

	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame loads the track and cars and opens on the title screen. sound may
// be nil.
func NewGame(cfg config.Config, log zerolog.Logger, sound *audio.Player) *Game {
	g := &Game{
		cfg:       cfg,
		log:       log,
		sound:     sound,
		resources: LoadResources(cfg.Assets, log),
	}
	g.showTitle()
	return g
}

// TickDuration is the simulation step for a tick rate
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.startRace)
}

func (g *Game) startRace() {
	g.currentScreen = NewRaceScreen(
		g.cfg.RaceSettings(),
		g.resources,
		TickDuration(g.cfg.TickRate),
		g.log,
		g.sound,
		g.showTitle,
	)
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
