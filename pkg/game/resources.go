package game

import (
	"errors"
	"image/color"

	"github.com/golangdaddy/formula/pkg/assets"
	"github.com/golangdaddy/formula/pkg/config"
	"github.com/golangdaddy/formula/pkg/track"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Resources are the decoded track and car images, loaded once per run
type Resources struct {
	Track     *track.Track
	PlayerCar assets.Sprite
	BotCar    assets.Sprite

	// Warnings describe every fallback taken while loading
	Warnings []string

	trackImage  *ebiten.Image
	playerImage *ebiten.Image
	botImage    *ebiten.Image
}

// LoadResources loads everything the race screen draws. It never fails;
// missing files are replaced and reported in Warnings.
func LoadResources(cfg config.AssetsConfig, log zerolog.Logger) *Resources {
	r := &Resources{}

	t, err := track.Load(cfg.Track, cfg.Path)
	if err != nil {
		log.Warn().Err(err).Str("track", cfg.Track).Str("path", cfg.Path).Msg("track fallback in use")
		r.Warnings = append(r.Warnings, trackWarnings(err, cfg)...)
	}
	r.Track = t
	log.Info().
		Int("waypoints", t.Path.Len()).
		Float64("lapLength", track.LapLength(t.Path)).
		Bool("placeholder", t.Placeholder).
		Msg("track ready")

	r.PlayerCar = r.loadSprite(cfg.PlayerCar, assets.PlayerColor, log)
	r.BotCar = r.loadSprite(cfg.BotCar, assets.BotColor, log)
	return r
}

// trackWarnings gives one HUD line per track asset that fell back
func trackWarnings(err error, cfg config.AssetsConfig) []string {
	var lines []string
	if errors.Is(err, track.ErrTrackImage) {
		lines = append(lines, "Track not loaded: "+cfg.Track)
	}
	if errors.Is(err, track.ErrRacingLine) {
		lines = append(lines, "Racing line not loaded: "+cfg.Path)
	}
	return lines
}

func (r *Resources) loadSprite(file string, body color.RGBA, log zerolog.Logger) assets.Sprite {
	s, err := assets.LoadSprite(file, body)
	if err != nil {
		log.Warn().Err(err).Str("file", file).Msg("car sprite fallback in use")
		r.Warnings = append(r.Warnings, "Car image not loaded: "+file)
	}
	return s
}

// images converts the decoded images to GPU images on first use
func (r *Resources) images() (trackImg, playerImg, botImg *ebiten.Image) {
	if r.trackImage == nil {
		r.trackImage = ebiten.NewImageFromImage(r.Track.Image)
		r.playerImage = ebiten.NewImageFromImage(r.PlayerCar.Image)
		r.botImage = ebiten.NewImageFromImage(r.BotCar.Image)
	}
	return r.trackImage, r.playerImage, r.botImage
}
