package main

import (
	"os"

	"github.com/golangdaddy/formula/pkg/audio"
	"github.com/golangdaddy/formula/pkg/config"
	"github.com/golangdaddy/formula/pkg/game"
	"github.com/golangdaddy/formula/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	flags := pflag.NewFlagSet("formula", pflag.ExitOnError)
	configDir := flags.String("config-dir", ".", "directory holding "+config.FileName)
	flags.String("log-level", "info", "trace, debug, info, warn or error")
	flags.Int("tick-rate", 50, "simulation ticks per second")
	flags.Bool("mute", false, "disable sound")
	_ = flags.Parse(os.Args[1:])

	cfgErr := config.Load(*configDir)

	// flags win over the file, but only when given
	for key, flag := range map[string]string{
		"logLevel": "log-level",
		"tickRate": "tick-rate",
	} {
		if f := flags.Lookup(flag); f.Changed {
			_ = viper.BindPFlag(key, f)
		}
	}

	log := logging.Setup(os.Stdout, viper.GetString("logLevel"))
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Str("dir", *configDir).Msg("using default configuration")
	}

	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 50
	}
	if mute, _ := flags.GetBool("mute"); mute {
		cfg.Audio.Enabled = false
	}

	var sound *audio.Player
	if cfg.Audio.Enabled {
		sound, err = audio.NewPlayer(cfg.Audio.Volume, log)
		if err != nil {
			log.Warn().Err(err).Msg("sound disabled")
		}
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	log.Info().Int("tps", cfg.TickRate).Int("bots", len(cfg.Bots)).Msg("starting")
	if err := ebiten.RunGame(game.NewGame(cfg, log, sound)); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}
