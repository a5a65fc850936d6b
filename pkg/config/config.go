package config

import (
	"fmt"
	"time"

	"github.com/golangdaddy/formula/pkg/data"
	"github.com/golangdaddy/formula/pkg/race"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "formula.cfg.json"

// WindowConfig holds the game window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// AssetsConfig points at the track and car files
type AssetsConfig struct {
	Track     string `json:"track" mapstructure:"track"`
	PlayerCar string `json:"playerCar" mapstructure:"playerCar"`
	BotCar    string `json:"botCar" mapstructure:"botCar"`
	// Path is a JSON waypoint file; empty uses the built-in line
	Path string `json:"path" mapstructure:"path"`
}

// RaceConfig holds the race rules
type RaceConfig struct {
	TotalLaps         int           `json:"totalLaps" mapstructure:"totalLaps"`
	CheckpointRadius  float64       `json:"checkpointRadius" mapstructure:"checkpointRadius"`
	CountdownFrom     int           `json:"countdownFrom" mapstructure:"countdownFrom"`
	CountdownInterval time.Duration `json:"countdownInterval" mapstructure:"countdownInterval"`
	PlayerName        string        `json:"playerName" mapstructure:"playerName"`
}

// PlayerConfig holds the player car handling
type PlayerConfig struct {
	MaxSpeed        float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	MaxReverseSpeed float64 `json:"maxReverseSpeed" mapstructure:"maxReverseSpeed"`
	Acceleration    float64 `json:"acceleration" mapstructure:"acceleration"`
	ReverseFactor   float64 `json:"reverseFactor" mapstructure:"reverseFactor"`
	Deceleration    float64 `json:"deceleration" mapstructure:"deceleration"`
	TurnRate        float64 `json:"turnRate" mapstructure:"turnRate"`
	MaxTurn         float64 `json:"maxTurn" mapstructure:"maxTurn"`
	OffTrackPenalty float64 `json:"offTrackPenalty" mapstructure:"offTrackPenalty"`
}

// BotConfig holds the handling shared by all bots
type BotConfig struct {
	Acceleration        float64 `json:"acceleration" mapstructure:"acceleration"`
	TurnFactor          float64 `json:"turnFactor" mapstructure:"turnFactor"`
	ThresholdMultiplier float64 `json:"thresholdMultiplier" mapstructure:"thresholdMultiplier"`
	MaxTurn             float64 `json:"maxTurn" mapstructure:"maxTurn"`
}

// BotEntry is one bot in the roster
type BotEntry struct {
	Name        string  `json:"name" mapstructure:"name"`
	CruiseSpeed float64 `json:"cruiseSpeed" mapstructure:"cruiseSpeed"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// Config is the whole settings tree
type Config struct {
	LogLevel string       `json:"logLevel" mapstructure:"logLevel"`
	TickRate int          `json:"tickRate" mapstructure:"tickRate"`
	Window   WindowConfig `json:"window" mapstructure:"window"`
	Assets   AssetsConfig `json:"assets" mapstructure:"assets"`
	Race     RaceConfig   `json:"race" mapstructure:"race"`
	Player   PlayerConfig `json:"player" mapstructure:"player"`
	Bot      BotConfig    `json:"bot" mapstructure:"bot"`
	Bots     []BotEntry   `json:"bots" mapstructure:"bots"`
	Audio    AudioConfig  `json:"audio" mapstructure:"audio"`
}

// SetDefaults registers every default value
func SetDefaults() {
	d := race.DefaultSettings()

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("tickRate", 50)

	viper.SetDefault("window.width", 1600)
	viper.SetDefault("window.height", 900)
	viper.SetDefault("window.title", "Formula")

	viper.SetDefault("assets.track", "Images/race.png")
	viper.SetDefault("assets.playerCar", "Images/car.png")
	viper.SetDefault("assets.botCar", "Images/botcar.png")
	viper.SetDefault("assets.path", "")

	viper.SetDefault("race.totalLaps", d.TotalLaps)
	viper.SetDefault("race.checkpointRadius", d.CheckpointRadius)
	viper.SetDefault("race.countdownFrom", d.CountdownFrom)
	viper.SetDefault("race.countdownInterval", d.CountdownInterval.String())
	viper.SetDefault("race.playerName", d.PlayerName)

	viper.SetDefault("player.maxSpeed", d.Player.MaxSpeed)
	viper.SetDefault("player.maxReverseSpeed", d.Player.MaxReverseSpeed)
	viper.SetDefault("player.acceleration", d.Player.Acceleration)
	viper.SetDefault("player.reverseFactor", d.Player.ReverseFactor)
	viper.SetDefault("player.deceleration", d.Player.Deceleration)
	viper.SetDefault("player.turnRate", d.Player.TurnRate)
	viper.SetDefault("player.maxTurn", d.Player.MaxTurn)
	viper.SetDefault("player.offTrackPenalty", d.Player.OffTrackPenalty)

	viper.SetDefault("bot.acceleration", d.Bot.Acceleration)
	viper.SetDefault("bot.turnFactor", d.Bot.TurnFactor)
	viper.SetDefault("bot.thresholdMultiplier", d.Bot.ThresholdMultiplier)
	viper.SetDefault("bot.maxTurn", d.Bot.MaxTurn)

	bots := make([]map[string]any, 0, len(d.Bots))
	for _, b := range d.Bots {
		bots = append(bots, map[string]any{"name": b.Name, "cruiseSpeed": b.CruiseSpeed})
	}
	viper.SetDefault("bots", bots)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults stay in
// place when the file can't be read.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get decodes the current viper state
func Get() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}

// RaceSettings converts the config into race constants. Zero values are
// left for the race package to fill with its own defaults.
func (c Config) RaceSettings() race.Settings {
	s := race.Settings{
		TotalLaps:         c.Race.TotalLaps,
		CheckpointRadius:  c.Race.CheckpointRadius,
		CountdownFrom:     c.Race.CountdownFrom,
		CountdownInterval: c.Race.CountdownInterval,
		PlayerName:        c.Race.PlayerName,
		Player:            race.PlayerTuning(c.Player),
		Bot:               race.BotTuning(c.Bot),
	}
	for i, b := range c.Bots {
		if b.CruiseSpeed <= 0 {
			continue
		}
		if b.Name == "" {
			b.Name = data.DriverName(i)
		}
		s.Bots = append(s.Bots, race.BotSpec{Name: b.Name, CruiseSpeed: b.CruiseSpeed})
	}
	return s
}
