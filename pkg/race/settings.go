package race

import "time"

// PlayerTuning holds the player car's handling constants
type PlayerTuning struct {
	MaxSpeed        float64
	MaxReverseSpeed float64 // negative
	Acceleration    float64
	ReverseFactor   float64 // reverse applies Acceleration*ReverseFactor
	Deceleration    float64
	TurnRate        float64 // degrees per tick
	MaxTurn         float64 // heading change cap per tick, 0 for none
	OffTrackPenalty float64 // speed multiplier applied each off-track tick
}

// BotTuning holds the handling constants shared by every bot
type BotTuning struct {
	Acceleration        float64
	TurnFactor          float64
	ThresholdMultiplier float64
	MaxTurn             float64 // heading change cap per tick, 0 for none
}

// BotSpec describes one bot in the roster
type BotSpec struct {
	Name        string
	CruiseSpeed float64
}

// Settings are the race constants fixed at construction
type Settings struct {
	TotalLaps         int
	CheckpointRadius  float64
	CountdownFrom     int
	CountdownInterval time.Duration
	PlayerName        string

	Player PlayerTuning
	Bot    BotTuning
	Bots   []BotSpec
}

// DefaultSettings matches the classic arcade handling
func DefaultSettings() Settings {
	return Settings{
		TotalLaps:         3,
		CheckpointRadius:  30,
		CountdownFrom:     3,
		CountdownInterval: time.Second,
		PlayerName:        "Player",
		Player: PlayerTuning{
			MaxSpeed:        5,
			MaxReverseSpeed: -2,
			Acceleration:    0.3,
			ReverseFactor:   0.7,
			Deceleration:    0.1,
			TurnRate:        3.5,
			MaxTurn:         3.5,
			OffTrackPenalty: 0.5,
		},
		Bot: BotTuning{
			Acceleration:        0.1,
			TurnFactor:          0.1,
			ThresholdMultiplier: 1.5,
			MaxTurn:             12,
		},
		Bots: []BotSpec{{Name: "Bot", CruiseSpeed: 4.5}},
	}
}

// withDefaults fills zero values so a partially specified Settings is still playable
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.TotalLaps <= 0 {
		s.TotalLaps = d.TotalLaps
	}
	if s.CheckpointRadius <= 0 {
		s.CheckpointRadius = d.CheckpointRadius
	}
	if s.CountdownFrom <= 0 {
		s.CountdownFrom = d.CountdownFrom
	}
	if s.CountdownInterval <= 0 {
		s.CountdownInterval = d.CountdownInterval
	}
	if s.PlayerName == "" {
		s.PlayerName = d.PlayerName
	}
	if s.Player == (PlayerTuning{}) {
		s.Player = d.Player
	}
	if s.Bot == (BotTuning{}) {
		s.Bot = d.Bot
	}
	return s
}
