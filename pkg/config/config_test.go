package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golangdaddy/formula/pkg/race"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(writeConfig(t, `{}`)))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, 50, viper.GetInt("tickRate"))
	assert.Equal(t, "Images/race.png", viper.GetString("assets.track"))
	assert.Equal(t, "", viper.GetString("assets.path"))
	assert.Equal(t, 3, viper.GetInt("race.totalLaps"))
	assert.Equal(t, time.Second, viper.GetDuration("race.countdownInterval"))
	assert.Equal(t, true, viper.GetBool("audio.enabled"))
}

func TestGet_DefaultsMatchRace(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(writeConfig(t, `{}`)))

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 1600, c.Window.Width)
	assert.Equal(t, "Formula", c.Window.Title)
	assert.Equal(t, []BotEntry{{Name: "Bot", CruiseSpeed: 4.5}}, c.Bots)
	assert.Equal(t, race.DefaultSettings(), c.RaceSettings())
}

func TestGet_Override(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := writeConfig(t, `{
		"logLevel": "debug",
		"race": { "totalLaps": 5, "countdownInterval": "500ms", "playerName": "Ayrton" },
		"player": { "maxSpeed": 7 },
		"bot": { "maxTurn": 8 },
		"bots": [
			{ "name": "Alain", "cruiseSpeed": 4.8 },
			{ "name": "Nigel", "cruiseSpeed": 4.2 }
		],
		"audio": { "enabled": false }
	}`)
	require.NoError(t, Load(dir))

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.False(t, c.Audio.Enabled)

	s := c.RaceSettings()
	assert.Equal(t, 5, s.TotalLaps)
	assert.Equal(t, 500*time.Millisecond, s.CountdownInterval)
	assert.Equal(t, "Ayrton", s.PlayerName)
	assert.Equal(t, 7.0, s.Player.MaxSpeed)
	// untouched keys keep their defaults
	assert.Equal(t, 0.3, s.Player.Acceleration)
	assert.Equal(t, 3.5, s.Player.MaxTurn)
	assert.Equal(t, 8.0, s.Bot.MaxTurn)
	assert.Equal(t, 0.1, s.Bot.TurnFactor)
	assert.Equal(t, []race.BotSpec{{Name: "Alain", CruiseSpeed: 4.8}, {Name: "Nigel", CruiseSpeed: 4.2}}, s.Bots)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 50, c.TickRate)
	assert.Equal(t, 3, c.RaceSettings().TotalLaps)
}

func TestRaceSettings_SkipsStoppedBotsAndNamesTheRest(t *testing.T) {
	c := Config{Bots: []BotEntry{{Name: "", CruiseSpeed: 4}, {Name: "Slow", CruiseSpeed: 0}, {Name: "Ok", CruiseSpeed: 3}}}
	assert.Equal(t, []race.BotSpec{{Name: "Hunt", CruiseSpeed: 4}, {Name: "Ok", CruiseSpeed: 3}}, c.RaceSettings().Bots)
}
