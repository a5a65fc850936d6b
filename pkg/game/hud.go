package game

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golangdaddy/formula/pkg/race"
)

// KmhPerPixelPerTick converts simulation speed to the speedometer reading
const KmhPerPixelPerTick = 45

// RestartHint is shown under the result banner
const RestartHint = "(Press ENTER to Restart)"

// SpeedKmh is the speedometer reading for a simulation speed
func SpeedKmh(speed float64) float64 {
	return math.Abs(speed * KmhPerPixelPerTick)
}

// FormatLapTime renders a duration as m:ss.cc, or "--" before any lap
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "--:--.--"
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}

// HUDLines is the status panel text for one frame
func HUDLines(snap race.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("%s Lap: %d/%d", snap.Player.Name, snap.Player.Lap, snap.TotalLaps),
	}
	for _, b := range snap.Bots {
		lines = append(lines, fmt.Sprintf("%s Lap: %d/%d", b.Name, b.Lap, snap.TotalLaps))
	}
	lines = append(lines, fmt.Sprintf("Speed: %.0f km/h", SpeedKmh(snap.Player.Speed)))

	if len(snap.Standings) > 1 {
		pos := snap.PlayerStanding().Position
		lines = append(lines, fmt.Sprintf("Position: %s of %d", humanize.Ordinal(pos), len(snap.Standings)))
	}

	lines = append(lines,
		"Time: "+FormatLapTime(snap.CurrentLap),
		"Last: "+FormatLapTime(snap.LastLap),
		"Best: "+FormatLapTime(snap.BestLap),
	)
	return lines
}

// BannerLines is the centred message for the current phase, nil when
// nothing should be shown
func BannerLines(snap race.Snapshot) []string {
	msg := snap.Message()
	if msg == "" {
		return nil
	}
	if snap.Phase == race.RaceOver {
		return []string{msg, RestartHint}
	}
	return []string{msg}
}
