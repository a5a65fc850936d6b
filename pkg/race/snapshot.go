package race

import "time"

// VehicleView is the read-only state of one car for drawing
type VehicleView struct {
	Name     string
	IsPlayer bool
	Pose     Pose
	Body     Size
	Speed    float64
	Lap      int
}

// CheckpointView is the marker for the next checkpoint
type CheckpointView struct {
	Position Point
	Index    int // 0-based
	Radius   float64
}

// Snapshot is everything the renderer and HUD need for one frame
type Snapshot struct {
	Phase     Phase
	Countdown string
	Result    string
	TotalLaps int

	Player VehicleView
	Bots   []VehicleView

	// Checkpoint is nil unless the player still has checkpoints to chase
	Checkpoint *CheckpointView

	Standings []Standing

	RaceTime   time.Duration
	CurrentLap time.Duration
	LastLap    time.Duration
	BestLap    time.Duration
}

// Message is the banner text for the current phase
func (s Snapshot) Message() string {
	switch s.Phase {
	case Countdown:
		return s.Countdown
	case RaceOver:
		return s.Result
	}
	return ""
}

// PlayerStanding returns the player's entry in the standings
func (s Snapshot) PlayerStanding() Standing {
	for _, st := range s.Standings {
		if st.IsPlayer {
			return st
		}
	}
	return Standing{Name: s.Player.Name, IsPlayer: true, Position: 1}
}

func viewOf(v Vehicle, player bool) VehicleView {
	return VehicleView{
		Name:     v.Name(),
		IsPlayer: player,
		Pose:     v.Pose(),
		Body:     v.BodySize(),
		Speed:    v.Speed(),
		Lap:      v.Lap(),
	}
}

// Snapshot copies the current race state. It never mutates the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.state.Phase(),
		Countdown:  s.state.Message(),
		Result:     s.state.Result(),
		TotalLaps:  s.settings.TotalLaps,
		Player:     viewOf(s.player, true),
		RaceTime:   s.clock.Elapsed(),
		CurrentLap: s.clock.Current(),
		LastLap:    s.clock.Last(),
		BestLap:    s.clock.Best(),
	}
	for _, b := range s.bots {
		snap.Bots = append(snap.Bots, viewOf(b, false))
	}

	if snap.Phase == Racing && s.player.Lap() < s.settings.TotalLaps {
		snap.Checkpoint = &CheckpointView{
			Position: s.tracker.Current(),
			Index:    s.tracker.Cursor(),
			Radius:   s.tracker.Radius(),
		}
	}

	snap.Standings = s.standings()
	return snap
}

func (s *Session) standings() []Standing {
	n := s.path.Len()
	out := make([]Standing, 0, len(s.bots)+1)
	out = append(out, Standing{
		Name:     s.player.Name(),
		IsPlayer: true,
		Lap:      s.player.Lap(),
		Passed:   s.player.Lap()*n + s.tracker.Cursor(),
		ToNext:   Distance(s.player.Pose().Position(), s.tracker.Current()),
	})
	for _, b := range s.bots {
		out = append(out, Standing{
			Name:   b.Name(),
			Lap:    b.Lap(),
			Passed: b.Lap()*n + b.Target(),
			ToNext: Distance(b.Pose().Position(), s.path.At(b.Target())),
		})
	}
	rankStandings(out)
	return out
}
