package race

// BotCar drives the waypoint loop on its own
type BotCar struct {
	name        string
	kin         Kinematics
	body        Size
	lap         int
	cruiseSpeed float64
	tuning      BotTuning

	path   Path
	target int // index of the waypoint being driven to
}

// NewBotCar puts a bot on the first waypoint of path, facing the second
func NewBotCar(name string, path Path, body Size, cruiseSpeed float64, tuning BotTuning) *BotCar {
	b := &BotCar{
		name:        name,
		body:        bodyOrPlaceholder(body),
		cruiseSpeed: cruiseSpeed,
		tuning:      tuning,
		path:        path,
	}
	b.Reset()
	return b
}

// Reset returns the bot to the first waypoint
func (b *BotCar) Reset() {
	b.kin = Kinematics{Pose: b.path.StartPose(), MaxTurn: b.tuning.MaxTurn}
	b.target = 0
	b.lap = 0
}

func (b *BotCar) Name() string   { return b.name }
func (b *BotCar) Pose() Pose     { return b.kin.Pose }
func (b *BotCar) Speed() float64 { return b.kin.Speed }
func (b *BotCar) BodySize() Size { return b.body }
func (b *BotCar) Lap() int       { return b.lap }

// CruiseSpeed is the speed the bot ramps up to
func (b *BotCar) CruiseSpeed() float64 { return b.cruiseSpeed }

// Target returns the index of the waypoint the bot is heading for
func (b *BotCar) Target() int { return b.target }

// CompleteLap records a finished lap
func (b *BotCar) CompleteLap() {
	b.lap++
}

// Update moves the bot one tick along its path. A disabled bot stops dead.
func (b *BotCar) Update(movementEnabled bool) {
	if !movementEnabled {
		b.kin.Speed = 0
		return
	}

	if b.kin.Speed < b.cruiseSpeed {
		b.kin.Speed += b.tuning.Acceleration
		if b.kin.Speed > b.cruiseSpeed {
			b.kin.Speed = b.cruiseSpeed
		}
	}

	pos := b.kin.Pose.Position()
	threshold := b.kin.Speed*b.tuning.ThresholdMultiplier + b.body.Height/2
	if Distance(pos, b.path.At(b.target)) < threshold {
		b.target++
		if b.target >= b.path.Len() {
			b.target = 0
			b.CompleteLap()
		}
	}

	// Turn harder the closer the bot is to cruising speed
	gain := b.tuning.TurnFactor
	if b.cruiseSpeed > 0 {
		gain *= b.kin.Speed / b.cruiseSpeed
	}
	b.kin.TurnToward(Bearing(pos, b.path.At(b.target)), gain)
	b.kin.Advance()
}
