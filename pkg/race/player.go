package race

import "math"

// PlayerCar is the human driven car
type PlayerCar struct {
	name   string
	kin    Kinematics
	body   Size
	lap    int
	tuning PlayerTuning

	start Pose
}

// NewPlayerCar places a player car at start. A zero body size is replaced by
// the placeholder body.
func NewPlayerCar(name string, start Pose, body Size, tuning PlayerTuning) *PlayerCar {
	p := &PlayerCar{
		name:   name,
		body:   bodyOrPlaceholder(body),
		tuning: tuning,
		start:  Pose{X: start.X, Y: start.Y, Heading: NormalizeHeading(start.Heading)},
	}
	p.Reset()
	return p
}

// Reset returns the car to the grid
func (p *PlayerCar) Reset() {
	p.kin = Kinematics{Pose: p.start, MaxTurn: p.tuning.MaxTurn}
	p.lap = 0
}

func (p *PlayerCar) Name() string   { return p.name }
func (p *PlayerCar) Pose() Pose     { return p.kin.Pose }
func (p *PlayerCar) Speed() float64 { return p.kin.Speed }
func (p *PlayerCar) BodySize() Size { return p.body }
func (p *PlayerCar) Lap() int       { return p.lap }

// CompleteLap records a finished lap
func (p *PlayerCar) CompleteLap() {
	p.lap++
}

// Update applies one tick of driver input, movement and the off-track check.
// With movement disabled the input is ignored and the car rolls to a stop at
// twice the normal coasting rate.
func (p *PlayerCar) Update(in Intents, mask Mask, movementEnabled bool) {
	t := p.tuning

	if movementEnabled {
		accelerating := in.Has(Accelerate)
		reversing := in.Has(Reverse)

		if accelerating {
			p.kin.Speed += t.Acceleration
		}
		if reversing {
			p.kin.Speed -= t.Acceleration * t.ReverseFactor
		}
		p.kin.Speed = clamp(p.kin.Speed, t.MaxReverseSpeed, t.MaxSpeed)

		// Steering needs the wheels to be rolling; reversing flips it
		if p.kin.Speed != 0 {
			sign := math.Copysign(1, p.kin.Speed)
			if in.Has(SteerLeft) {
				p.kin.Turn(-t.TurnRate * sign)
			}
			if in.Has(SteerRight) {
				p.kin.Turn(t.TurnRate * sign)
			}
		}

		if !accelerating && !reversing {
			p.kin.Speed = decayToward(p.kin.Speed, t.Deceleration)
		}
	} else {
		p.kin.Speed = decayToward(p.kin.Speed, t.Deceleration*2)
	}

	p.kin.Advance()
	p.checkOffTrack(mask)
}

// samplePoints returns the car centre and its two front corners
func (p *PlayerCar) samplePoints() [3]Point {
	pose := p.kin.Pose
	rad := pose.Heading * math.Pi / 180
	cosA, sinA := math.Cos(rad), math.Sin(rad)
	halfW, halfH := p.body.Width/2, p.body.Height/2

	return [3]Point{
		{X: pose.X, Y: pose.Y},
		{X: pose.X + halfW*cosA - halfH*sinA, Y: pose.Y + halfW*sinA + halfH*cosA},
		{X: pose.X + halfW*cosA + halfH*sinA, Y: pose.Y + halfW*sinA - halfH*cosA},
	}
}

// OnTrack reports whether any sample point lies on drivable surface. Samples
// that fall outside the mask are ignored, and a car with no sample inside the
// mask counts as on track.
func (p *PlayerCar) OnTrack(mask Mask) bool {
	if mask == nil {
		return true
	}
	inBounds := false
	for _, pt := range p.samplePoints() {
		switch mask.Classify(int(math.Floor(pt.X)), int(math.Floor(pt.Y))) {
		case Drivable:
			return true
		case OffTrack:
			inBounds = true
		}
	}
	return !inBounds
}

func (p *PlayerCar) checkOffTrack(mask Mask) {
	if p.kin.Speed == 0 {
		return
	}
	if !p.OnTrack(mask) {
		p.kin.Speed *= p.tuning.OffTrackPenalty
	}
}
