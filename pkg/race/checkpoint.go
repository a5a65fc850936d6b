package race

import "math"

// CheckpointTracker walks a car through the checkpoints in order. Passing
// the last checkpoint completes a lap and wraps back to the first.
type CheckpointTracker struct {
	checkpoints Path
	radius      float64
	cursor      int
}

// CheckpointResult reports what a single check did
type CheckpointResult struct {
	Passed       bool
	Index        int // checkpoint that was passed
	LapCompleted bool
}

// NewCheckpointTracker tracks progress around checkpoints with the given proximity radius
func NewCheckpointTracker(checkpoints Path, radius float64) *CheckpointTracker {
	return &CheckpointTracker{
		checkpoints: checkpoints,
		radius:      radius,
	}
}

// Cursor is the index of the next checkpoint to pass
func (t *CheckpointTracker) Cursor() int { return t.cursor }

// Current is the position of the next checkpoint to pass
func (t *CheckpointTracker) Current() Point { return t.checkpoints.At(t.cursor) }

// Len is the number of checkpoints in a lap
func (t *CheckpointTracker) Len() int { return t.checkpoints.Len() }

// Radius is the marker radius of a checkpoint
func (t *CheckpointTracker) Radius() float64 { return t.radius }

// Reset puts the cursor back on the first checkpoint
func (t *CheckpointTracker) Reset() {
	t.cursor = 0
}

// reach is how close the car centre must get to a checkpoint
func (t *CheckpointTracker) reach(body Size) float64 {
	return t.radius + math.Max(body.Width, body.Height)/3
}

// Check advances the cursor by at most one checkpoint when the car is close
// enough to the current one, completing a lap on the car when it wraps.
func (t *CheckpointTracker) Check(car interface {
	Steerable
	LapTrackable
}) CheckpointResult {
	if Distance(car.Pose().Position(), t.Current()) >= t.reach(car.BodySize()) {
		return CheckpointResult{}
	}

	res := CheckpointResult{Passed: true, Index: t.cursor}
	t.cursor++
	if t.cursor >= t.checkpoints.Len() {
		t.cursor = 0
		car.CompleteLap()
		res.LapCompleted = true
	}
	return res
}
