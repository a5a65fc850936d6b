package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCar struct {
	pose Pose
	body Size
	lap  int
}

func (c *stubCar) Pose() Pose     { return c.pose }
func (c *stubCar) Speed() float64 { return 0 }
func (c *stubCar) BodySize() Size { return c.body }
func (c *stubCar) Lap() int       { return c.lap }
func (c *stubCar) CompleteLap()   { c.lap++ }

func (c *stubCar) moveTo(p Point) { c.pose.X, c.pose.Y = p.X, p.Y }

var squareCheckpoints = MustPath([]Point{
	{X: 100, Y: 100},
	{X: 500, Y: 100},
	{X: 500, Y: 500},
	{X: 100, Y: 500},
})

func TestCheckpointTracker_FirstCheckpoint(t *testing.T) {
	tr := NewCheckpointTracker(squareCheckpoints, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}
	car.moveTo(squareCheckpoints.At(0))

	res := tr.Check(car)

	assert.Equal(t, CheckpointResult{Passed: true, Index: 0}, res)
	assert.Equal(t, 1, tr.Cursor())
	assert.Equal(t, 0, car.Lap())
}

func TestCheckpointTracker_LastCheckpointCompletesLap(t *testing.T) {
	tr := NewCheckpointTracker(squareCheckpoints, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}

	for i := 0; i < squareCheckpoints.Len()-1; i++ {
		car.moveTo(squareCheckpoints.At(i))
		tr.Check(car)
	}
	assert.Equal(t, 3, tr.Cursor())
	assert.Equal(t, 0, car.Lap())

	car.moveTo(squareCheckpoints.At(3))
	res := tr.Check(car)

	assert.Equal(t, CheckpointResult{Passed: true, Index: 3, LapCompleted: true}, res)
	assert.Equal(t, 0, tr.Cursor())
	assert.Equal(t, 1, car.Lap())
}

func TestCheckpointTracker_NoSkipping(t *testing.T) {
	tr := NewCheckpointTracker(squareCheckpoints, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}

	car.moveTo(squareCheckpoints.At(2))
	assert.False(t, tr.Check(car).Passed)
	assert.Equal(t, 0, tr.Cursor())
}

func TestCheckpointTracker_OneStepPerCheck(t *testing.T) {
	tight := MustPath([]Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}})
	tr := NewCheckpointTracker(tight, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}
	car.moveTo(Point{X: 5})

	for i := 1; i <= 3; i++ {
		tr.Check(car)
		assert.Equal(t, i%3, tr.Cursor())
	}
	assert.Equal(t, 1, car.Lap())
}

func TestCheckpointTracker_ReachGrowsWithBody(t *testing.T) {
	// reach = radius + max(w,h)/3 = 30 + 10
	tests := []struct {
		name   string
		offset float64
		want   bool
	}{
		{"inside", 39.9, true},
		{"on the edge", 40, false},
		{"outside", 45, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewCheckpointTracker(squareCheckpoints, 30)
			car := &stubCar{body: Size{Width: 30, Height: 15}}
			car.moveTo(Point{X: 100 + tt.offset, Y: 100})
			assert.Equal(t, tt.want, tr.Check(car).Passed)
		})
	}
}

func TestCheckpointTracker_CursorAndLapStayInStep(t *testing.T) {
	tr := NewCheckpointTracker(squareCheckpoints, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}
	n := squareCheckpoints.Len()

	passed := 0
	for i := 0; i < 5*n; i++ {
		car.moveTo(squareCheckpoints.At(i))
		prev := tr.Cursor()
		res := tr.Check(car)
		assert.True(t, res.Passed)
		passed++

		assert.Equal(t, (prev+1)%n, tr.Cursor())
		assert.Equal(t, res.LapCompleted, tr.Cursor() == 0)
		assert.Equal(t, passed/n, car.Lap())
		assert.Equal(t, passed%n, tr.Cursor())
	}
}

func TestCheckpointTracker_Reset(t *testing.T) {
	tr := NewCheckpointTracker(squareCheckpoints, 30)
	car := &stubCar{body: Size{Width: 30, Height: 15}}
	car.moveTo(squareCheckpoints.At(0))
	tr.Check(car)

	tr.Reset()
	tr.Reset()
	assert.Equal(t, 0, tr.Cursor())
	assert.Equal(t, squareCheckpoints.At(0), tr.Current())
}
