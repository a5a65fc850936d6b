package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/formula/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if input.StartPressed() {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	drawChequer(screen, width, height)

	// Pulsing title (scale 1.0 to 1.1)
	size := 128 * (1.0 + 0.1*pulse(elapsed*2.0))
	brightness := math.Min(1.0+0.2*pulse(elapsed*1.5), 1.0)
	DrawText(screen, "FORMULA", centerX, centerY, size, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})

	DrawText(screen, "Top-down Racing", centerX, centerY+100, 32, color.RGBA{180, 180, 200, 255})

	if TitleBlinkOn(elapsed) {
		DrawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}
	DrawText(screen, "Arrows / WASD to drive", centerX, float64(height)-60, 16, color.RGBA{120, 130, 150, 255})
}

// TitleBlinkOn toggles every half second
func TitleBlinkOn(elapsed float64) bool {
	return int(elapsed*2)%2 == 0
}

// pulse returns a sine wave value between -1 and 1
func pulse(t float64) float64 {
	return math.Sin(t)
}

// drawChequer draws chequered-flag strips above and below the title block
func drawChequer(screen *ebiten.Image, width, height int) {
	const cell = 12
	for _, top := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		for x := 0; x*cell < width; x++ {
			for row := 0; row < 2; row++ {
				c := color.RGBA{50, 60, 80, 255}
				if (x+row)%2 == 0 {
					c = color.RGBA{200, 200, 210, 255}
				}
				vector.DrawFilledRect(screen, float32(x*cell), float32(top)+float32(row*cell), cell, cell, c, false)
			}
		}
	}
}
