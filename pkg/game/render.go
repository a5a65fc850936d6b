package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/golangdaddy/formula/pkg/race"
	"github.com/golangdaddy/formula/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	checkpointFill   = color.RGBA{100, 100, 0, 100}
	checkpointStroke = color.RGBA{150, 150, 0, 150}
	hudText          = color.RGBA{255, 255, 255, 255}
	warningText      = color.RGBA{255, 180, 80, 255}
	bannerText       = color.RGBA{255, 255, 0, 255}
)

// carGeoM rotates a sprite about its centre and places it at the car's pose,
// stretching it to the body size when they differ
func carGeoM(imgW, imgH int, v race.VehicleView) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(imgW)/2, -float64(imgH)/2)
	if imgW > 0 && imgH > 0 {
		m.Scale(v.Body.Width/float64(imgW), v.Body.Height/float64(imgH))
	}
	m.Rotate(v.Pose.Heading * math.Pi / 180)
	m.Translate(v.Pose.X, v.Pose.Y)
	return m
}

func drawCar(screen, img *ebiten.Image, v race.VehicleView) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = carGeoM(b.Dx(), b.Dy(), v)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawCheckpoint draws the ring around the next checkpoint with its 1-based number
func drawCheckpoint(screen *ebiten.Image, cp race.CheckpointView) {
	x, y, r := float32(cp.Position.X), float32(cp.Position.Y), float32(cp.Radius)
	vector.DrawFilledCircle(screen, x, y, r, checkpointFill, true)
	vector.StrokeCircle(screen, x, y, r, 3, checkpointStroke, true)
	ui.DrawText(screen, strconv.Itoa(cp.Index+1), cp.Position.X, cp.Position.Y, 16, color.Black)
}

func drawHUD(screen *ebiten.Image, snap race.Snapshot, warnings []string) {
	const (
		x, y       = 10.0, 10.0
		lineHeight = 22.0
		size       = 16.0
	)
	lines := HUDLines(snap)

	width := 0.0
	for _, l := range append(append([]string(nil), lines...), warnings...) {
		width = max(width, ui.TextWidth(l, size))
	}
	height := lineHeight * float64(len(lines)+len(warnings))
	ui.DrawPanel(screen, x, y, width+20, height+10, color.RGBA{0, 0, 0, 128})

	cy := y + 5 + lineHeight/2
	for _, l := range lines {
		ui.DrawTextAt(screen, l, x+10, cy, size, hudText)
		cy += lineHeight
	}
	for _, w := range warnings {
		ui.DrawTextAt(screen, w, x+10, cy, size, warningText)
		cy += lineHeight
	}
}

func drawBanner(screen *ebiten.Image, snap race.Snapshot) {
	lines := BannerLines(snap)
	if lines == nil {
		return
	}
	b := screen.Bounds()
	ui.DrawBanner(screen, lines, float64(b.Dx())/2, float64(b.Dy())/2, 48, bannerText)
}
