package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphHeight is the natural line height of the bitmap font
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// Face returns the shared bitmap font face
func Face() text.Face { return face }

// TextWidth is the rendered width of str at the given pixel size
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / glyphHeight
}

// DrawText draws str centred on (centerX, centerY)
func DrawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	DrawTextAt(screen, str, centerX-TextWidth(str, size)/2, centerY, size, clr)
}

// DrawTextAt draws str with its left edge at x, vertically centred on y
func DrawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-glyphHeight*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawPanel draws a filled box with a 2px border
func DrawPanel(screen *ebiten.Image, x, y, width, height float64, bg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{80, 80, 100, 255}, false)
}

// DrawBanner draws centred lines of text on a translucent panel
func DrawBanner(screen *ebiten.Image, lines []string, centerX, centerY float64, size float64, clr color.Color) {
	if len(lines) == 0 {
		return
	}
	lineHeight := size * 1.4
	width := 0.0
	for i, l := range lines {
		s := size
		if i > 0 {
			s = size / 2
		}
		width = max(width, TextWidth(l, s))
	}
	height := lineHeight * float64(len(lines))
	pad := size / 2
	DrawPanel(screen, centerX-width/2-pad, centerY-height/2-pad, width+2*pad, height+2*pad, color.RGBA{0, 0, 0, 180})

	y := centerY - height/2 + lineHeight/2
	for i, l := range lines {
		s := size
		if i > 0 {
			s = size / 2
		}
		DrawText(screen, l, centerX, y, s, clr)
		y += lineHeight
	}
}
