package track

import (
	"image"

	"github.com/golangdaddy/formula/pkg/race"
)

// ImageMask classifies pixels of a track image. Pure black is tarmac,
// anything else is off the racing surface.
type ImageMask struct {
	rect     image.Rectangle
	drivable []bool
}

// NewImageMask samples every pixel of img once up front
func NewImageMask(img image.Image) *ImageMask {
	b := img.Bounds()
	m := &ImageMask{
		rect:     b,
		drivable: make([]bool, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			m.drivable[m.index(x, y)] = r == 0 && g == 0 && bl == 0
		}
	}
	return m
}

func (m *ImageMask) index(x, y int) int {
	return (y-m.rect.Min.Y)*m.rect.Dx() + (x - m.rect.Min.X)
}

// Bounds returns the image rectangle the mask covers
func (m *ImageMask) Bounds() image.Rectangle { return m.rect }

// Classify implements race.Mask
func (m *ImageMask) Classify(x, y int) race.Surface {
	if !image.Pt(x, y).In(m.rect) {
		return race.OutOfBounds
	}
	if m.drivable[m.index(x, y)] {
		return race.Drivable
	}
	return race.OffTrack
}
