package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golangdaddy/formula/pkg/race"
	"github.com/golangdaddy/formula/pkg/track"
)

// ErrPlaceholder marks a sprite that was drawn in place of a missing file
var ErrPlaceholder = errors.New("using placeholder sprite")

// Car colours for generated sprites
var (
	PlayerColor = color.RGBA{200, 30, 30, 255}
	BotColor    = color.RGBA{30, 80, 200, 255}
)

// Sprite is a car image facing along +X, with its body size
type Sprite struct {
	Image       image.Image
	Size        race.Size
	Placeholder bool
}

// LoadSprite loads a car image. It always returns a usable sprite; when the
// file can't be read a placeholder painted in body is returned along with an
// error wrapping ErrPlaceholder.
func LoadSprite(filename string, body color.RGBA) (Sprite, error) {
	img, err := track.DecodeImage(filename)
	if err == nil && !img.Bounds().Empty() {
		b := img.Bounds()
		return Sprite{
			Image: img,
			Size:  race.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
		}, nil
	}
	if err == nil {
		err = fmt.Errorf("%s is empty", filename)
	}
	return PlaceholderSprite(body), fmt.Errorf("%w: %w", ErrPlaceholder, err)
}

// PlaceholderSprite draws a top-down car of the placeholder body size
func PlaceholderSprite(body color.RGBA) Sprite {
	size := race.PlaceholderBody()
	return Sprite{
		Image:       RenderCar(int(size.Width), int(size.Height), body),
		Size:        size,
		Placeholder: true,
	}
}

// RenderCar paints a top-down car w long and h wide with the bonnet at +X
func RenderCar(w, h int, body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := func(r image.Rectangle, c color.RGBA) {
		draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
	}

	fill(img.Bounds(), body)

	// Outline
	outline := color.RGBA{20, 20, 20, 255}
	fill(image.Rect(0, 0, w, 1), outline)
	fill(image.Rect(0, h-1, w, h), outline)
	fill(image.Rect(0, 0, 1, h), outline)
	fill(image.Rect(w-1, 0, w, h), outline)

	// Windshield behind the bonnet
	ws := max(w/5, 1)
	fill(image.Rect(w-2*ws-1, h/5, w-ws-1, h-h/5), color.RGBA{150, 200, 255, 200})

	// Wheels
	wheel := color.RGBA{30, 30, 30, 255}
	ww, wh := max(w/5, 2), max(h/5, 2)
	fill(image.Rect(2, 0, 2+ww, wh), wheel)
	fill(image.Rect(2, h-wh, 2+ww, h), wheel)
	fill(image.Rect(w-2-ww, 0, w-2, wh), wheel)
	fill(image.Rect(w-2-ww, h-wh, w-2, h), wheel)

	return img
}
