package track

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/golangdaddy/formula/pkg/background"
	"github.com/golangdaddy/formula/pkg/race"
)

// Load warnings, matched with errors.Is
var (
	ErrTrackImage = errors.New("track image not loaded")
	ErrRacingLine = errors.New("racing line not loaded")
)

// Minimum canvas for generated track art
const (
	PlaceholderWidth  = 800
	PlaceholderHeight = 600
)

// Track is everything the race needs from the circuit
type Track struct {
	Path  race.Path
	Mask  race.Mask
	Image image.Image

	// Placeholder is set when Image was generated rather than loaded
	Placeholder bool
}

// DecodeImage opens and decodes an image file
func DecodeImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return img, nil
}

// Load builds a track from an image and a waypoint file. It always returns
// a usable Track; the error, if any, is a warning describing what was
// substituted. A missing image gives generated art and a mask that never
// penalises.
func Load(imageFile, pathFile string) (*Track, error) {
	var warnings []error

	path, err := LoadPath(pathFile)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("%w: %w", ErrRacingLine, err))
	}

	t := &Track{Path: path}
	img, err := DecodeImage(imageFile)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("%w: %w", ErrTrackImage, err))
		t.Image = Placeholder(path)
		t.Mask = race.OpenMask{}
		t.Placeholder = true
	} else {
		t.Image = img
		t.Mask = NewImageMask(img)
	}

	return t, errors.Join(warnings...)
}

// Placeholder paints stand-in art for path
func Placeholder(path race.Path) *image.RGBA {
	w, h := background.SizeFor(path, PlaceholderWidth, PlaceholderHeight)
	return background.NewGenerator(w, h).GenerateCircuit(path, 1)
}
