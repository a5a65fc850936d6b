package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/formula/pkg/race"
)

var (
	grassColor   = color.RGBA{30, 100, 30, 255}
	asphaltColor = color.RGBA{60, 60, 64, 255}
	kerbColor    = color.RGBA{200, 200, 200, 255}
)

// Generator paints stand-in track art when no track image is available
type Generator struct {
	Width     int
	Height    int
	RoadWidth float64
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		RoadWidth: 60,
	}
}

// SizeFor returns a canvas size that fits the whole path with a margin,
// never smaller than minW x minH
func SizeFor(path race.Path, minW, minH int) (int, int) {
	w, h := minW, minH
	for _, p := range path.Points() {
		if x := int(math.Ceil(p.X)) + 100; x > w {
			w = x
		}
		if y := int(math.Ceil(p.Y)) + 100; y > h {
			h = y
		}
	}
	return w, h
}

// GenerateCircuit paints grass with a road following path as a closed loop
func (g *Generator) GenerateCircuit(path race.Path, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Base grass layer
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, grassColor)
		}
	}

	// Add noise/texture to grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	half := g.RoadWidth / 2
	n := path.Len()
	for i := 0; i < n; i++ {
		g.drawSegment(img, path.At(i), path.At(i+1), half+3, kerbColor)
	}
	for i := 0; i < n; i++ {
		g.drawSegment(img, path.At(i), path.At(i+1), half, asphaltColor)
	}
	g.drawStartLine(img, path.StartPose(), half)

	// Scatter vegetation clear of the road
	for y := 0; y < g.Height; y += 10 {
		density := 0.2 + 0.1*math.Sin(float64(y)*0.01)
		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			p := race.Point{X: float64(x + rng.Intn(10) - 5), Y: float64(y + rng.Intn(10) - 5)}
			if DistanceToLoop(path, p) < g.RoadWidth*2 {
				continue
			}
			if rng.Float64() < 0.3 {
				g.drawTree(img, int(p.X), int(p.Y), rng)
			} else {
				g.drawBush(img, int(p.X), int(p.Y), rng)
			}
		}
	}

	return img
}

// DistanceToLoop is the shortest distance from p to any segment of the loop
func DistanceToLoop(path race.Path, p race.Point) float64 {
	best := math.Inf(1)
	for i := 0; i < path.Len(); i++ {
		if d := distanceToSegment(p, path.At(i), path.At(i+1)); d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b race.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return race.Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return race.Distance(p, race.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// drawSegment stamps a thick line between a and b
func (g *Generator) drawSegment(img *image.RGBA, a, b race.Point, half float64, c color.RGBA) {
	minX := int(math.Floor(math.Min(a.X, b.X) - half))
	maxX := int(math.Ceil(math.Max(a.X, b.X) + half))
	minY := int(math.Floor(math.Min(a.Y, b.Y) - half))
	maxY := int(math.Ceil(math.Max(a.Y, b.Y) + half))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
				continue
			}
			if distanceToSegment(race.Point{X: float64(x), Y: float64(y)}, a, b) <= half {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawStartLine draws a chequered strip across the road at the start pose
func (g *Generator) drawStartLine(img *image.RGBA, start race.Pose, half float64) {
	rad := start.Heading * math.Pi / 180
	// unit vector across the road
	ax, ay := -math.Sin(rad), math.Cos(rad)
	fx, fy := math.Cos(rad), math.Sin(rad)
	for s := -half; s <= half; s++ {
		for f := 0.0; f < 8; f++ {
			x := int(start.X + ax*s + fx*f)
			y := int(start.Y + ay*s + fy*f)
			if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
				continue
			}
			if (int(s+half)/4+int(f)/4)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{240, 240, 240, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{20, 20, 20, 255})
			}
		}
	}
}

// drawTree draws a simple pine tree
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	// Trunk
	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := max(width-(l*5), 5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.Intn(10)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}
