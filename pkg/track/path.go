package track

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golangdaddy/formula/pkg/race"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Suzuka is the built-in racing line, in track image pixels
var Suzuka = []race.Point{
	{X: 1221.67, Y: 66.67},
	{X: 1458.33, Y: 75.00},
	{X: 1525.00, Y: 158.33},
	{X: 1375.00, Y: 195.83},
	{X: 1275.00, Y: 254.17},
	{X: 1178.33, Y: 225.00},
	{X: 1066.67, Y: 283.33},
	{X: 958.33, Y: 194.17},
	{X: 858.33, Y: 237.50},
	{X: 841.67, Y: 483.33},
	{X: 758.33, Y: 575.00},
	{X: 616.67, Y: 491.67},
	{X: 483.33, Y: 350.00},
	{X: 458.33, Y: 533.33},
	{X: 333.33, Y: 666.67},
	{X: 125.00, Y: 666.67},
	{X: 66.67, Y: 750.00},
	{X: 145.83, Y: 808.33},
	{X: 391.67, Y: 750.00},
	{X: 629.17, Y: 591.67},
	{X: 725.00, Y: 475.00},
	{X: 733.33, Y: 221.67},
	{X: 819.17, Y: 101.67},
	{X: 958.33, Y: 65.00},
}

// ParsePolyline parses a JSON array of coordinates into a geom.LineString.
// Input format: "[[x1,y1],[x2,y2],...]"
func ParsePolyline(data []byte) (geom.LineString, error) {
	var coords [][]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return geom.LineString{}, fmt.Errorf("failed to parse path JSON: %w", err)
	}

	if len(coords) < 2 {
		return geom.LineString{}, fmt.Errorf("%w: got %d", race.ErrDegeneratePath, len(coords))
	}

	flat := make([]float64, 0, len(coords)*2)
	for i, c := range coords {
		if len(c) < 2 {
			return geom.LineString{}, fmt.Errorf("coordinate %d has insufficient values", i)
		}
		flat = append(flat, c[0], c[1])
	}

	ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return geom.LineString{}, fmt.Errorf("invalid path geometry: %w", err)
	}
	return ls, nil
}

// PathFromLineString converts a line string into a waypoint loop. A
// repeated closing point is dropped since the loop wraps on its own.
func PathFromLineString(ls geom.LineString) (race.Path, error) {
	seq := ls.Coordinates()
	n := seq.Length()
	points := make([]race.Point, 0, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		points = append(points, race.Point{X: xy.X, Y: xy.Y})
	}
	if len(points) > 2 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return race.NewPath(points)
}

// LapLength is the distance around the closed loop, or 0 when the loop has
// no valid geometry
func LapLength(p race.Path) float64 {
	pts := p.Points()
	flat := make([]float64, 0, (len(pts)+1)*2)
	for _, pt := range pts {
		flat = append(flat, pt.X, pt.Y)
	}
	flat = append(flat, pts[0].X, pts[0].Y)
	ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return 0
	}
	return ls.Length()
}

// LoadPath reads a waypoint file. An empty filename selects the built-in
// line. On any error the built-in line is returned with it.
func LoadPath(filename string) (race.Path, error) {
	if filename == "" {
		return race.NewPath(Suzuka)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return race.MustPath(Suzuka), fmt.Errorf("failed to read path file: %w", err)
	}
	ls, err := ParsePolyline(data)
	if err != nil {
		return race.MustPath(Suzuka), fmt.Errorf("path file %s: %w", filename, err)
	}
	return PathFromLineString(ls)
}
