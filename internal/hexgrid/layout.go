package hexgrid

import "math"

// Point is a cartesian position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout converts between axial hex coordinates and pixel space for a
// pointy-top grid. Radius is the center-to-corner distance in pixels.
// The generator itself never needs pixel space; rendering and hit-testing
// depend on these transforms being bit-for-bit consistent.
type Layout struct {
	Radius float64
}

// ToPixel returns the pixel-space center of a hex.
func (l Layout) ToPixel(h Hex) Point {
	x := l.Radius * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2.0)
	y := l.Radius * 1.5 * float64(h.R)
	return Point{X: x, Y: y}
}

// FromPixel returns the hex whose area contains the given pixel position.
func (l Layout) FromPixel(p Point) Hex {
	q := (math.Sqrt(3)/3.0*p.X - 1.0/3.0*p.Y) / l.Radius
	r := (2.0 / 3.0 * p.Y) / l.Radius
	return Round(q, r)
}

// Corners returns the six vertices around a hex center, starting at -30
// degrees and proceeding by 60-degree steps.
func (l Layout) Corners(h Hex) [6]Point {
	center := l.ToPixel(h)
	var corners [6]Point
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180.0 * (60.0*float64(i) - 30.0)
		corners[i] = Point{
			X: center.X + l.Radius*math.Cos(angle),
			Y: center.Y + l.Radius*math.Sin(angle),
		}
	}
	return corners
}
