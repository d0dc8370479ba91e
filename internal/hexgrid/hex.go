// Package hexgrid provides axial hex coordinate math for the map generator.
// Uses pointy-top orientation with axial coordinates (q, r); the third cube
// coordinate s is derived, never stored.
package hexgrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex represents a position on the hex grid using axial coordinates.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate, s = -q - r.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Directions defines the six neighbor offsets in axial coordinates.
// The enumeration order is fixed; edge matching and adjacency derivation
// rely on every caller seeing the same order.
var Directions = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Add returns the component-wise sum of two coordinates.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates: the cube
// Manhattan distance divided by two.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return (dq + dr + ds) / 2
}

// Key returns the canonical "q,r" string for use in maps and sets.
// ParseKey inverts it losslessly.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

// ParseKey converts a canonical "q,r" key back to a coordinate.
func ParseKey(key string) (Hex, error) {
	sep := strings.IndexByte(key, ',')
	if sep < 0 {
		return Hex{}, fmt.Errorf("hexgrid: malformed key %q", key)
	}
	q, err := strconv.Atoi(key[:sep])
	if err != nil {
		return Hex{}, fmt.Errorf("hexgrid: malformed key %q: %w", key, err)
	}
	r, err := strconv.Atoi(key[sep+1:])
	if err != nil {
		return Hex{}, fmt.Errorf("hexgrid: malformed key %q: %w", key, err)
	}
	return Hex{Q: q, R: r}, nil
}

// Round snaps fractional axial coordinates to the nearest valid hex.
// The cube component with the largest rounding error is re-derived from
// the other two, which preserves q+r+s = 0.
func Round(q, r float64) Hex {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := absf(rq - q)
	dr := absf(rr - r)
	ds := absf(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}

	return Hex{Q: int(rq), R: int(rr)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
