// Terrain flavor for generated territories, derived from layered simplex
// noise. Display-only: the partition passes never consult elevation, so
// none of the tiling invariants depend on this file.
package mapgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// TerrainClass flavors a territory for the rendering layer.
type TerrainClass uint8

const (
	TerrainLowland TerrainClass = iota
	TerrainPlains
	TerrainHighland
	TerrainMountain
)

// TerrainName returns a human-readable name for a terrain class.
func TerrainName(t TerrainClass) string {
	switch t {
	case TerrainLowland:
		return "Lowland"
	case TerrainPlains:
		return "Plains"
	case TerrainHighland:
		return "Highland"
	case TerrainMountain:
		return "Mountain"
	default:
		return "Unknown"
	}
}

// elevationField samples a seeded multi-octave noise field at every grid
// hex. Hexes are sampled at their pointy-top cartesian centers so the
// field varies smoothly across neighbors.
func (g *Generator) elevationField() map[string]float64 {
	noise := opensimplex.NewNormalized(g.cfg.Seed + 1)

	field := make(map[string]float64, len(g.grid))
	for _, h := range g.grid {
		x := float64(h.Q) + float64(h.R)*0.5
		y := float64(h.R) * math.Sqrt(3.0) / 2.0
		field[h.Key()] = octaveNoise(noise, x, y, 4, 0.15, 0.5)
	}
	return field
}

// classifyTerrain buckets a region by the mean elevation of its hexes.
func classifyTerrain(r *region, elevation map[string]float64) TerrainClass {
	if len(r.claims) == 0 {
		return TerrainPlains
	}

	total := 0.0
	for _, key := range r.claims {
		total += elevation[key]
	}
	mean := total / float64(len(r.claims))

	switch {
	case mean < 0.35:
		return TerrainLowland
	case mean < 0.55:
		return TerrainPlains
	case mean < 0.75:
		return TerrainHighland
	default:
		return TerrainMountain
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
