package mapgen

import (
	"math/rand"

	"github.com/jfx1026/RiskGame/internal/entropy"
	"github.com/jfx1026/RiskGame/internal/hexgrid"
)

// minSeedSpacing is the base spacing between territory seeds; candidates
// closer than twice this value (in offset-space taxicab distance) to an
// accepted seed are rejected on the first placement pass.
const minSeedSpacing = 2

// region is the generator's working view of one territory: a stable slot
// that survives repair passes. Visible dense ids, names, and colors are
// assigned once, in finalization.
type region struct {
	seed   hexgrid.Hex
	hexes  map[string]bool
	claims []string // claim order; deterministic iteration for frontier rescans

	frontier   []string
	inFrontier map[string]bool
}

func (r *region) size() int {
	return len(r.hexes)
}

// Generator runs the territory partition pipeline. All randomness comes
// from the injected rng; two generators with equal configs and equally
// seeded rngs produce identical maps.
type Generator struct {
	cfg Config
	rng *rand.Rand

	grid      []hexgrid.Hex          // all grid coordinates, row-major
	coords    map[string]hexgrid.Hex // key -> coordinate lookup
	blocked   map[string]bool
	unclaimed map[string]bool
	regions   []*region
}

// Generate produces a complete map from the configuration. A zero
// cfg.Seed picks a time-based seed; the resolved seed is recorded on the
// result.
func Generate(cfg Config) *GeneratedMap {
	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed()
	}
	cfg.Seed = seed
	return NewGenerator(cfg, rand.New(rand.NewSource(seed))).Generate()
}

// NewGenerator creates a generator with an explicit random source.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg.normalized(), rng: rng}
}

// Generate runs every pass and returns the finished map.
func (g *Generator) Generate() *GeneratedMap {
	g.grid = hexgrid.RectGrid(g.cfg.GridWidth, g.cfg.GridHeight)
	g.coords = make(map[string]hexgrid.Hex, len(g.grid))
	for _, h := range g.grid {
		g.coords[h.Key()] = h
	}

	g.selectBlocked()

	g.unclaimed = make(map[string]bool, len(g.grid))
	for _, h := range g.grid {
		key := h.Key()
		if !g.blocked[key] {
			g.unclaimed[key] = true
		}
	}

	seeds := g.placeSeeds()
	g.initRegions(seeds)
	g.growRegions()
	g.resolveUnclaimed()
	g.balanceSizes()
	g.enforceConnectivity()

	return g.finalize()
}

// selectBlocked marks an exact fraction of tiles impassable: count =
// floor(total * percent / 100) tiles drawn as a uniform random subset.
func (g *Generator) selectBlocked() {
	g.blocked = make(map[string]bool)

	count := len(g.grid) * g.cfg.EmptyTilePercent / 100
	if count == 0 {
		return
	}

	shuffled := make([]hexgrid.Hex, len(g.grid))
	copy(shuffled, g.grid)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, h := range shuffled[:count] {
		g.blocked[h.Key()] = true
	}
}

// placeSeeds picks well-spaced starting coordinates, one per territory.
// A shuffled greedy pass enforces spacing; a second pass fills any
// remaining slots from the same shuffled list, ignoring spacing.
//
// Spacing is measured in offset-space taxicab distance (|dq| + |dr|),
// not true hex distance. The planar approximation is kept deliberately:
// it spreads seeds slightly wider along rows, which reads well on
// rectangular maps.
func (g *Generator) placeSeeds() []hexgrid.Hex {
	candidates := make([]hexgrid.Hex, 0, len(g.grid))
	for _, h := range g.grid {
		if !g.blocked[h.Key()] {
			candidates = append(candidates, h)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	want := g.cfg.TerritoryCount
	seeds := make([]hexgrid.Hex, 0, want)
	used := make(map[string]bool)

	for _, c := range candidates {
		if len(seeds) >= want {
			break
		}
		if tooClose(c, seeds) {
			continue
		}
		seeds = append(seeds, c)
		used[c.Key()] = true
	}

	// Spacing made the full count impossible; fill the rest anyway.
	for _, c := range candidates {
		if len(seeds) >= want {
			break
		}
		if used[c.Key()] {
			continue
		}
		seeds = append(seeds, c)
		used[c.Key()] = true
	}

	return seeds
}

func tooClose(c hexgrid.Hex, seeds []hexgrid.Hex) bool {
	for _, s := range seeds {
		dq := c.Q - s.Q
		if dq < 0 {
			dq = -dq
		}
		dr := c.R - s.R
		if dr < 0 {
			dr = -dr
		}
		if dq+dr < 2*minSeedSpacing {
			return true
		}
	}
	return false
}

// initRegions creates one region per seed with the seed hex pre-claimed
// and the frontier initialized from it.
func (g *Generator) initRegions(seeds []hexgrid.Hex) {
	g.regions = make([]*region, 0, len(seeds))
	for _, s := range seeds {
		key := s.Key()
		r := &region{
			seed:       s,
			hexes:      map[string]bool{key: true},
			claims:     []string{key},
			inFrontier: make(map[string]bool),
		}
		delete(g.unclaimed, key)
		g.regions = append(g.regions, r)
		g.refreshFrontier(r)
	}
}
