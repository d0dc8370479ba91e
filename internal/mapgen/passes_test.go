package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfx1026/RiskGame/internal/hexgrid"
)

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// newBareGenerator builds a generator with an initialized grid but no
// passes run, for exercising individual passes directly.
func newBareGenerator(cfg Config) *Generator {
	g := NewGenerator(cfg, newTestRNG())
	g.grid = hexgrid.RectGrid(g.cfg.GridWidth, g.cfg.GridHeight)
	g.coords = make(map[string]hexgrid.Hex, len(g.grid))
	for _, h := range g.grid {
		g.coords[h.Key()] = h
	}
	g.blocked = make(map[string]bool)
	g.unclaimed = make(map[string]bool, len(g.grid))
	for _, h := range g.grid {
		g.unclaimed[h.Key()] = true
	}
	return g
}

// addRegion installs a hand-built region owning the given hexes.
func (g *Generator) addRegion(hexes ...hexgrid.Hex) *region {
	r := &region{
		seed:       hexes[0],
		hexes:      make(map[string]bool, len(hexes)),
		inFrontier: make(map[string]bool),
	}
	for _, h := range hexes {
		key := h.Key()
		r.hexes[key] = true
		r.claims = append(r.claims, key)
		delete(g.unclaimed, key)
	}
	g.regions = append(g.regions, r)
	return r
}

func TestSelectBlockedExactCount(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 10, GridHeight: 10, EmptyTilePercent: 30, MaxTerritorySize: 10})
	g.selectBlocked()

	require.Len(t, g.blocked, 30, "floor(100 * 30 / 100) tiles must be blocked")
	for key := range g.blocked {
		_, inGrid := g.coords[key]
		assert.True(t, inGrid, "blocked key %s must be a grid hex", key)
	}
}

func TestSelectBlockedZeroPercent(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 8, GridHeight: 8, EmptyTilePercent: 0, MaxTerritorySize: 10})
	g.selectBlocked()
	assert.Empty(t, g.blocked)
}

func TestPlaceSeedsSpacing(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 10, GridHeight: 10, TerritoryCount: 3, MaxTerritorySize: 10})
	seeds := g.placeSeeds()

	require.Len(t, seeds, 3)
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			dq := absInt(seeds[i].Q - seeds[j].Q)
			dr := absInt(seeds[i].R - seeds[j].R)
			assert.GreaterOrEqual(t, dq+dr, 2*minSeedSpacing,
				"seeds %v and %v too close", seeds[i], seeds[j])
		}
	}
}

func TestPlaceSeedsFallbackFillsWithoutSpacing(t *testing.T) {
	// A 2x2 grid cannot hold 4 spaced seeds; the second pass must fill
	// the remaining slots anyway.
	g := newBareGenerator(Config{GridWidth: 2, GridHeight: 2, TerritoryCount: 4, MaxTerritorySize: 4})
	seeds := g.placeSeeds()

	require.Len(t, seeds, 4)
	seen := make(map[string]bool)
	for _, s := range seeds {
		assert.False(t, seen[s.Key()], "seed %v duplicated", s)
		seen[s.Key()] = true
	}
}

func TestPlaceSeedsSkipsBlocked(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 3, GridHeight: 3, TerritoryCount: 9, MaxTerritorySize: 9})
	g.blocked[hexgrid.Hex{Q: 0, R: 0}.Key()] = true
	seeds := g.placeSeeds()

	require.Len(t, seeds, 8, "only non-blocked tiles are seed candidates")
	for _, s := range seeds {
		assert.False(t, g.blocked[s.Key()])
	}
}

func TestGrowthStaysConnectedAndBounded(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 8, GridHeight: 8, TerritoryCount: 3, MinTerritorySize: 2, MaxTerritorySize: 10})
	seeds := g.placeSeeds()
	g.initRegions(seeds)
	g.growRegions()

	for i, r := range g.regions {
		assert.LessOrEqual(t, r.size(), 10, "region %d grew past max", i)
		assert.GreaterOrEqual(t, r.size(), 1)

		terr := &Territory{ID: i, HexKeys: r.hexes}
		assertConnected(t, terr)
	}
}

func TestResolveUnclaimedAssignsToSmallestNeighbor(t *testing.T) {
	// 5x1 strip: big region on the left, small region on the right, one
	// unclaimed hex in between adjacent to both.
	g := newBareGenerator(Config{GridWidth: 5, GridHeight: 1, MaxTerritorySize: 10})
	g.addRegion(hexgrid.Hex{Q: 0, R: 0}, hexgrid.Hex{Q: 1, R: 0})
	small := g.addRegion(hexgrid.Hex{Q: 3, R: 0})

	g.resolveUnclaimed()

	// (2,0) borders a size-2 and a size-1 region; the smaller one wins.
	// (4,0) borders only the small region.
	assert.True(t, small.hexes[hexgrid.Hex{Q: 2, R: 0}.Key()])
	assert.True(t, small.hexes[hexgrid.Hex{Q: 4, R: 0}.Key()])
	assert.Empty(t, g.unclaimed)
}

func TestResolveUnclaimedBlocksOrphans(t *testing.T) {
	// No region at all: every unclaimed hex must become blocked.
	g := newBareGenerator(Config{GridWidth: 3, GridHeight: 1, MaxTerritorySize: 5})
	g.resolveUnclaimed()

	assert.Empty(t, g.unclaimed)
	assert.Len(t, g.blocked, 3)
}

func TestResolveUnclaimedRespectsMaxSize(t *testing.T) {
	// The only neighboring region is already at max; the hex is blocked.
	g := newBareGenerator(Config{GridWidth: 3, GridHeight: 1, MaxTerritorySize: 2})
	g.addRegion(hexgrid.Hex{Q: 0, R: 0}, hexgrid.Hex{Q: 1, R: 0})

	g.resolveUnclaimed()

	assert.True(t, g.blocked[hexgrid.Hex{Q: 2, R: 0}.Key()])
}

func TestBalanceSizesMergesUndersized(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 6, GridHeight: 1, MinTerritorySize: 3, MaxTerritorySize: 12})
	small := g.addRegion(hexgrid.Hex{Q: 0, R: 0}, hexgrid.Hex{Q: 1, R: 0})
	big := g.addRegion(hexgrid.Hex{Q: 2, R: 0}, hexgrid.Hex{Q: 3, R: 0},
		hexgrid.Hex{Q: 4, R: 0}, hexgrid.Hex{Q: 5, R: 0})

	g.balanceSizes()

	assert.Equal(t, 0, small.size(), "undersized region must be emptied")
	assert.Equal(t, 6, big.size(), "neighbor absorbs the undersized region")
}

func TestBalanceSizesRespectsMaxSize(t *testing.T) {
	g := newBareGenerator(Config{GridWidth: 6, GridHeight: 1, MinTerritorySize: 3, MaxTerritorySize: 5})
	small := g.addRegion(hexgrid.Hex{Q: 0, R: 0}, hexgrid.Hex{Q: 1, R: 0})
	big := g.addRegion(hexgrid.Hex{Q: 2, R: 0}, hexgrid.Hex{Q: 3, R: 0},
		hexgrid.Hex{Q: 4, R: 0}, hexgrid.Hex{Q: 5, R: 0})

	g.balanceSizes()

	// A merge would push the neighbor to 6 > max 5; nothing happens.
	assert.Equal(t, 2, small.size())
	assert.Equal(t, 4, big.size())
}

func TestEnforceConnectivityKeepsLargestComponent(t *testing.T) {
	// 5x1 strip with a blocked gap: a 3-hex component and a 1-hex one.
	g := newBareGenerator(Config{GridWidth: 5, GridHeight: 1, MaxTerritorySize: 10})
	big := g.addRegion(hexgrid.Hex{Q: 0, R: 0}, hexgrid.Hex{Q: 1, R: 0}, hexgrid.Hex{Q: 2, R: 0})
	lone := g.addRegion(hexgrid.Hex{Q: 4, R: 0})
	g.blocked[hexgrid.Hex{Q: 3, R: 0}.Key()] = true

	g.enforceConnectivity()

	assert.Equal(t, 3, big.size())
	assert.Equal(t, 0, lone.size(), "minor component must be discarded")
	assert.True(t, g.blocked[hexgrid.Hex{Q: 4, R: 0}.Key()], "discarded hexes become blocked")
}

func TestEnforceConnectivityTieKeepsFirstComponent(t *testing.T) {
	// Two single-hex components: the one found first in grid order wins.
	g := newBareGenerator(Config{GridWidth: 3, GridHeight: 1, MaxTerritorySize: 10})
	first := g.addRegion(hexgrid.Hex{Q: 0, R: 0})
	second := g.addRegion(hexgrid.Hex{Q: 2, R: 0})
	g.blocked[hexgrid.Hex{Q: 1, R: 0}.Key()] = true

	g.enforceConnectivity()

	assert.Equal(t, 1, first.size())
	assert.Equal(t, 0, second.size())
}
