// Package mapgen procedurally partitions a rectangular hex grid into
// contiguous, variably sized territories for a strategy-game map.
//
// Generation runs as a pipeline of passes: grid enumeration, blocked-tile
// selection, seed placement, round-robin frontier growth, then repair
// passes (unclaimed resolution, size balancing, connectivity enforcement)
// that leave a single connected landmass of size-bounded regions with a
// derived adjacency graph.
package mapgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds map generation parameters.
type Config struct {
	GridWidth  int `yaml:"grid_width" json:"gridWidth"`   // Grid width in tiles
	GridHeight int `yaml:"grid_height" json:"gridHeight"` // Grid height in tiles

	// TerritoryCount is an upper bound on the number of regions; the
	// final count may be lower after cleanup passes drop territories.
	TerritoryCount int `yaml:"territory_count" json:"territoryCount"`

	MinTerritorySize int `yaml:"min_territory_size" json:"minTerritorySize"` // Merge threshold
	MaxTerritorySize int `yaml:"max_territory_size" json:"maxTerritorySize"` // Hard growth cap

	// EmptyTilePercent is the fraction of tiles marked impassable,
	// clamped to [0, 50].
	EmptyTilePercent int `yaml:"empty_tile_percent" json:"emptyTilePercent"`

	// Seed drives all randomness. 0 means pick a time-based seed; the
	// resolved value is recorded on the generated map so any run can be
	// reproduced exactly.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		GridWidth:        16,
		GridHeight:       12,
		TerritoryCount:   12,
		MinTerritorySize: 5,
		MaxTerritorySize: 24,
		EmptyTilePercent: 10,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() Config {
	return Config{
		GridWidth:        6,
		GridHeight:       6,
		TerritoryCount:   4,
		MinTerritorySize: 3,
		MaxTerritorySize: 12,
		EmptyTilePercent: 0,
		Seed:             42,
	}
}

// Load reads a configuration from a YAML file, filling unset fields
// from DefaultConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// normalized returns a copy with degenerate values clamped. Generation
// never fails on odd inputs; it clamps and produces a degenerate map.
func (c Config) normalized() Config {
	if c.GridWidth < 0 {
		c.GridWidth = 0
	}
	if c.GridHeight < 0 {
		c.GridHeight = 0
	}
	if c.TerritoryCount < 0 {
		c.TerritoryCount = 0
	}
	if c.EmptyTilePercent < 0 {
		c.EmptyTilePercent = 0
	}
	if c.EmptyTilePercent > 50 {
		c.EmptyTilePercent = 50
	}
	if c.MinTerritorySize < 0 {
		c.MinTerritorySize = 0
	}
	if c.MaxTerritorySize < 1 {
		c.MaxTerritorySize = 1
	}
	return c
}
