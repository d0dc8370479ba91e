package mapgen

import (
	"fmt"
	"math/rand"
	"sort"
)

// SizeClass buckets territories by tile count for display purposes.
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// Territory is one contiguous region of the generated map.
//
// HexKeys and Neighbors are owned by the generator: HexKeys is the set of
// canonical hex keys defining the region's shape (non-empty and
// edge-connected for every live territory), and Neighbors is derived from
// final tile ownership, recomputed in full whenever the partition changes.
// Owner and Armies belong to the game-state layer; the generator writes
// their initial values and never reads them.
type Territory struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Terrain   TerrainClass    `json:"terrain"`
	HexKeys   map[string]bool `json:"-"`
	Neighbors map[int]bool    `json:"-"`

	Owner     int       `json:"owner"`  // -1 = unowned
	Armies    int       `json:"armies"` // Managed by game state
	SizeClass SizeClass `json:"sizeClass"`
}

// Size returns the territory's tile count.
func (t *Territory) Size() int {
	return len(t.HexKeys)
}

// SortedHexKeys returns the hex keys in lexical order, for stable
// serialization and iteration.
func (t *Territory) SortedHexKeys() []string {
	keys := make([]string, 0, len(t.HexKeys))
	for k := range t.HexKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedNeighbors returns the neighboring territory ids in ascending order.
func (t *Territory) SortedNeighbors() []int {
	ids := make([]int, 0, len(t.Neighbors))
	for id := range t.Neighbors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// territoryColors is the fill palette, cycled by dense territory id.
var territoryColors = []string{
	"#c0504d", "#4f81bd", "#9bbb59", "#8064a2", "#f79646",
	"#4bacc6", "#d99694", "#95b3d7", "#c3d69b", "#b2a2c7",
	"#fac08f", "#92cddc", "#a65b58", "#3a6aa0", "#7a9a45",
}

func colorForID(id int) string {
	return territoryColors[id%len(territoryColors)]
}

// generateNames produces procedural territory names by combining
// syllables, deduplicated. Falls back to numbered names if the syllable
// space runs dry.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"North", "South", "East", "West", "New", "Old", "Upper", "Lower",
		"Iron", "Stone", "Green", "Black", "Silver", "High", "Far", "Gold",
	}
	suffixes := []string{
		"mark", "land", "reach", "hold", "moor", "fell", "shire", "vale",
		"ford", "gate", "crest", "ridge", "haven", "dale", "wold", "march",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if used[name] {
			if len(used) >= len(prefixes)*len(suffixes) {
				name = fmt.Sprintf("Territory %d", len(names)+1)
			} else {
				continue
			}
		}
		used[name] = true
		names = append(names, name)
	}

	return names
}

// classForSize buckets a tile count against the configured size bounds.
func classForSize(size int, cfg Config) SizeClass {
	span := cfg.MaxTerritorySize - cfg.MinTerritorySize
	if span <= 0 {
		return SizeMedium
	}
	switch {
	case size < cfg.MinTerritorySize+span/3:
		return SizeSmall
	case size < cfg.MinTerritorySize+2*span/3:
		return SizeMedium
	default:
		return SizeLarge
	}
}
