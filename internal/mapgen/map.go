package mapgen

import (
	"fmt"
	"sort"

	"github.com/jfx1026/RiskGame/internal/hexgrid"
)

// GeneratedMap is the immutable result of one generation run.
//
// Invariant: every hex in Hexes belongs to exactly one of a territory's
// hex set or the Blocked set. The partition is exact and total — no hex
// is unassigned and none is double-assigned.
type GeneratedMap struct {
	// ID identifies the map in storage. Empty until saved; the generator
	// leaves it blank so identical seeds produce identical maps.
	ID string `json:"id,omitempty"`

	Seed        int64          `json:"seed"`
	Config      Config         `json:"config"`
	Hexes       []hexgrid.Hex  `json:"hexes"`
	Blocked     map[string]bool `json:"-"`
	Territories []*Territory   `json:"territories"`
}

// SortedBlockedKeys returns the blocked hex keys in lexical order.
func (m *GeneratedMap) SortedBlockedKeys() []string {
	keys := make([]string, 0, len(m.Blocked))
	for k := range m.Blocked {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TerritoryAt returns the territory owning the given hex, or nil if the
// hex is blocked or outside the grid.
func (m *GeneratedMap) TerritoryAt(h hexgrid.Hex) *Territory {
	key := h.Key()
	for _, t := range m.Territories {
		if t.HexKeys[key] {
			return t
		}
	}
	return nil
}

// String returns a summary of the map.
func (m *GeneratedMap) String() string {
	return fmt.Sprintf("GeneratedMap(%dx%d, territories=%d, blocked=%d)",
		m.Config.GridWidth, m.Config.GridHeight, len(m.Territories), len(m.Blocked))
}
