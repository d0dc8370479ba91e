package mapgen

// ownership builds the hex-key to region-slot lookup from current region
// hex sets. Repair passes rebuild this view at their start instead of
// patching shared state incrementally.
func (g *Generator) ownership() map[string]int {
	own := make(map[string]int)
	for slot, r := range g.regions {
		for key := range r.hexes {
			own[key] = slot
		}
	}
	return own
}

// slotNeighbors derives the region-to-region neighbor graph from an
// ownership map. Symmetric by construction: both sides of every shared
// edge perform the same scan.
func (g *Generator) slotNeighbors(own map[string]int) []map[int]bool {
	neighbors := make([]map[int]bool, len(g.regions))
	for i := range neighbors {
		neighbors[i] = make(map[int]bool)
	}

	for _, h := range g.grid {
		slot, owned := own[h.Key()]
		if !owned {
			continue
		}
		for _, n := range h.Neighbors() {
			if other, ok := own[n.Key()]; ok && other != slot {
				neighbors[slot][other] = true
			}
		}
	}
	return neighbors
}

// buildAdjacency recomputes every territory's neighbor set from final
// tile ownership. Neighbor sets are cleared and fully rebuilt, never
// incrementally patched.
func (g *Generator) buildAdjacency(territories []*Territory) {
	own := make(map[string]int)
	for _, t := range territories {
		for key := range t.HexKeys {
			own[key] = t.ID
		}
	}

	for _, t := range territories {
		t.Neighbors = make(map[int]bool)
	}

	for _, h := range g.grid {
		id, owned := own[h.Key()]
		if !owned {
			continue
		}
		for _, n := range h.Neighbors() {
			if other, ok := own[n.Key()]; ok && other != id {
				territories[id].Neighbors[other] = true
			}
		}
	}
}
