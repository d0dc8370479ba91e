package mapgen

import "sort"

// resolveUnclaimed disposes of tiles the growth pass could not place.
// Each leftover hex goes to the smallest neighboring region still below
// MaxTerritorySize (ties to the first such region in neighbor enumeration
// order); with no eligible neighbor it becomes blocked. Assigning to the
// smallest neighbor actively rebalances sizes instead of reinforcing the
// largest region.
func (g *Generator) resolveUnclaimed() {
	own := g.ownership()

	for _, h := range g.grid {
		key := h.Key()
		if !g.unclaimed[key] {
			continue
		}
		delete(g.unclaimed, key)

		best := -1
		seen := make(map[int]bool)
		for _, n := range h.Neighbors() {
			slot, ok := own[n.Key()]
			if !ok || seen[slot] {
				continue
			}
			seen[slot] = true
			r := g.regions[slot]
			if r.size() >= g.cfg.MaxTerritorySize {
				continue
			}
			if best < 0 || r.size() < g.regions[best].size() {
				best = slot
			}
		}

		if best < 0 {
			g.blocked[key] = true
			continue
		}

		r := g.regions[best]
		r.hexes[key] = true
		r.claims = append(r.claims, key)
		own[key] = best
	}
}

// balanceSizes merges each undersized region (0 < size < MinTerritorySize)
// into the smallest neighboring region whose post-merge size stays within
// MaxTerritorySize. The pass runs once over every region in slot order and
// does not recurse: a merge target is not re-checked against the bounds.
// The neighbor graph is derived once, up front, from current ownership.
func (g *Generator) balanceSizes() {
	if len(g.regions) == 0 {
		return
	}

	neighbors := g.slotNeighbors(g.ownership())

	for slot, r := range g.regions {
		if r.size() == 0 || r.size() >= g.cfg.MinTerritorySize {
			continue
		}

		// Ascending slot order makes the smallest-neighbor tie-break
		// deterministic.
		candidates := make([]int, 0, len(neighbors[slot]))
		for n := range neighbors[slot] {
			candidates = append(candidates, n)
		}
		sort.Ints(candidates)

		best := -1
		for _, n := range candidates {
			t := g.regions[n]
			if t.size() == 0 {
				continue // already merged away
			}
			if t.size()+r.size() > g.cfg.MaxTerritorySize {
				continue
			}
			if best < 0 || t.size() < g.regions[best].size() {
				best = n
			}
		}
		if best < 0 {
			continue
		}

		target := g.regions[best]
		for _, key := range r.claims {
			target.hexes[key] = true
			target.claims = append(target.claims, key)
		}
		r.hexes = make(map[string]bool)
		r.claims = nil
	}
}

// enforceConnectivity finds the connected components of the full
// territory mass (every owned hex, blocked hexes excluded) and keeps only
// the largest, converting every hex of every smaller component to
// blocked. A size tie goes to the component discovered first in grid
// enumeration order.
func (g *Generator) enforceConnectivity() {
	own := g.ownership()

	visited := make(map[string]bool, len(own))
	var largest []string

	for _, h := range g.grid {
		key := h.Key()
		if _, owned := own[key]; !owned || visited[key] {
			continue
		}

		component := g.floodComponent(key, own, visited)
		if len(component) > len(largest) {
			if largest != nil {
				g.discardComponent(largest, own)
			}
			largest = component
		} else {
			g.discardComponent(component, own)
		}
	}
}

// floodComponent runs a breadth-first search over owned hexes from start,
// crossing territory boundaries freely.
func (g *Generator) floodComponent(start string, own map[string]int, visited map[string]bool) []string {
	component := []string{start}
	visited[start] = true

	for i := 0; i < len(component); i++ {
		for _, n := range g.coords[component[i]].Neighbors() {
			nk := n.Key()
			if _, owned := own[nk]; !owned || visited[nk] {
				continue
			}
			visited[nk] = true
			component = append(component, nk)
		}
	}
	return component
}

// discardComponent turns every hex of a minor component into a blocked
// tile, removing it from its owning region.
func (g *Generator) discardComponent(component []string, own map[string]int) {
	affected := make(map[int]bool)
	for _, key := range component {
		slot := own[key]
		affected[slot] = true
		delete(g.regions[slot].hexes, key)
		g.blocked[key] = true
		delete(own, key)
	}
	for slot := range affected {
		g.regions[slot].claims = pruneClaims(g.regions[slot].claims, g.regions[slot].hexes)
	}
}

// pruneClaims drops claim-order entries no longer in the hex set,
// preserving order.
func pruneClaims(claims []string, hexes map[string]bool) []string {
	kept := claims[:0]
	for _, key := range claims {
		if hexes[key] {
			kept = append(kept, key)
		}
	}
	return kept
}
