package mapgen

// growRegions is the organic-growth pass: round-robin randomized frontier
// expansion. Each round visits every region in a freshly randomized order
// and lets it claim at most one uniformly random hex from its frontier.
// The equal per-round claim rate is what keeps large-frontier regions
// from dominating and produces organic shapes.
//
// Every claimed hex comes from the region's frontier, so each region's
// hex set stays edge-connected throughout.
//
// The loop stops when the unclaimed pool empties, every region is at
// MaxTerritorySize, or an iteration budget of 2*width*height rounds runs
// out. The budget is a termination safeguard for pathological stalls; it
// is not expected to trigger on well-formed configurations.
func (g *Generator) growRegions() {
	if len(g.regions) == 0 {
		return
	}

	budget := 2 * g.cfg.GridWidth * g.cfg.GridHeight

	for round := 0; round < budget && len(g.unclaimed) > 0; round++ {
		if g.allAtMax() {
			return
		}

		claimed := false
		active := false

		for _, idx := range g.rng.Perm(len(g.regions)) {
			r := g.regions[idx]
			if r.size() >= g.cfg.MaxTerritorySize || len(r.frontier) == 0 {
				continue
			}
			active = true

			pick := g.rng.Intn(len(r.frontier))
			key := r.frontier[pick]

			// Swap-remove from the frontier either way.
			last := len(r.frontier) - 1
			r.frontier[pick] = r.frontier[last]
			r.frontier = r.frontier[:last]
			delete(r.inFrontier, key)

			// Claimed by another region earlier this round: drop it,
			// no retry until next round.
			if !g.unclaimed[key] {
				continue
			}

			r.hexes[key] = true
			r.claims = append(r.claims, key)
			delete(g.unclaimed, key)
			claimed = true

			g.refreshFrontier(r)
		}

		// Nothing claimed and no region has anywhere to grow: further
		// rounds cannot change anything.
		if !claimed && !active {
			return
		}
	}
}

func (g *Generator) allAtMax() bool {
	for _, r := range g.regions {
		if r.size() < g.cfg.MaxTerritorySize {
			return false
		}
	}
	return true
}

// refreshFrontier rebuilds a region's frontier view: prunes entries that
// were claimed elsewhere and adds every still-unclaimed, non-blocked
// neighbor of the region's hexes. Claim order and the fixed direction
// enumeration keep insertion order deterministic.
func (g *Generator) refreshFrontier(r *region) {
	kept := r.frontier[:0]
	for _, key := range r.frontier {
		if g.unclaimed[key] {
			kept = append(kept, key)
		} else {
			delete(r.inFrontier, key)
		}
	}
	r.frontier = kept

	for _, key := range r.claims {
		for _, n := range g.coords[key].Neighbors() {
			nk := n.Key()
			if _, inGrid := g.coords[nk]; !inGrid {
				continue
			}
			if g.blocked[nk] || !g.unclaimed[nk] || r.inFrontier[nk] {
				continue
			}
			r.frontier = append(r.frontier, nk)
			r.inFrontier[nk] = true
		}
	}
}
