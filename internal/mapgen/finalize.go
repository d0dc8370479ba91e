package mapgen

// finalize drops empty regions, assigns the externally visible dense
// 0..N-1 ids, display names, colors, and terrain flavor in one step, and
// derives the final adjacency graph. Slot indices used during generation
// never leak out.
func (g *Generator) finalize() *GeneratedMap {
	live := make([]*region, 0, len(g.regions))
	for _, r := range g.regions {
		if r.size() > 0 {
			live = append(live, r)
		}
	}

	names := generateNames(g.rng, len(live))
	elevation := g.elevationField()

	territories := make([]*Territory, len(live))
	for id, r := range live {
		territories[id] = &Territory{
			ID:        id,
			Name:      names[id],
			Color:     colorForID(id),
			Terrain:   classifyTerrain(r, elevation),
			HexKeys:   r.hexes,
			Owner:     -1,
			SizeClass: classForSize(r.size(), g.cfg),
		}
	}

	g.buildAdjacency(territories)

	return &GeneratedMap{
		Seed:        g.cfg.Seed,
		Config:      g.cfg,
		Hexes:       g.grid,
		Blocked:     g.blocked,
		Territories: territories,
	}
}
