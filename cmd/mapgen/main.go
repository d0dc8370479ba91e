// Command mapgen generates a hex territory map and prints or stores it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jfx1026/RiskGame/internal/mapgen"
	"github.com/jfx1026/RiskGame/internal/persistence"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	dbPath := flag.String("db", "", "SQLite database to store the map in (optional)")
	jsonOut := flag.String("json", "", "write the map as JSON to this file, or - for stdout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := mapgen.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = mapgen.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	slog.Info("generating map",
		"grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight),
		"territories", cfg.TerritoryCount,
		"empty_pct", cfg.EmptyTilePercent,
	)

	m := mapgen.Generate(cfg)

	for _, t := range m.Territories {
		slog.Info("territory",
			"id", t.ID,
			"name", t.Name,
			"terrain", mapgen.TerrainName(t.Terrain),
			"tiles", t.Size(),
			"neighbors", len(t.Neighbors),
		)
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveMap(m)
		if err != nil {
			slog.Error("failed to save map", "error", err)
			os.Exit(1)
		}
		slog.Info("map stored", "id", id, "path", *dbPath)
	}

	if *jsonOut != "" {
		if err := writeJSON(m, *jsonOut); err != nil {
			slog.Error("failed to write JSON", "error", err)
			os.Exit(1)
		}
	}

	claimed := 0
	for _, t := range m.Territories {
		claimed += t.Size()
	}
	fmt.Printf("Generated %s territories over %s tiles (%s blocked), seed %d.\n",
		humanize.Comma(int64(len(m.Territories))),
		humanize.Comma(int64(claimed)),
		humanize.Comma(int64(len(m.Blocked))),
		m.Seed,
	)
}

// mapDump is the JSON shape written by -json. Sets are flattened to
// sorted slices so output is stable across runs with the same seed.
type mapDump struct {
	Seed        int64           `json:"seed"`
	Config      mapgen.Config   `json:"config"`
	Blocked     []string        `json:"blocked"`
	Territories []territoryDump `json:"territories"`
}

type territoryDump struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Color     string   `json:"color"`
	Terrain   string   `json:"terrain"`
	Hexes     []string `json:"hexes"`
	Neighbors []int    `json:"neighbors"`
}

func writeJSON(m *mapgen.GeneratedMap, path string) error {
	dump := mapDump{
		Seed:    m.Seed,
		Config:  m.Config,
		Blocked: m.SortedBlockedKeys(),
	}
	for _, t := range m.Territories {
		dump.Territories = append(dump.Territories, territoryDump{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			Terrain:   mapgen.TerrainName(t.Terrain),
			Hexes:     t.SortedHexKeys(),
			Neighbors: t.SortedNeighbors(),
		})
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal map: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
