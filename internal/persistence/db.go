// Package persistence provides SQLite-based storage for generated maps.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jfx1026/RiskGame/internal/hexgrid"
	"github.com/jfx1026/RiskGame/internal/mapgen"
)

// DB wraps a SQLite connection for map storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// An in-memory database exists per connection; without this the
	// pool would hand out fresh, schemaless databases.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		grid_width INTEGER NOT NULL,
		grid_height INTEGER NOT NULL,
		config_json TEXT NOT NULL,
		blocked_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS territories (
		map_id TEXT NOT NULL,
		territory_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		terrain INTEGER NOT NULL,
		size_class INTEGER NOT NULL,
		owner INTEGER NOT NULL,
		armies INTEGER NOT NULL,
		hexes_json TEXT NOT NULL,
		neighbors_json TEXT NOT NULL,
		PRIMARY KEY (map_id, territory_id)
	);

	CREATE INDEX IF NOT EXISTS idx_territories_map ON territories(map_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// MapSummary describes one stored map.
type MapSummary struct {
	ID          string `db:"id" json:"id"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	Seed        int64  `db:"seed" json:"seed"`
	GridWidth   int    `db:"grid_width" json:"gridWidth"`
	GridHeight  int    `db:"grid_height" json:"gridHeight"`
	Territories int    `db:"territories" json:"territories"`
}

// SaveMap writes a generated map (full replace by id). A blank map ID is
// assigned a fresh UUID; the assigned id is returned.
func (db *DB) SaveMap(m *mapgen.GeneratedMap) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	configJSON, err := json.Marshal(m.Config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	blockedJSON, err := json.Marshal(m.SortedBlockedKeys())
	if err != nil {
		return "", fmt.Errorf("marshal blocked set: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM territories WHERE map_id = ?", m.ID); err != nil {
		return "", err
	}
	if _, err := tx.Exec("DELETE FROM maps WHERE id = ?", m.ID); err != nil {
		return "", err
	}

	_, err = tx.Exec(`INSERT INTO maps
		(id, created_at, seed, grid_width, grid_height, config_json, blocked_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, time.Now().UTC().Format(time.RFC3339), m.Seed,
		m.Config.GridWidth, m.Config.GridHeight,
		string(configJSON), string(blockedJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert map: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO territories
		(map_id, territory_id, name, color, terrain, size_class, owner, armies,
		 hexes_json, neighbors_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, t := range m.Territories {
		hexesJSON, _ := json.Marshal(t.SortedHexKeys())
		neighborsJSON, _ := json.Marshal(t.SortedNeighbors())

		_, err := stmt.Exec(
			m.ID, t.ID, t.Name, t.Color, t.Terrain, t.SizeClass,
			t.Owner, t.Armies, string(hexesJSON), string(neighborsJSON),
		)
		if err != nil {
			return "", fmt.Errorf("insert territory %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("map saved", "id", m.ID, "territories", len(m.Territories))
	return m.ID, nil
}

// LoadMap reads a stored map back into memory. The grid hex list is
// re-derived from the stored configuration; the grid builder is
// deterministic, so the round trip is exact.
func (db *DB) LoadMap(id string) (*mapgen.GeneratedMap, error) {
	var row struct {
		ID          string `db:"id"`
		Seed        int64  `db:"seed"`
		ConfigJSON  string `db:"config_json"`
		BlockedJSON string `db:"blocked_json"`
	}
	err := db.conn.Get(&row,
		"SELECT id, seed, config_json, blocked_json FROM maps WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", id, err)
	}

	var cfg mapgen.Config
	if err := json.Unmarshal([]byte(row.ConfigJSON), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	var blockedKeys []string
	if err := json.Unmarshal([]byte(row.BlockedJSON), &blockedKeys); err != nil {
		return nil, fmt.Errorf("unmarshal blocked set: %w", err)
	}
	blocked := make(map[string]bool, len(blockedKeys))
	for _, k := range blockedKeys {
		blocked[k] = true
	}

	m := &mapgen.GeneratedMap{
		ID:      row.ID,
		Seed:    row.Seed,
		Config:  cfg,
		Hexes:   hexgrid.RectGrid(cfg.GridWidth, cfg.GridHeight),
		Blocked: blocked,
	}

	var terrRows []struct {
		TerritoryID   int    `db:"territory_id"`
		Name          string `db:"name"`
		Color         string `db:"color"`
		Terrain       int    `db:"terrain"`
		SizeClass     int    `db:"size_class"`
		Owner         int    `db:"owner"`
		Armies        int    `db:"armies"`
		HexesJSON     string `db:"hexes_json"`
		NeighborsJSON string `db:"neighbors_json"`
	}
	err = db.conn.Select(&terrRows, `SELECT territory_id, name, color, terrain,
		size_class, owner, armies, hexes_json, neighbors_json
		FROM territories WHERE map_id = ? ORDER BY territory_id`, id)
	if err != nil {
		return nil, fmt.Errorf("load territories for %s: %w", id, err)
	}

	for _, tr := range terrRows {
		var hexKeys []string
		if err := json.Unmarshal([]byte(tr.HexesJSON), &hexKeys); err != nil {
			return nil, fmt.Errorf("unmarshal territory %d hexes: %w", tr.TerritoryID, err)
		}
		var neighborIDs []int
		if err := json.Unmarshal([]byte(tr.NeighborsJSON), &neighborIDs); err != nil {
			return nil, fmt.Errorf("unmarshal territory %d neighbors: %w", tr.TerritoryID, err)
		}

		t := &mapgen.Territory{
			ID:        tr.TerritoryID,
			Name:      tr.Name,
			Color:     tr.Color,
			Terrain:   mapgen.TerrainClass(tr.Terrain),
			HexKeys:   make(map[string]bool, len(hexKeys)),
			Neighbors: make(map[int]bool, len(neighborIDs)),
			Owner:     tr.Owner,
			Armies:    tr.Armies,
			SizeClass: mapgen.SizeClass(tr.SizeClass),
		}
		for _, k := range hexKeys {
			t.HexKeys[k] = true
		}
		for _, n := range neighborIDs {
			t.Neighbors[n] = true
		}
		m.Territories = append(m.Territories, t)
	}

	return m, nil
}

// ListMaps returns summaries of all stored maps, newest first.
func (db *DB) ListMaps() ([]MapSummary, error) {
	var summaries []MapSummary
	err := db.conn.Select(&summaries, `SELECT m.id, m.created_at, m.seed,
		m.grid_width, m.grid_height,
		(SELECT COUNT(*) FROM territories t WHERE t.map_id = m.id) AS territories
		FROM maps m ORDER BY m.created_at DESC`)
	return summaries, err
}

// DeleteMap removes a stored map and its territories.
func (db *DB) DeleteMap(id string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM territories WHERE map_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM maps WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}
