// Package index persists an assembled graph as an SQLite snapshot.
//
// The snapshot lives at <vault>/.vaultgraph/graph.db and is rewritten on
// every save; it exists for inspection (vgr stats) and downstream tooling,
// not as an incremental cache.
package index

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/vaultgraph/internal/vault"
	"github.com/aidanlsb/vaultgraph/pkg/graph"
)

// schemaVersion is bumped on incompatible snapshot schema changes. A
// mismatched snapshot is dropped and recreated; it holds no original data.
const schemaVersion = 1

// Database is the snapshot database handle.
type Database struct {
	db *sql.DB
}

// Open opens or creates the snapshot database for a vault.
func Open(vaultPath string) (*Database, error) {
	dbDir := filepath.Join(vaultPath, vault.DataDir)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", vault.DataDir, err)
	}

	dbPath := filepath.Join(dbDir, "graph.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	var version int
	err := d.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if err == nil && version == schemaVersion {
		return nil
	}

	stmts := []string{
		`DROP TABLE IF EXISTS refs`,
		`DROP TABLE IF EXISTS edges`,
		`DROP TABLE IF EXISTS nodes`,
		`DROP TABLE IF EXISTS meta`,
		`CREATE TABLE meta (key TEXT PRIMARY KEY, value INTEGER NOT NULL)`,
		`CREATE TABLE nodes (
			id       TEXT PRIMARY KEY,
			kind     TEXT NOT NULL,
			describe TEXT NOT NULL DEFAULT '',
			body     TEXT NOT NULL DEFAULT '',
			data     TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE edges (
			source        TEXT NOT NULL REFERENCES nodes(id),
			target        TEXT NOT NULL REFERENCES nodes(id),
			relation_type TEXT NOT NULL DEFAULT '',
			defined_by    TEXT NOT NULL,
			body          TEXT NOT NULL DEFAULT '',
			data          TEXT NOT NULL DEFAULT '{}',
			PRIMARY KEY (source, target)
		)`,
		`CREATE TABLE refs (
			owner   TEXT NOT NULL,
			target  TEXT NOT NULL,
			display TEXT NOT NULL
		)`,
		`CREATE INDEX idx_refs_owner ON refs(owner)`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize snapshot schema: %w", err)
		}
	}
	if _, err := d.db.Exec(
		`INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	return nil
}

// Save replaces the snapshot with the given graph.
func (d *Database) Save(g *graph.Graph) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"refs", "edges", "nodes"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, n := range g.Nodes() {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to encode node %s: %w", n.ID, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO nodes (id, kind, describe, body, data) VALUES (?, ?, ?, ?, ?)`,
			n.ID, n.Kind, n.Describe, n.Body, string(data)); err != nil {
			return fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
		if err := insertRefs(tx, n.ID, n.Refs); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode edge %s->%s: %w", e.Source, e.Target, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO edges (source, target, relation_type, defined_by, body, data) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Source, e.Target, e.RelationType, e.DefinedBy, e.Body, string(data)); err != nil {
			return fmt.Errorf("failed to insert edge %s->%s: %w", e.Source, e.Target, err)
		}
		if err := insertRefs(tx, e.DefinedBy, e.Refs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertRefs(tx *sql.Tx, owner string, refs []graph.Ref) error {
	for _, r := range refs {
		if _, err := tx.Exec(
			`INSERT INTO refs (owner, target, display) VALUES (?, ?, ?)`,
			owner, r.Target, r.Display); err != nil {
			return fmt.Errorf("failed to insert ref %s -> %s: %w", owner, r.Target, err)
		}
	}
	return nil
}

// Stats holds snapshot counts.
type Stats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	RefCount  int `json:"ref_count"`
}

// Stats returns counts from the snapshot.
func (d *Database) Stats() (Stats, error) {
	var s Stats
	queries := []struct {
		sql  string
		dest *int
	}{
		{`SELECT COUNT(*) FROM nodes`, &s.NodeCount},
		{`SELECT COUNT(*) FROM edges`, &s.EdgeCount},
		{`SELECT COUNT(*) FROM refs`, &s.RefCount},
	}
	for _, q := range queries {
		if err := d.db.QueryRow(q.sql).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("failed to query snapshot stats: %w", err)
		}
	}
	return s, nil
}
