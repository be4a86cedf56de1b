package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite route-history database.
type DB struct {
	sql *sql.DB
}

func defaultPath() string {
	// Prefer working directory so the DB is stable across go run / go build.
	// Fall back to executable directory for deployed builds.
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "router.db")
	}
	exe, _ := os.Executable()
	return filepath.Join(filepath.Dir(exe), "router.db")
}

// Open opens (or creates) the SQLite database at path and runs migrations.
// An empty path uses router.db in the working directory.
func Open(path string) (*DB, error) {
	if path == "" {
		path = defaultPath()
	}
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS route_history (
				id           INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp    TEXT NOT NULL,
				map_path     TEXT NOT NULL,
				start_system TEXT NOT NULL,
				system_count INTEGER NOT NULL,
				total_cost   REAL NOT NULL,
				closed_tour  INTEGER NOT NULL DEFAULT 0,
				route_json   TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_route_history_ts ON route_history(timestamp);

			INSERT INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}
