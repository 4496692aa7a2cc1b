package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies all schema statements. Every statement is written to
// be idempotent, so Migrate re-runs safely on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_snapshots (
		id             TEXT PRIMARY KEY,
		created_at     TEXT NOT NULL,
		catalog_version TEXT NOT NULL DEFAULT '',
		score          REAL NOT NULL DEFAULT 0,
		tier           TEXT NOT NULL DEFAULT '',
		week_count     INTEGER NOT NULL DEFAULT 0,
		module_count   INTEGER NOT NULL DEFAULT 0,
		total_minutes  INTEGER NOT NULL DEFAULT 0,
		plan_json      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_snapshots_created ON plan_snapshots(created_at)`,
}
