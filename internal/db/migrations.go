package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS legs (
			name        TEXT PRIMARY KEY,
			country     TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			notes       TEXT NOT NULL DEFAULT '',
			start_date  TEXT NOT NULL DEFAULT '',
			end_date    TEXT NOT NULL DEFAULT '',
			position    INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS catalog_activities (
			leg_name    TEXT NOT NULL REFERENCES legs(name) ON DELETE CASCADE,
			position    INTEGER NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start       TEXT NOT NULL DEFAULT '',
			end         TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS planned_activities (
			id          TEXT PRIMARY KEY,
			leg_name    TEXT NOT NULL REFERENCES legs(name) ON DELETE CASCADE,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start       TEXT NOT NULL DEFAULT '',
			duration    INTEGER NOT NULL DEFAULT 0,
			date        TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_catalog_leg ON catalog_activities(leg_name, position);
		CREATE INDEX IF NOT EXISTS idx_planned_leg ON planned_activities(leg_name, date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
