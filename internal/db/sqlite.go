// Package db provides the SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // SQLite driver

	"wayfarer/internal/trip"
)

// SQLite implements trip.Store using SQLite. Saves replace the whole
// stored list inside one transaction, matching the collaborator contract:
// no atomicity stronger than whole-list overwrite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadLegs returns all saved trip legs in insertion order, with their
// catalog and planned activities attached. Planned rows missing required
// fields are data-integrity faults: they are skipped with a warning, never
// fatal.
func (s *SQLite) LoadLegs(ctx context.Context) ([]*trip.Leg, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, country, description, notes, start_date, end_date
		FROM legs
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying legs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var legs []*trip.Leg
	byName := make(map[string]*trip.Leg)
	for rows.Next() {
		var l trip.Leg
		if err := rows.Scan(&l.Name, &l.Country, &l.Description, &l.Notes, &l.StartDate, &l.EndDate); err != nil {
			return nil, fmt.Errorf("scanning leg: %w", err)
		}
		legs = append(legs, &l)
		byName[l.Name] = &l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating legs: %w", err)
	}

	if err := s.loadCatalog(ctx, byName); err != nil {
		return nil, err
	}
	if err := s.loadPlanned(ctx, byName); err != nil {
		return nil, err
	}

	return legs, nil
}

func (s *SQLite) loadCatalog(ctx context.Context, byName map[string]*trip.Leg) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT leg_name, title, description, start, end
		FROM catalog_activities
		ORDER BY leg_name, position
	`)
	if err != nil {
		return fmt.Errorf("querying catalog activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var legName string
		var a trip.CatalogActivity
		if err := rows.Scan(&legName, &a.Title, &a.Description, &a.Start, &a.End); err != nil {
			return fmt.Errorf("scanning catalog activity: %w", err)
		}
		if l, ok := byName[legName]; ok {
			l.Activities = append(l.Activities, a)
		}
	}
	return rows.Err()
}

func (s *SQLite) loadPlanned(ctx context.Context, byName map[string]*trip.Leg) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, leg_name, title, description, start, duration, date
		FROM planned_activities
		ORDER BY leg_name, date, start
	`)
	if err != nil {
		return fmt.Errorf("querying planned activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var legName string
		var a trip.ScheduledActivity
		if err := rows.Scan(&a.ID, &legName, &a.Title, &a.Description, &a.Start, &a.Duration, &a.Date); err != nil {
			return fmt.Errorf("scanning planned activity: %w", err)
		}
		if a.ID == "" || a.Title == "" {
			log.Printf("db: skipping malformed planned activity in leg %q", legName)
			continue
		}
		if l, ok := byName[legName]; ok {
			l.Planned = append(l.Planned, &a)
		}
	}
	return rows.Err()
}

// SaveLegs replaces the entire stored list in a single transaction.
func (s *SQLite) SaveLegs(ctx context.Context, legs []*trip.Leg) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"planned_activities", "catalog_activities", "legs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	legStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO legs (name, country, description, notes, start_date, end_date, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing leg insert: %w", err)
	}
	defer func() { _ = legStmt.Close() }()

	catStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_activities (leg_name, position, title, description, start, end)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing catalog insert: %w", err)
	}
	defer func() { _ = catStmt.Close() }()

	planStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO planned_activities (id, leg_name, title, description, start, duration, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing planned insert: %w", err)
	}
	defer func() { _ = planStmt.Close() }()

	for pos, l := range legs {
		if _, err := legStmt.ExecContext(ctx, l.Name, l.Country, l.Description, l.Notes, l.StartDate, l.EndDate, pos); err != nil {
			return fmt.Errorf("inserting leg %q: %w", l.Name, err)
		}
		for i, a := range l.Activities {
			if _, err := catStmt.ExecContext(ctx, l.Name, i, a.Title, a.Description, a.Start, a.End); err != nil {
				return fmt.Errorf("inserting catalog activity for %q: %w", l.Name, err)
			}
		}
		for _, a := range l.Planned {
			if _, err := planStmt.ExecContext(ctx, a.ID, l.Name, a.Title, a.Description, a.Start, a.Duration, a.Date); err != nil {
				return fmt.Errorf("inserting planned activity for %q: %w", l.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
