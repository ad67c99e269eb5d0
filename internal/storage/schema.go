package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so re-running on
// an existing database is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// The full game state lives as one JSON document per save slot;
		// the engine round-trips it whole on every command.
		`CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			day INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// Reviews are written once at project completion and never updated;
		// the scalar columns are denormalized for listing without decoding
		// the JSON payload.
		`CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			save_name TEXT NOT NULL,
			project_id TEXT NOT NULL,
			project_title TEXT NOT NULL,
			genre TEXT NOT NULL,
			day INTEGER NOT NULL,
			star_rating INTEGER NOT NULL,
			final_score INTEGER NOT NULL,
			payout INTEGER NOT NULL,
			reputation_gain INTEGER NOT NULL,
			critical INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(save_name) REFERENCES saves(name)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_save_name_day ON reviews(save_name, day);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
