package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MainSaveName is the slot commands use unless another is named.
const MainSaveName = "main"

type SaveRepo struct {
	db *sql.DB
}

func NewSaveRepo(db *sql.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// Get returns the named save, or nil when the slot is empty.
func (r *SaveRepo) Get(ctx context.Context, name string) (*Save, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, data, day, updated_at
		FROM saves
		WHERE name = ?
	`, name)
	var s Save
	if err := row.Scan(&s.Name, &s.Data, &s.Day, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("save get: %w", err)
	}
	return &s, nil
}

// Put writes the slot, creating or replacing it.
func (r *SaveRepo) Put(ctx context.Context, name string, data []byte, day int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (name, data, day, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			day = excluded.day,
			updated_at = CURRENT_TIMESTAMP
	`, name, data, day)
	if err != nil {
		return fmt.Errorf("save put: %w", err)
	}
	return nil
}

// PutTx is Put inside an existing transaction.
func (r *SaveRepo) PutTx(ctx context.Context, tx *sql.Tx, name string, data []byte, day int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO saves (name, data, day, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			day = excluded.day,
			updated_at = CURRENT_TIMESTAMP
	`, name, data, day)
	if err != nil {
		return fmt.Errorf("save put: %w", err)
	}
	return nil
}

// Delete clears a slot. Deleting an empty slot is not an error.
func (r *SaveRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE name = ?`, name); err != nil {
		return fmt.Errorf("save delete: %w", err)
	}
	return nil
}

// List returns every slot, newest first, without the data payloads.
func (r *SaveRepo) List(ctx context.Context) ([]Save, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, day, updated_at
		FROM saves
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("save list: %w", err)
	}
	defer rows.Close()

	var saves []Save
	for rows.Next() {
		var s Save
		if err := rows.Scan(&s.Name, &s.Day, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("save list scan: %w", err)
		}
		saves = append(saves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save list rows: %w", err)
	}
	return saves, nil
}
