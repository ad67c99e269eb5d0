package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// InsertTx appends a review row inside an existing transaction so the review
// lands atomically with the save that produced it.
func (r *ReviewRepo) InsertTx(ctx context.Context, tx *sql.Tx, rec ReviewRecord) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (
			save_name, project_id, project_title, genre, day,
			star_rating, final_score, payout, reputation_gain, critical, data
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.SaveName, rec.ProjectID, rec.ProjectTitle, rec.Genre, rec.Day,
		rec.StarRating, rec.FinalScore, rec.Payout, rec.ReputationGain,
		rec.Critical, rec.Data)
	if err != nil {
		return 0, fmt.Errorf("review insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("review last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns the latest reviews for a save, newest first.
func (r *ReviewRepo) ListRecent(ctx context.Context, saveName string, limit int) ([]ReviewRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, save_name, project_id, project_title, genre, day,
			star_rating, final_score, payout, reputation_gain, critical, data, created_at
		FROM reviews
		WHERE save_name = ?
		ORDER BY day DESC, id DESC
		LIMIT ?
	`, saveName, limit)
	if err != nil {
		return nil, fmt.Errorf("review list: %w", err)
	}
	defer rows.Close()

	var recs []ReviewRecord
	for rows.Next() {
		var rec ReviewRecord
		if err := rows.Scan(&rec.ID, &rec.SaveName, &rec.ProjectID, &rec.ProjectTitle,
			&rec.Genre, &rec.Day, &rec.StarRating, &rec.FinalScore, &rec.Payout,
			&rec.ReputationGain, &rec.Critical, &rec.Data, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("review list scan: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review list rows: %w", err)
	}
	return recs, nil
}

// Count returns how many reviews a save has accumulated.
func (r *ReviewRepo) Count(ctx context.Context, saveName string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reviews WHERE save_name = ?
	`, saveName)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("review count: %w", err)
	}
	return n, nil
}
