package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"studioline/internal/game"
	"studioline/internal/storage"
)

// History returns the most recent reviews for the current save, decoded from
// their stored form.
func (s *Service) History(ctx context.Context, limit int) ([]game.ProjectReview, error) {
	if limit <= 0 {
		limit = 10
	}
	recs, err := s.reviews.ListRecent(ctx, s.saveName, limit)
	if err != nil {
		return nil, err
	}
	reviews := make([]game.ProjectReview, 0, len(recs))
	for _, rec := range recs {
		var r game.ProjectReview
		if err := json.Unmarshal(rec.Data, &r); err != nil {
			return nil, fmt.Errorf("decode review %d: %w", rec.ID, err)
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func reviewRecord(saveName string, review *game.ProjectReview) (storage.ReviewRecord, error) {
	data, err := json.Marshal(review)
	if err != nil {
		return storage.ReviewRecord{}, fmt.Errorf("encode review: %w", err)
	}
	return storage.ReviewRecord{
		SaveName:       saveName,
		ProjectID:      review.ProjectID,
		ProjectTitle:   review.ProjectTitle,
		Genre:          string(review.Genre),
		Day:            review.Day,
		StarRating:     review.StarRating,
		FinalScore:     review.FinalScore,
		Payout:         review.Payout,
		ReputationGain: review.ReputationGain,
		Critical:       review.CriticalSuccess,
		Data:           data,
	}, nil
}
