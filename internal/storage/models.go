package storage

import "time"

// Save is one named save slot. Data holds the full game-state JSON document.
type Save struct {
	Name      string
	Data      []byte
	Day       int
	UpdatedAt time.Time
}

// ReviewRecord is one persisted project review. Rows are append-only.
type ReviewRecord struct {
	ID             int64
	SaveName       string
	ProjectID      string
	ProjectTitle   string
	Genre          string
	Day            int
	StarRating     int
	FinalScore     int
	Payout         int
	ReputationGain int
	Critical       bool
	Data           []byte
	CreatedAt      time.Time
}
