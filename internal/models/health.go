package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord represents one scored daily wellness submission.
// Records are append-only: they are never updated or deleted.
type HealthRecord struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	Sleep          float64   `json:"sleep" db:"sleep"`
	Appetite       float64   `json:"appetite" db:"appetite"`
	Stress         float64   `json:"stress" db:"stress"`
	Activity       float64   `json:"activity" db:"activity"`
	Result         string    `json:"result" db:"result"`
	Recommendation string    `json:"recommendation" db:"recommendation"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
