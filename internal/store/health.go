package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
)

// HealthStore persists scored wellness submissions.
type HealthStore interface {
	Create(ctx context.Context, record *models.HealthRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error)
}

type healthStore struct {
	db *pgxpool.Pool
}

// NewHealthStore creates a HealthStore backed by the given pool.
func NewHealthStore(db *pgxpool.Pool) HealthStore {
	return &healthStore{db: db}
}

func (s *healthStore) Create(ctx context.Context, record *models.HealthRecord) error {
	record.ID = uuid.New()
	record.CreatedAt = time.Now()

	_, err := s.db.Exec(ctx,
		`INSERT INTO health_records (id, user_id, sleep, appetite, stress, activity, result, recommendation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID, record.UserID, record.Sleep, record.Appetite, record.Stress,
		record.Activity, record.Result, record.Recommendation, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert health record: %w", err)
	}
	return nil
}

// ListByUser returns all records owned by userID, newest first.
func (s *healthStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, sleep, appetite, stress, activity, result, recommendation, created_at
		 FROM health_records WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query health records: %w", err)
	}
	defer rows.Close()

	records := []models.HealthRecord{}
	for rows.Next() {
		var r models.HealthRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Sleep, &r.Appetite, &r.Stress,
			&r.Activity, &r.Result, &r.Recommendation, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate health records: %w", err)
	}
	return records, nil
}
