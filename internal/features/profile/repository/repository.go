package repository

import (
	"context"
	"errors"

	"proposal-tracker-backend/internal/features/profile/models"
)

// ErrRecordNotFound is returned by Get when no record exists for the
// identifier. Callers treat this as a normal state, not a failure.
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository is the key-value store of profile records, last write
// wins. Implementations: memory (default, volatile) and redis (opt-in).
type RecordRepository interface {
	Put(ctx context.Context, record *models.ProfileRecord) error
	Get(ctx context.Context, identifier string) (*models.ProfileRecord, error)
	Delete(ctx context.Context, identifier string) error
	List(ctx context.Context) ([]*models.ProfileRecord, error)
}
