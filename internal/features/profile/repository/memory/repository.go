// Package memory holds records in a process-local map. This is the default
// store: volatile by design, cleared on every restart, no TTL and no cap.
package memory

import (
	"context"
	"sync"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/repository"
)

type recordRepository struct {
	mu      sync.RWMutex
	records map[string]*models.ProfileRecord
}

func NewRecordRepository() repository.RecordRepository {
	return &recordRepository{
		records: make(map[string]*models.ProfileRecord),
	}
}

func (r *recordRepository) Put(_ context.Context, record *models.ProfileRecord) error {
	cp := *record

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.Identifier] = &cp
	return nil
}

func (r *recordRepository) Get(_ context.Context, identifier string) (*models.ProfileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[identifier]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	cp := *record
	return &cp, nil
}

func (r *recordRepository) Delete(_ context.Context, identifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, identifier)
	return nil
}

func (r *recordRepository) List(_ context.Context) ([]*models.ProfileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.ProfileRecord, 0, len(r.records))
	for _, record := range r.records {
		cp := *record
		records = append(records, &cp)
	}
	return records, nil
}
