package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/repository"
	"proposal-tracker-backend/internal/features/profile/resolver"
)

var (
	// ErrMissingIdentifier rejects payloads that cannot be attributed to
	// any client. Nothing is written to the store in that case.
	ErrMissingIdentifier = errors.New("missing identifier")

	ErrRecordNotFound = errors.New("record not found")
)

type ProfileService interface {
	// Ingest resolves a webhook payload, timestamps it and writes the
	// record. The returned resolution reports how derived fields (the
	// avatar in particular) were populated.
	Ingest(ctx context.Context, payload map[string]interface{}, raw []byte) (*models.ProfileRecord, resolver.Resolution, error)
	Get(ctx context.Context, identifier string) (*models.ProfileRecord, error)
	Delete(ctx context.Context, identifier string) error
}

type profileService struct {
	repo repository.RecordRepository

	// mergeUpdates switches webhook writes from full replacement to a
	// shallow overlay of non-empty incoming fields.
	mergeUpdates bool
}

func NewProfileService(repo repository.RecordRepository, mergeUpdates bool) ProfileService {
	return &profileService{
		repo:         repo,
		mergeUpdates: mergeUpdates,
	}
}

func (s *profileService) Ingest(ctx context.Context, payload map[string]interface{}, raw []byte) (*models.ProfileRecord, resolver.Resolution, error) {
	res := resolver.Resolve(payload)
	if res.Identifier == "" {
		return nil, res, ErrMissingIdentifier
	}

	record := &models.ProfileRecord{
		Identifier:     res.Identifier,
		DisplayName:    res.DisplayName,
		Email:          res.Email,
		FirstName:      res.FirstName,
		LastName:       res.LastName,
		BackgroundInfo: res.BackgroundInfo,
		AvatarURL:      res.AvatarURL,
		LastEvent:      res.LastEvent,
		LastUpdatedAt:  time.Now().UTC().Format(time.RFC3339),
		Raw:            json.RawMessage(raw),
	}

	if s.mergeUpdates {
		if existing, err := s.repo.Get(ctx, res.Identifier); err == nil {
			overlay(record, existing)
		}
	}

	if record.LastEvent == "" {
		record.LastEvent = models.LastEventPlaceholder
	}

	if err := s.repo.Put(ctx, record); err != nil {
		return nil, res, err
	}

	return record, res, nil
}

func (s *profileService) Get(ctx context.Context, identifier string) (*models.ProfileRecord, error) {
	record, err := s.repo.Get(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *profileService) Delete(ctx context.Context, identifier string) error {
	return s.repo.Delete(ctx, identifier)
}

// overlay fills record fields left empty by the incoming payload with the
// previously stored values. The raw body and timestamp always come from
// the new call.
func overlay(record, existing *models.ProfileRecord) {
	if record.DisplayName == "" {
		record.DisplayName = existing.DisplayName
	}
	if record.Email == "" {
		record.Email = existing.Email
	}
	if record.FirstName == "" {
		record.FirstName = existing.FirstName
	}
	if record.LastName == "" {
		record.LastName = existing.LastName
	}
	if record.BackgroundInfo == "" {
		record.BackgroundInfo = existing.BackgroundInfo
	}
	if record.AvatarURL == "" {
		record.AvatarURL = existing.AvatarURL
	}
	if record.LastEvent == "" {
		record.LastEvent = existing.LastEvent
	}
}
