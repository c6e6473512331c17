package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/repository/memory"
	"proposal-tracker-backend/internal/features/profile/resolver"
)

func ingest(t *testing.T, svc ProfileService, raw string) (*models.ProfileRecord, resolver.Resolution, error) {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return svc.Ingest(context.Background(), payload, []byte(raw))
}

func TestIngestStoresRecord(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	raw := `{"uid":"u1","first_name":"Jane","last_name":"Doe","email":"jane@example.com","event":"profile.updated"}`
	record, res, err := ingest(t, svc, raw)
	require.NoError(t, err)

	assert.Equal(t, "u1", record.Identifier)
	assert.Equal(t, "Jane Doe", record.DisplayName)
	assert.Equal(t, "jane@example.com", record.Email)
	assert.Equal(t, "profile.updated", record.LastEvent)
	assert.Empty(t, res.AvatarSource)
	assert.JSONEq(t, raw, string(record.Raw))

	stamp, err := time.Parse(time.RFC3339, record.LastUpdatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), stamp, time.Minute)

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, record.DisplayName, got.DisplayName)
}

func TestIngestMissingIdentifier(t *testing.T) {
	repo := memory.NewRecordRepository()
	svc := NewProfileService(repo, false)

	_, _, err := ingest(t, svc, `{"email":"nobody@example.com"}`)
	assert.ErrorIs(t, err, ErrMissingIdentifier)

	records, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, records, "rejected payloads must not touch the store")
}

func TestIngestLastEventPlaceholder(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	record, _, err := ingest(t, svc, `{"uid":"u1"}`)
	require.NoError(t, err)
	assert.Equal(t, models.LastEventPlaceholder, record.LastEvent)
}

func TestIngestReplaceSemantics(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	_, _, err := ingest(t, svc, `{"uid":"u1","name":"Jane Doe","email":"jane@example.com"}`)
	require.NoError(t, err)

	// A partial resend wipes fields it does not carry.
	record, _, err := ingest(t, svc, `{"uid":"u1","email":"new@example.com"}`)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", record.Email)
	assert.Empty(t, record.DisplayName)

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got.DisplayName)
}

func TestIngestMergeSemantics(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), true)

	_, _, err := ingest(t, svc, `{"uid":"u1","name":"Jane Doe","email":"jane@example.com","bio":"code MEU"}`)
	require.NoError(t, err)

	record, _, err := ingest(t, svc, `{"uid":"u1","email":"new@example.com"}`)
	require.NoError(t, err)

	// Previously set fields survive unless explicitly overwritten.
	assert.Equal(t, "new@example.com", record.Email)
	assert.Equal(t, "Jane Doe", record.DisplayName)
	assert.Equal(t, "code MEU", record.BackgroundInfo)
	assert.NotEmpty(t, record.AvatarURL)
}

func TestIngestRestampsIdenticalResend(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	raw := `{"uid":"u1","name":"Jane"}`
	first, _, err := ingest(t, svc, raw)
	require.NoError(t, err)

	second, _, err := ingest(t, svc, raw)
	require.NoError(t, err)

	// No deduplication: the write happens again either way.
	assert.Equal(t, first.DisplayName, second.DisplayName)
	assert.NotEmpty(t, second.LastUpdatedAt)
}

func TestGetUnknownIdentifier(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	record, err := svc.Get(context.Background(), "missing")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewProfileService(memory.NewRecordRepository(), false)

	_, _, err := ingest(t, svc, `{"uid":"u1"}`)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1"))

	_, err = svc.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
