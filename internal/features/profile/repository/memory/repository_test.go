package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/repository"
)

func TestPutGetRoundTrip(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	record := &models.ProfileRecord{
		Identifier:  "u1",
		DisplayName: "Jane Doe",
		Email:       "jane@example.com",
	}
	require.NoError(t, repo.Put(ctx, record))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.DisplayName)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestGetUnknownIdentifier(t *testing.T) {
	repo := NewRecordRepository()

	got, err := repo.Get(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestPutOverwrites(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u1", DisplayName: "First"}))
	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u1", DisplayName: "Second"}))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.DisplayName)
	assert.Empty(t, got.Email)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u1", DisplayName: "Stored"}))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	got.DisplayName = "Mutated"

	again, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Stored", again.DisplayName)
}

func TestDelete(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u1"}))
	require.NoError(t, repo.Delete(ctx, "u1"))

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	// Deleting an absent record is not an error.
	assert.NoError(t, repo.Delete(ctx, "u1"))
}

func TestList(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u1"}))
	require.NoError(t, repo.Put(ctx, &models.ProfileRecord{Identifier: "u2"}))

	records, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
