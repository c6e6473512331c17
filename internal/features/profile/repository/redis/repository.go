// Package redis stores records in Redis so they survive a redeploy. It is
// selected when REDIS_ADDR is configured and carries the same last-write-wins
// semantics as the in-memory store.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/repository"
)

const keyPrefix = "record:"

type recordRepository struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) repository.RecordRepository {
	return &recordRepository{client: client}
}

func (r *recordRepository) Put(ctx context.Context, record *models.ProfileRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return r.client.Set(ctx, keyPrefix+record.Identifier, data, 0).Err()
}

func (r *recordRepository) Get(ctx context.Context, identifier string) (*models.ProfileRecord, error) {
	data, err := r.client.Get(ctx, keyPrefix+identifier).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrRecordNotFound
		}
		return nil, err
	}

	var record models.ProfileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}

	return &record, nil
}

func (r *recordRepository) Delete(ctx context.Context, identifier string) error {
	return r.client.Del(ctx, keyPrefix+identifier).Err()
}

func (r *recordRepository) List(ctx context.Context) ([]*models.ProfileRecord, error) {
	var records []*models.ProfileRecord
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var record models.ProfileRecord
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}

		records = append(records, &record)
	}

	return records, iter.Err()
}
