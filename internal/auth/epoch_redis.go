// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// RedisEpochStore implements [EpochStore] on a single Redis counter, shared
// by every API instance.
type RedisEpochStore struct {
	client *redis.Client
	key    string
}

// NewRedisEpochStore creates a Redis-backed EpochStore.
func NewRedisEpochStore(client *redis.Client) *RedisEpochStore {
	return &RedisEpochStore{client: client, key: constants.RedisKeyRevocationEpoch}
}

/*
Current reads the epoch counter.

Returns:
  - int64: The current epoch, 0 when the key was never written
  - error: Connectivity errors
*/
func (store *RedisEpochStore) Current(ctx context.Context) (int64, error) {
	epoch, err := store.client.Get(ctx, store.key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_epoch_get_failed: %w", err)
	}
	return epoch, nil
}

/*
Advance atomically increments the epoch counter.

Returns:
  - int64: The new epoch
  - error: Connectivity errors
*/
func (store *RedisEpochStore) Advance(ctx context.Context) (int64, error) {
	epoch, err := store.client.Incr(ctx, store.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_epoch_incr_failed: %w", err)
	}
	return epoch, nil
}
