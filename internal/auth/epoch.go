// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
)

// EpochStore holds the revocation epoch stamped into every issued marker.
//
// A marker is only honored while its epoch equals the current one, so
// advancing the epoch revokes every outstanding marker at once.
type EpochStore interface {
	// Current returns the epoch new markers are bound to. A store that was
	// never advanced reports 0.
	Current(ctx context.Context) (int64, error)

	// Advance increments the epoch and returns the new value.
	Advance(ctx context.Context) (int64, error)
}

// MemoryEpochStore keeps the epoch in process. A restart resets it to 0, so
// use [RedisEpochStore] when revocation must survive restarts.
type MemoryEpochStore struct {
	mu    sync.Mutex
	epoch int64
}

// NewMemoryEpochStore returns a store at epoch 0.
func NewMemoryEpochStore() *MemoryEpochStore {
	return &MemoryEpochStore{}
}

// Current implements [EpochStore].
func (store *MemoryEpochStore) Current(ctx context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.epoch, nil
}

// Advance implements [EpochStore].
func (store *MemoryEpochStore) Advance(ctx context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.epoch++
	return store.epoch, nil
}
