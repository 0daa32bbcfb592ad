// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository].
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]Media
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[int64]Media),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) Create(ctx context.Context, media *Media) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	media.ID = repository.nextID
	media.UploadedAt = repository.now()

	repository.items[media.ID] = *media
	return nil
}

func (repository *MemoryRepository) List(ctx context.Context) ([]*Media, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	items := make([]*Media, 0, len(repository.items))
	for _, media := range repository.items {
		items = append(items, &media)
	}

	slices.SortFunc(items, func(a, b *Media) int {
		return cmp.Or(b.UploadedAt.Compare(a.UploadedAt), cmp.Compare(b.ID, a.ID))
	})
	return items, nil
}

func (repository *MemoryRepository) Find(ctx context.Context, id int64) (*Media, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	media, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound(resourceMedia)
	}
	return &media, nil
}

func (repository *MemoryRepository) Delete(ctx context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound(resourceMedia)
	}
	delete(repository.items, id)
	return nil
}
