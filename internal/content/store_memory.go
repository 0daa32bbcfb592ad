// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository]. IDs are assigned from
// monotonic sequences, so creation order equals ID order as in Postgres.
type MemoryRepository struct {
	mu sync.RWMutex

	chapters      map[int64]Chapter
	pages         map[int64]Page
	nextChapterID int64
	nextPageID    int64

	now func() time.Time
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		chapters: make(map[int64]Chapter),
		pages:    make(map[int64]Page),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func byOrderThenID[T any](order func(T) int, id func(T) int64) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Or(cmp.Compare(order(a), order(b)), cmp.Compare(id(a), id(b)))
	}
}

var (
	chapterOrdering = byOrderThenID(func(c *Chapter) int { return c.Order }, func(c *Chapter) int64 { return c.ID })
	pageOrdering    = byOrderThenID(func(p *Page) int { return p.Order }, func(p *Page) int64 { return p.ID })
)

// # Chapters

func (repository *MemoryRepository) ListChapters(ctx context.Context) ([]*Chapter, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	chapters := make([]*Chapter, 0, len(repository.chapters))
	for _, chapter := range repository.chapters {
		chapters = append(chapters, &chapter)
	}
	slices.SortFunc(chapters, chapterOrdering)
	return chapters, nil
}

func (repository *MemoryRepository) FindChapterBySlug(ctx context.Context, slug string) (*Chapter, error) {
	chapters, _ := repository.ListChapters(ctx)
	for _, chapter := range chapters {
		if chapter.Slug == slug {
			return chapter, nil
		}
	}
	return nil, apperr.NotFound(resourceChapter)
}

func (repository *MemoryRepository) CreateChapter(ctx context.Context, chapter *Chapter) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextChapterID++
	chapter.ID = repository.nextChapterID
	chapter.CreatedAt = repository.now()
	chapter.UpdatedAt = chapter.CreatedAt

	repository.chapters[chapter.ID] = *chapter
	return nil
}

func (repository *MemoryRepository) UpdateChapter(ctx context.Context, id int64, patch ChapterPatch) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	chapter, ok := repository.chapters[id]
	if !ok {
		return apperr.NotFound(resourceChapter)
	}

	if patch.Title != nil {
		chapter.Title = *patch.Title
	}
	if patch.Slug != nil {
		chapter.Slug = *patch.Slug
	}
	if patch.Order != nil {
		chapter.Order = *patch.Order
	}
	chapter.UpdatedAt = repository.now()

	repository.chapters[id] = chapter
	return nil
}

func (repository *MemoryRepository) DeleteChapter(ctx context.Context, id int64) (int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.chapters[id]; !ok {
		return 0, apperr.NotFound(resourceChapter)
	}

	var deleted int64
	for pageID, page := range repository.pages {
		if page.ChapterID == id {
			delete(repository.pages, pageID)
			deleted++
		}
	}
	delete(repository.chapters, id)

	return deleted, nil
}

// # Pages

func (repository *MemoryRepository) ListPages(ctx context.Context, chapterID int64) ([]*Page, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	pages := make([]*Page, 0)
	for _, page := range repository.pages {
		if page.ChapterID == chapterID {
			pages = append(pages, &page)
		}
	}
	slices.SortFunc(pages, pageOrdering)
	return pages, nil
}

func (repository *MemoryRepository) FindPage(ctx context.Context, id int64) (*Page, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	page, ok := repository.pages[id]
	if !ok {
		return nil, apperr.NotFound(resourcePage)
	}
	return &page, nil
}

func (repository *MemoryRepository) CreatePage(ctx context.Context, page *Page) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.chapters[page.ChapterID]; !ok {
		return apperr.NotFound(resourceChapter)
	}

	repository.nextPageID++
	page.ID = repository.nextPageID
	page.CreatedAt = repository.now()
	page.UpdatedAt = page.CreatedAt

	repository.pages[page.ID] = *page
	return nil
}

func (repository *MemoryRepository) UpdatePage(ctx context.Context, id int64, patch PagePatch) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	page, ok := repository.pages[id]
	if !ok {
		return apperr.NotFound(resourcePage)
	}

	if patch.Title != nil {
		page.Title = *patch.Title
	}
	if patch.Content != nil {
		page.Content = *patch.Content
	}
	if patch.Status != nil {
		page.Status = *patch.Status
	}
	if patch.Order != nil {
		page.Order = *patch.Order
	}
	page.UpdatedAt = repository.now()

	repository.pages[id] = page
	return nil
}

func (repository *MemoryRepository) DeletePage(ctx context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.pages[id]; !ok {
		return apperr.NotFound(resourcePage)
	}
	delete(repository.pages, id)
	return nil
}
