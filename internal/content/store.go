// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "context"

// Repository defines the data access contract for chapters and pages.
//
// # Implementations
//
// PostgreSQL is canonical. The in-memory repository follows the same
// semantics for local runs and tests.
type Repository interface {
	// ListChapters returns every chapter by order, ties by creation. Never nil.
	ListChapters(ctx context.Context) ([]*Chapter, error)

	// FindChapterBySlug returns the first chapter in list order with the slug.
	//
	// Returns [apperr.NotFound] if none matches.
	FindChapterBySlug(ctx context.Context, slug string) (*Chapter, error)

	// CreateChapter persists a chapter and fills in its ID and timestamps.
	CreateChapter(ctx context.Context, chapter *Chapter) error

	// UpdateChapter applies the non-nil fields of patch atomically.
	//
	// Returns [apperr.NotFound] if the chapter does not exist.
	UpdateChapter(ctx context.Context, id int64, patch ChapterPatch) error

	// DeleteChapter removes the chapter and all of its pages in one
	// transaction and reports how many pages went with it.
	//
	// Returns [apperr.NotFound] if the chapter does not exist.
	DeleteChapter(ctx context.Context, id int64) (int64, error)

	// ListPages returns the pages of a chapter by order, ties by creation.
	// An unknown chapter yields an empty slice.
	ListPages(ctx context.Context, chapterID int64) ([]*Page, error)

	// FindPage returns a page by ID.
	//
	// Returns [apperr.NotFound] if the page does not exist.
	FindPage(ctx context.Context, id int64) (*Page, error)

	// CreatePage persists a page and fills in its ID and timestamps. The
	// chapter check and the insert are one statement.
	//
	// Returns [apperr.NotFound] for "Chapter" if ChapterID does not exist.
	CreatePage(ctx context.Context, page *Page) error

	// UpdatePage applies the non-nil fields of patch atomically.
	//
	// Returns [apperr.NotFound] if the page does not exist.
	UpdatePage(ctx context.Context, id int64, patch PagePatch) error

	// DeletePage removes a page.
	//
	// Returns [apperr.NotFound] if the page does not exist.
	DeletePage(ctx context.Context, id int64) error
}
