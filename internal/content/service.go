// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/slug"
)

// # Service Layer

// Service orchestrates the business rules for chapters and pages.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// # Chapter Operations

// ListChapters returns all chapters by order, ties by creation.
func (service *Service) ListChapters(ctx context.Context) ([]*Chapter, error) {
	return service.repository.ListChapters(ctx)
}

// GetChapterBySlug returns the first chapter in list order with the slug.
func (service *Service) GetChapterBySlug(ctx context.Context, chapterSlug string) (*Chapter, error) {
	return service.repository.FindChapterBySlug(ctx, chapterSlug)
}

/*
CreateChapter validates and persists a new chapter.

Parameters:
  - ctx: context.Context
  - title: string (must not be blank)
  - order: int (rank among siblings, not unique)

Returns:
  - *Chapter: The stored chapter with its ID and slug
  - error: VALIDATION_ERROR or persistence errors
*/
func (service *Service) CreateChapter(ctx context.Context, title string, order int) (*Chapter, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, MaxTitleLength)
	validator.Range(FieldOrder, order, MinOrder, MaxOrder)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	chapter := &Chapter{
		Title: title,
		Slug:  slug.From(title),
		Order: order,
	}

	if err := service.repository.CreateChapter(ctx, chapter); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "chapter_created",
		slog.Int64("chapter_id", chapter.ID),
		slog.Int("order", chapter.Order),
	)

	return chapter, nil
}

/*
UpdateChapter applies a partial update.

Description: Fields left nil keep their stored value. A new title also
re-derives the slug.

Returns:
  - error: VALIDATION_ERROR for a blank title or an out-of-range order, NOT_FOUND for an unknown id
*/
func (service *Service) UpdateChapter(ctx context.Context, id int64, patch ChapterPatch) error {
	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, MaxTitleLength)
	}
	if patch.Order != nil {
		validator.Range(FieldOrder, *patch.Order, MinOrder, MaxOrder)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if patch.Title != nil {
		derived := slug.From(*patch.Title)
		patch.Slug = &derived
	} else {
		patch.Slug = nil
	}

	return service.repository.UpdateChapter(ctx, id, patch)
}

// DeleteChapter removes a chapter and every page it owns.
func (service *Service) DeleteChapter(ctx context.Context, id int64) error {
	pages, err := service.repository.DeleteChapter(ctx, id)
	if err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "chapter_deleted",
		slog.Int64("chapter_id", id),
		slog.Int64("pages_deleted", pages),
	)

	return nil
}

// # Page Operations

// ListPages returns the pages of a chapter. Unknown chapters have none.
func (service *Service) ListPages(ctx context.Context, chapterID int64) ([]*Page, error) {
	return service.repository.ListPages(ctx, chapterID)
}

// GetPage returns a single page.
func (service *Service) GetPage(ctx context.Context, id int64) (*Page, error) {
	return service.repository.FindPage(ctx, id)
}

// PageInput holds the fields of a new page.
type PageInput struct {
	ChapterID int64
	Title     string
	Content   string
	Order     int
	Status    string
}

/*
CreatePage validates and persists a new page under an existing chapter.

Description: A blank status defaults to "draft". Any other status string is
stored as given.

Returns:
  - *Page: The stored page
  - error: VALIDATION_ERROR, or NOT_FOUND when the chapter does not exist
*/
func (service *Service) CreatePage(ctx context.Context, input PageInput) (*Page, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = StatusDraft
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, MaxTitleLength)
	validator.Required(FieldContent, input.Content)
	validator.MaxLen(FieldStatus, status, MaxStatusLength)
	validator.Range(FieldOrder, input.Order, MinOrder, MaxOrder)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	page := &Page{
		ChapterID: input.ChapterID,
		Title:     input.Title,
		Content:   input.Content,
		Order:     input.Order,
		Status:    status,
	}

	if err := service.repository.CreatePage(ctx, page); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "page_created",
		slog.Int64("page_id", page.ID),
		slog.Int64("chapter_id", page.ChapterID),
		slog.String("status", page.Status),
	)

	return page, nil
}

// UpdatePage applies a partial update. Content may be set to anything,
// including empty; title and status may not be blanked.
func (service *Service) UpdatePage(ctx context.Context, id int64, patch PagePatch) error {
	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, MaxTitleLength)
	}
	if patch.Status != nil {
		validator.Required(FieldStatus, *patch.Status).MaxLen(FieldStatus, *patch.Status, MaxStatusLength)
	}
	if patch.Order != nil {
		validator.Range(FieldOrder, *patch.Order, MinOrder, MaxOrder)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repository.UpdatePage(ctx, id, patch)
}

// DeletePage removes a single page.
func (service *Service) DeletePage(ctx context.Context, id int64) error {
	return service.repository.DeletePage(ctx, id)
}

// PageSections returns the heading outline of a page.
func (service *Service) PageSections(ctx context.Context, id int64) ([]Section, error) {
	page, err := service.repository.FindPage(ctx, id)
	if err != nil {
		return nil, err
	}
	return Outline(page.Content), nil
}
