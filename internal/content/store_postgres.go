// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

const (
	resourceChapter = "Chapter"
	resourcePage    = "Page"
)

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed content store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Chapters

var (
	chapterTable   = schema.ContentChapter
	chapterColumns = schema.Join(chapterTable.Columns())
)

func scanChapter(row pgx.Row) (*Chapter, error) {
	var chapter Chapter
	err := row.Scan(
		&chapter.ID,
		&chapter.Title,
		&chapter.Slug,
		&chapter.Order,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (repository *postgresRepository) ListChapters(ctx context.Context) ([]*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		chapterColumns, chapterTable.Table, chapterTable.SortOrder, chapterTable.ID,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list chapters: %w", err)
	}
	defer rows.Close()

	chapters := make([]*Chapter, 0)
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan chapter: %w", err)
		}
		chapters = append(chapters, chapter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate chapters: %w", err)
	}

	return chapters, nil
}

func (repository *postgresRepository) FindChapterBySlug(ctx context.Context, slug string) (*Chapter, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC LIMIT 1`,
		chapterColumns, chapterTable.Table, chapterTable.Slug, chapterTable.SortOrder, chapterTable.ID,
	)

	chapter, err := scanChapter(repository.pool.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, resourceChapter, "find chapter by slug")
	}
	return chapter, nil
}

func (repository *postgresRepository) CreateChapter(ctx context.Context, chapter *Chapter) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s`,
		chapterTable.Table,
		chapterTable.Title, chapterTable.Slug, chapterTable.SortOrder,
		chapterTable.ID, chapterTable.CreatedAt, chapterTable.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query, chapter.Title, chapter.Slug, chapter.Order).
		Scan(&chapter.ID, &chapter.CreatedAt, &chapter.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create chapter: %w", err)
	}
	return nil
}

/*
UpdateChapter patches a chapter in one statement.

Description: COALESCE keeps the stored value for every nil field, so the
read-modify-write happens inside Postgres and concurrent patches to
different fields cannot overwrite each other.
*/
func (repository *postgresRepository) UpdateChapter(ctx context.Context, id int64, patch ChapterPatch) error {
	query := fmt.Sprintf(`
		UPDATE %[1]s SET
			%[2]s = COALESCE($2, %[2]s),
			%[3]s = COALESCE($3, %[3]s),
			%[4]s = COALESCE($4, %[4]s),
			%[5]s = NOW()
		WHERE %[6]s = $1`,
		chapterTable.Table,
		chapterTable.Title,
		chapterTable.Slug,
		chapterTable.SortOrder,
		chapterTable.UpdatedAt,
		chapterTable.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id, patch.Title, patch.Slug, patch.Order)
	if err != nil {
		return fmt.Errorf("postgres: failed to update chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceChapter)
	}
	return nil
}

/*
DeleteChapter removes a chapter together with its pages.

Description: The foreign key cascades as well, but deleting the pages
explicitly inside the same transaction lets us report how many went.

Returns:
  - int64: Number of pages deleted
  - error: apperr.NotFound if the chapter does not exist
*/
func (repository *postgresRepository) DeleteChapter(ctx context.Context, id int64) (int64, error) {
	tx, err := repository.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to begin chapter delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pagesQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, pageTable.Table, pageTable.ChapterID)
	pagesTag, err := tx.Exec(ctx, pagesQuery, id)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to delete chapter pages: %w", err)
	}

	chapterQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, chapterTable.Table, chapterTable.ID)
	chapterTag, err := tx.Exec(ctx, chapterQuery, id)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to delete chapter: %w", err)
	}
	if chapterTag.RowsAffected() == 0 {
		return 0, apperr.NotFound(resourceChapter)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("postgres: failed to commit chapter delete: %w", err)
	}

	return pagesTag.RowsAffected(), nil
}

// # Pages

var (
	pageTable   = schema.ContentPage
	pageColumns = schema.Join(pageTable.Columns())
)

func scanPage(row pgx.Row) (*Page, error) {
	var page Page
	err := row.Scan(
		&page.ID,
		&page.ChapterID,
		&page.Title,
		&page.Content,
		&page.Order,
		&page.Status,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (repository *postgresRepository) ListPages(ctx context.Context, chapterID int64) ([]*Page, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		pageColumns, pageTable.Table, pageTable.ChapterID, pageTable.SortOrder, pageTable.ID,
	)

	rows, err := repository.pool.Query(ctx, query, chapterID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := make([]*Page, 0)
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan page: %w", err)
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate pages: %w", err)
	}

	return pages, nil
}

func (repository *postgresRepository) FindPage(ctx context.Context, id int64) (*Page, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, pageColumns, pageTable.Table, pageTable.ID)

	page, err := scanPage(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePage, "find page")
	}
	return page, nil
}

/*
CreatePage inserts a page only if its chapter exists.

Description: The existence check is part of the INSERT, so a chapter
deleted concurrently either blocks the insert (no row returned) or trips
the foreign key. Both surface as a missing chapter.
*/
func (repository *postgresRepository) CreatePage(ctx context.Context, page *Page) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s)
		SELECT $1::bigint, $2::text, $3::text, $4::integer, $5::text
		WHERE EXISTS (SELECT 1 FROM %[7]s WHERE %[8]s = $1::bigint)
		RETURNING %[9]s, %[10]s, %[11]s`,
		pageTable.Table,
		pageTable.ChapterID, pageTable.Title, pageTable.Content, pageTable.SortOrder, pageTable.Status,
		chapterTable.Table, chapterTable.ID,
		pageTable.ID, pageTable.CreatedAt, pageTable.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		page.ChapterID, page.Title, page.Content, page.Order, page.Status,
	).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows), dberr.IsForeignKeyViolation(err):
		return apperr.NotFound(resourceChapter)
	default:
		return fmt.Errorf("postgres: failed to create page: %w", err)
	}
}

func (repository *postgresRepository) UpdatePage(ctx context.Context, id int64, patch PagePatch) error {
	query := fmt.Sprintf(`
		UPDATE %[1]s SET
			%[2]s = COALESCE($2, %[2]s),
			%[3]s = COALESCE($3, %[3]s),
			%[4]s = COALESCE($4, %[4]s),
			%[5]s = COALESCE($5, %[5]s),
			%[6]s = NOW()
		WHERE %[7]s = $1`,
		pageTable.Table,
		pageTable.Title,
		pageTable.Content,
		pageTable.Status,
		pageTable.SortOrder,
		pageTable.UpdatedAt,
		pageTable.ID,
	)

	tag, err := repository.pool.Exec(ctx, query, id, patch.Title, patch.Content, patch.Status, patch.Order)
	if err != nil {
		return fmt.Errorf("postgres: failed to update page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourcePage)
	}
	return nil
}

func (repository *postgresRepository) DeletePage(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, pageTable.Table, pageTable.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourcePage)
	}
	return nil
}
