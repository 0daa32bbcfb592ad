// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

const resourceMedia = "Media"

var (
	assetTable   = schema.MediaAsset
	assetColumns = schema.Join(assetTable.Columns())
)

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed media store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanMedia(row pgx.Row) (*Media, error) {
	var media Media
	err := row.Scan(
		&media.ID,
		&media.Filename,
		&media.StorageKey,
		&media.URL,
		&media.ContentType,
		&media.SizeBytes,
		&media.Width,
		&media.Height,
		&media.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (repository *postgresRepository) Create(ctx context.Context, media *Media) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s`,
		assetTable.Table,
		assetTable.Filename, assetTable.StorageKey, assetTable.URL, assetTable.ContentType,
		assetTable.SizeBytes, assetTable.Width, assetTable.Height,
		assetTable.ID, assetTable.UploadedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		media.Filename, media.StorageKey, media.URL, media.ContentType,
		media.SizeBytes, media.Width, media.Height,
	).Scan(&media.ID, &media.UploadedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to create media: %w", err)
	}
	return nil
}

func (repository *postgresRepository) List(ctx context.Context) ([]*Media, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC`,
		assetColumns, assetTable.Table, assetTable.UploadedAt, assetTable.ID,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list media: %w", err)
	}
	defer rows.Close()

	items := make([]*Media, 0)
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan media: %w", err)
		}
		items = append(items, media)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate media: %w", err)
	}

	return items, nil
}

func (repository *postgresRepository) Find(ctx context.Context, id int64) (*Media, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, assetColumns, assetTable.Table, assetTable.ID)

	media, err := scanMedia(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceMedia, "find media")
	}
	return media, nil
}

func (repository *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, assetTable.Table, assetTable.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceMedia)
	}
	return nil
}
