// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import "context"

// Repository defines the data access contract for media rows.
type Repository interface {
	// Create persists a row and fills in its ID and UploadedAt.
	Create(ctx context.Context, media *Media) error

	// List returns every row, newest upload first, ties by descending ID.
	List(ctx context.Context) ([]*Media, error)

	// Find returns a row by ID.
	//
	// Returns [apperr.NotFound] if the row does not exist.
	Find(ctx context.Context, id int64) (*Media, error)

	// Delete removes a row. The blob is not touched.
	//
	// Returns [apperr.NotFound] if the row does not exist.
	Delete(ctx context.Context, id int64) error
}
