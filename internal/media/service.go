// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/objectstore"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/uuid"
)

// # Service Layer

// Service orchestrates uploads, listing and deletion of media.
type Service struct {
	repository Repository
	store      objectstore.Store
	options    Options
	logger     *slog.Logger

	newKey func() string
}

// NewService constructs a media [Service].
func NewService(repository Repository, store objectstore.Store, options Options, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		store:      store,
		options:    options,
		logger:     logger,
		newKey:     uuid.New,
	}
}

// UploadInput is one file as received from the client.
type UploadInput struct {
	Body        io.Reader
	Filename    string
	ContentType string

	// Size is the client-reported length; negative when unknown.
	Size int64
}

func (service *Service) tooLarge() error {
	return validate.FieldError(FieldFile, fmt.Sprintf("File exceeds the %d MiB limit", service.options.MaxBytes>>20))
}

/*
Upload stores an image and records it.

Description: The declared type must be one of the accepted image types and
the bytes must decode as that type. The blob is written before the row, so a
failing object store leaves no row behind; a failing insert removes the blob
again on a best-effort basis.

Returns:
  - *Media: The recorded upload
  - error: VALIDATION_ERROR, UPSTREAM_ERROR when the object store fails, or
    persistence errors
*/
func (service *Service) Upload(ctx context.Context, input UploadInput) (*Media, error) {

	// ── 1. Declared Metadata ──────────────────────────────────────────────

	filename := strings.TrimSpace(input.Filename)
	contentType := normalizeContentType(input.ContentType)
	kind := allowedTypes[contentType]

	validator := &validate.Validator{}
	validator.Required(FieldFilename, filename)
	validator.OneOf(FieldContentType, contentType, AllowedContentTypes()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Size > service.options.MaxBytes {
		return nil, service.tooLarge()
	}

	// ── 2. Body ───────────────────────────────────────────────────────────

	// One byte past the limit is enough to tell an oversized body apart.
	data, err := io.ReadAll(io.LimitReader(input.Body, service.options.MaxBytes+1))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, service.tooLarge()
		}
		return nil, fmt.Errorf("media_service_read_failed: %w", err)
	}
	if int64(len(data)) > service.options.MaxBytes {
		return nil, service.tooLarge()
	}

	width, height, ok := dimensions(data, kind)
	if !ok {
		return nil, validate.FieldError(FieldFile, "File content is not a valid "+contentType+" image")
	}

	// ── 3. Object Store ───────────────────────────────────────────────────

	key := service.newKey() + storageExtension(filename, kind)

	if err := service.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, apperr.Upstream("Object store rejected the upload", err)
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	media := &Media{
		Filename:    filename,
		StorageKey:  key,
		URL:         service.store.PublicURL(key),
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		Width:       width,
		Height:      height,
	}

	if err := service.repository.Create(ctx, media); err != nil {
		if removeErr := service.store.Remove(context.WithoutCancel(ctx), key); removeErr != nil {
			service.logger.WarnContext(ctx, "media_orphaned_blob",
				slog.String("storage_key", key),
				slog.String("error", removeErr.Error()),
			)
		}
		return nil, err
	}

	service.logger.InfoContext(ctx, "media_uploaded",
		slog.Int64("media_id", media.ID),
		slog.String("storage_key", key),
		slog.String("content_type", contentType),
		slog.Int64("size_bytes", media.SizeBytes),
	)

	return media, nil
}

// List returns every media row, newest first.
func (service *Service) List(ctx context.Context) ([]*Media, error) {
	return service.repository.List(ctx)
}

/*
Delete removes a media row.

Description: By default only the row goes and the blob stays in the object
store. With Options.DeleteBlobs the blob is removed first; if that fails the
row is kept so the caller can retry.

Returns:
  - error: NOT_FOUND, or UPSTREAM_ERROR when the blob could not be removed
*/
func (service *Service) Delete(ctx context.Context, id int64) error {
	if !service.options.DeleteBlobs {
		return service.repository.Delete(ctx, id)
	}

	media, err := service.repository.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := service.store.Remove(ctx, media.StorageKey); err != nil {
		return apperr.Upstream("Object store could not remove the file", err)
	}

	if err := service.repository.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "media_deleted",
		slog.Int64("media_id", id),
		slog.String("storage_key", media.StorageKey),
	)

	return nil
}
