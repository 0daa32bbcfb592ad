// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// multipartOverhead covers the form boundaries and part headers around the
// file itself.
const multipartOverhead = 64 << 10

// Handler implements the HTTP layer for media. Every route is admin-only.
type Handler struct {
	service  *Service
	guard    func(http.Handler) http.Handler
	maxBytes int64
}

// NewHandler constructs a media [Handler].
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard, maxBytes: service.options.MaxBytes}
}

// Routes returns the media router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(handler.guard)

	router.Post("/upload", handler.Upload)
	router.Get("/", handler.List)
	router.Delete("/{id}", handler.Delete)

	return router
}

type uploadResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

/*
POST /api/media/upload.

Request:
  - multipart/form-data with the image in the "file" part

Response:
  - 200: {id, url}
  - 400: Validation: missing file, unsupported type, too large, undecodable
  - 502: Upstream: object store failure, nothing recorded
*/
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.maxBytes+multipartOverhead)

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respond.Error(writer, request, handler.service.tooLarge())
			return
		}
		respond.Error(writer, request, validate.FieldError(FieldFile, "A file is required"))
		return
	}
	defer file.Close()

	media, err := handler.service.Upload(request.Context(), UploadInput{
		Body:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, uploadResponse{ID: media.ID, URL: media.URL})
}

// List handles GET /api/media/, newest upload first.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

// Delete handles DELETE /api/media/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Ack(writer)
}
