// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

const (
	paramID   = "id"
	paramSlug = "slug"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapters and pages.
type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

// NewHandler constructs a content [Handler]. guard is applied to every
// mutating route.
func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

// Routes returns the content router.
//
// # Routing Strategy
//
//   - Public: every GET, so the site can render without a marker.
//   - Admin: POST, PUT and DELETE behind the gate.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/chapters", handler.ListChapters)
	router.Get("/chapters/by-slug/{slug}", handler.GetChapterBySlug)
	router.Get("/chapters/{id}/pages", handler.ListPages)
	router.Get("/pages/{id}", handler.GetPage)
	router.Get("/pages/{id}/sections", handler.PageSections)

	router.Group(func(admin chi.Router) {
		admin.Use(handler.guard)

		admin.Post("/chapters", handler.CreateChapter)
		admin.Put("/chapters/{id}", handler.UpdateChapter)
		admin.Delete("/chapters/{id}", handler.DeleteChapter)

		admin.Post("/chapters/{id}/pages", handler.CreatePage)
		admin.Put("/pages/{id}", handler.UpdatePage)
		admin.Delete("/pages/{id}", handler.DeletePage)
	})

	return router
}

// # Chapters

/*
GET /api/content/chapters.

Response:
  - 200: []Chapter ordered by order, then creation
*/
func (handler *Handler) ListChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.service.ListChapters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapters)
}

/*
GET /api/content/chapters/by-slug/{slug}.

Response:
  - 200: Chapter
  - 404: ErrNotFound
*/
func (handler *Handler) GetChapterBySlug(writer http.ResponseWriter, request *http.Request) {
	chapter, err := handler.service.GetChapterBySlug(request.Context(), requestutil.Param(request, paramSlug))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

type createChapterRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

/*
POST /api/content/chapters.

Request:
  - body: {title, order}

Response:
  - 200: Chapter
  - 400: Validation
  - 403: ErrUnauthorized
*/
func (handler *Handler) CreateChapter(writer http.ResponseWriter, request *http.Request) {
	var input createChapterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.CreateChapter(request.Context(), input.Title, input.Order)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, chapter)
}

/*
PUT /api/content/chapters/{id}.

Request:
  - body: ChapterPatch, every field optional

Response:
  - 200: {"ok": true}
  - 404: ErrNotFound
*/
func (handler *Handler) UpdateChapter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch ChapterPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateChapter(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Ack(writer)
}

// DeleteChapter handles DELETE /api/content/chapters/{id}. Pages go with it.
func (handler *Handler) DeleteChapter(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteChapter(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Ack(writer)
}

// # Pages

// ListPages handles GET /api/content/chapters/{id}/pages.
func (handler *Handler) ListPages(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pages, err := handler.service.ListPages(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pages)
}

func (handler *Handler) GetPage(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.GetPage(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

func (handler *Handler) PageSections(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sections, err := handler.service.PageSections(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sections)
}

type createPageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
	Status  string `json:"status"`
}

/*
POST /api/content/chapters/{id}/pages.

Request:
  - id: int64 (Chapter ID)
  - body: {title, content, order, status}

Response:
  - 200: Page
  - 400: Validation
  - 404: ErrNotFound: Chapter not found
*/
func (handler *Handler) CreatePage(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.CreatePage(request.Context(), PageInput{
		ChapterID: chapterID,
		Title:     input.Title,
		Content:   input.Content,
		Order:     input.Order,
		Status:    input.Status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page)
}

func (handler *Handler) UpdatePage(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch PagePatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePage(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Ack(writer)
}

func (handler *Handler) DeletePage(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Ack(writer)
}
