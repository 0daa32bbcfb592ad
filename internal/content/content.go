// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content owns the ordered chapter and page hierarchy.

Chapters hold pages. Both are listed by their caller-supplied order, with
ties broken by creation order; orders are never renumbered. Deleting a
chapter deletes its pages in the same transaction, and a page can only be
created under a chapter that exists.

Reads are public. Every mutation goes through the admin gate at the HTTP
layer.
*/
package content

import (
	"math"
	"time"
)

// # Page Status

const (
	// StatusDraft is assigned when a page is created without a status.
	StatusDraft = "draft"

	// StatusPublished marks a page the site renders.
	StatusPublished = "published"
)

// # Field Names & Limits

const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldStatus  = "status"
	FieldOrder   = "order"

	MaxTitleLength  = 255
	MaxStatusLength = 32

	// Orders are stored as 32-bit integers.
	MinOrder = math.MinInt32
	MaxOrder = math.MaxInt32
)

// # Entities

// Chapter is a top-level unit of the site.
type Chapter struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page is a Markdown document inside a chapter. ChapterID never changes
// after creation.
type Page struct {
	ID        int64     `json:"id"`
	ChapterID int64     `json:"chapter_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is one heading of a page outline.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// # Patches

// ChapterPatch carries a partial chapter update. Nil fields keep their value.
type ChapterPatch struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`

	// Slug is derived from Title by the service, never accepted from clients.
	Slug *string `json:"-"`
}

// PagePatch carries a partial page update. Nil fields keep their value.
type PagePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
	Order   *int    `json:"order"`
}
