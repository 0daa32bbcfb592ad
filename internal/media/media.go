// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media registers uploaded images.

An upload is checked (declared type, size, and that the bytes decode as that
type), written to the object store under a generated key, and only then
recorded. Rows describe blobs; they are listed newest first and can be
deleted independently of the blob.
*/
package media

import "time"

// Media is the metadata of one uploaded image.
type Media struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	StorageKey  string    `json:"storage_key"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Options tunes the registry.
type Options struct {
	// MaxBytes is the largest accepted upload.
	MaxBytes int64

	// DeleteBlobs removes the stored object before the row on delete.
	DeleteBlobs bool
}

const (
	FieldFile        = "file"
	FieldFilename    = "filename"
	FieldContentType = "content_type"
)
