// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package objectstore holds uploaded media bytes outside the database.

Architecture:

  - [Store] is the narrow contract the media registry depends on.
  - [MinioStore] talks to any S3-compatible endpoint (MinIO, R2, Supabase S3).
  - [MemoryStore] keeps blobs in process for local runs and tests.

Public URLs are derived deterministically from a configured base, the bucket
and the object key; the store is never asked for them.
*/
package objectstore

import (
	"context"
	"io"
	"strings"
)

// Store puts and removes blobs by key.
type Store interface {
	// Put uploads size bytes from body under key. It returns only after the
	// store acknowledged the write.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Remove deletes the blob under key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// PublicURL returns the address clients use to fetch key.
	PublicURL(key string) string
}

// publicURL joins base, bucket and key with single slashes.
func publicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(bucket, "/") + "/" + strings.TrimLeft(key, "/")
}
