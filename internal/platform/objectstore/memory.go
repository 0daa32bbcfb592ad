// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore is an in-process [Store].
type MemoryStore struct {
	mu        sync.RWMutex
	objects   map[string]Object
	bucket    string
	publicURL string
}

// Object is a blob held by [MemoryStore].
type Object struct {
	Data        []byte
	ContentType string
}

// NewMemoryStore creates an empty store whose URLs are rooted at publicURL.
func NewMemoryStore(publicURL, bucket string) *MemoryStore {
	return &MemoryStore{
		objects:   make(map[string]Object),
		bucket:    bucket,
		publicURL: publicURL,
	}
}

// Put implements [Store].
func (store *MemoryStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	var buffer bytes.Buffer
	written, err := io.Copy(&buffer, body)
	if err != nil {
		return fmt.Errorf("objectstore: read body for %q: %w", key, err)
	}
	if size >= 0 && written != size {
		return fmt.Errorf("objectstore: %q declared %d bytes, got %d", key, size, written)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.objects[key] = Object{Data: buffer.Bytes(), ContentType: contentType}
	return nil
}

// Remove implements [Store].
func (store *MemoryStore) Remove(ctx context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.objects, key)
	return nil
}

// PublicURL implements [Store].
func (store *MemoryStore) PublicURL(key string) string {
	return publicURL(store.publicURL, store.bucket, key)
}

// Get returns the blob under key.
func (store *MemoryStore) Get(key string) (Object, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	object, ok := store.objects[key]
	return object, ok
}

// Len returns the number of stored blobs.
func (store *MemoryStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.objects)
}
