// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions configures a [MinioStore].
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// MinioStore is a [Store] backed by an S3-compatible endpoint.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects to the endpoint and checks that the bucket exists.
func NewMinioStore(ctx context.Context, options MinioOptions, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(options.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(options.AccessKey, options.SecretKey, ""),
		Secure: options.UseSSL,
		Region: options.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: failed to create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, options.Bucket)
	if err != nil {
		return nil, fmt.Errorf("objectstore: failed to check bucket %q: %w", options.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("objectstore: bucket %q does not exist", options.Bucket)
	}

	logger.Info("objectstore_connected",
		slog.String("endpoint", options.Endpoint),
		slog.String("bucket", options.Bucket),
	)

	return &MinioStore{
		client:    client,
		bucket:    options.Bucket,
		publicURL: options.PublicURL,
	}, nil
}

// Put implements [Store].
func (store *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := store.client.PutObject(ctx, store.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("objectstore: put %q failed: %w", key, err)
	}
	return nil
}

// Remove implements [Store].
func (store *MinioStore) Remove(ctx context.Context, key string) error {
	if err := store.client.RemoveObject(ctx, store.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("objectstore: remove %q failed: %w", key, err)
	}
	return nil
}

// PublicURL implements [Store].
func (store *MinioStore) PublicURL(key string) string {
	return publicURL(store.publicURL, store.bucket, key)
}
