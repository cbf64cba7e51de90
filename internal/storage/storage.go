// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider (AWS S3, MinIO, R2).
package storage

import (
	"context"
	"io"
)

// Object metadata keys written alongside every upload.
const (
	MetaUploaded   = "uploaded"
	MetaExpiration = "expiration"
)

// Storage is the interface for writing and removing objects.
type Storage interface {
	// Upload streams data to the store under the given key with user metadata attached.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error
	// Delete removes an object identified by key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
