// Package storage abstracts the S3-compatible object store that holds
// uploaded media content. Implementations stream; nothing is staged on
// local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions carries optional upload parameters. Size is the
// exact byte count when known; -1 lets the backend chunk the stream.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store client used by the media service.
type Storage interface {
	// Put uploads the reader's content under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the object for streaming reads.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the object.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL usable without
	// credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
