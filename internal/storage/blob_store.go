package storage

import (
	"context"
	"time"
)

// BlobStore is the byte-storage collaborator. The metadata layer never
// reads objects back; it only writes them and mints time-limited
// retrieval URLs.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	SignURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Bucket() string
}
