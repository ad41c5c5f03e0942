package storage

import (
	"context"
	"time"
)

// ObjectInfo describes one object returned by a listing.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified *time.Time
}

// PutOptions describes a single object upload.
type PutOptions struct {
	Bucket      string
	Key         string
	ContentType string
	Body        []byte
}

// Service stores user snapshots in remote object storage.
type Service interface {
	PutObject(ctx context.Context, opts PutOptions) (string, error)
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
}
