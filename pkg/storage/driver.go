package storage

import (
	"context"
	"io"
	"time"
)

// Driver abstracts the object store holding trader documents and receipts.
// The bucket is private; reads go through signed URLs.
type Driver interface {
	// Upload writes the file under path and returns the stored path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// CreateSignedURL returns a time-limited read URL for a private object.
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// PublicURL returns the unauthenticated URL for a path. It is the last
	// resort when signing fails; on a private bucket the URL may 403.
	PublicURL(path string) string

	// Exists checks if an object is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// Config holds the object store configuration.
type Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// (Supabase Storage, R2, MinIO). Empty means plain AWS.
	Endpoint string
}
