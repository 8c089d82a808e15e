// Package storage defines the interface for the object-storage backend.
// The MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"time"
)

// Client is the interface for the storage operations the uploader needs.
type Client interface {
	// BucketExists reports whether the bucket exists and is reachable.
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// Upload stores the file at filePath under key in the bucket,
	// tagging it with the given content type and disposition.
	Upload(ctx context.Context, bucket, key, filePath, contentType, disposition string) error

	// PresignGet returns a time-limited URL granting read access to the
	// object at key without credentials.
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// Options contains transport configuration for a storage client.
type Options struct {
	// Endpoint is the host:port of the storage API (no scheme).
	Endpoint string

	// Secure selects HTTPS for the transport.
	Secure bool

	// Insecure disables TLS certificate verification. Only meaningful
	// when Secure is set.
	Insecure bool

	// AccessKey and SecretKey authenticate against the storage API.
	AccessKey string
	SecretKey string
}
