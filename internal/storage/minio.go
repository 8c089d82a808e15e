package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// MinioClient implements Client using the MinIO SDK.
type MinioClient struct {
	client *minio.Client
}

// NewMinioClient creates a client for a MinIO (or any S3-compatible) endpoint.
func NewMinioClient(opts Options) (*MinioClient, error) {
	mopts := &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.Secure,
	}

	if opts.Secure && opts.Insecure {
		log.Warn().Msg("TLS certificate verification disabled")
		mopts.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	client, err := minio.New(opts.Endpoint, mopts)
	if err != nil {
		return nil, fmt.Errorf("create minio client for %q: %w", opts.Endpoint, err)
	}

	log.Debug().
		Str("endpoint", opts.Endpoint).
		Bool("secure", opts.Secure).
		Msg("storage client initialized")

	return &MinioClient{client: client}, nil
}

// BucketExists reports whether the bucket exists.
func (c *MinioClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	return exists, nil
}

// Upload stores the file under key in the bucket.
func (c *MinioClient) Upload(ctx context.Context, bucket, key, filePath, contentType, disposition string) error {
	log.Debug().Str("key", key).Str("contentType", contentType).Msg("uploading object")

	_, err := c.client.FPutObject(ctx, bucket, key, filePath, minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: disposition,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// PresignGet returns a signed download URL for the object, valid for expiry.
func (c *MinioClient) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}
