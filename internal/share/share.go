// Package share uploads a single file to object storage and produces two
// shareable links for it: a time-limited presigned download URL and a
// console preview URL.
package share

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qmuller/minio-share/internal/config"
	"github.com/qmuller/minio-share/internal/objectname"
	"github.com/qmuller/minio-share/internal/storage"
)

// Errors returned by Upload. All are terminal: nothing is retried, and a
// failure at any step aborts the whole invocation.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrUpload         = errors.New("upload failed")
	ErrLinkGeneration = errors.New("link generation failed")
)

// Request describes one upload invocation.
type Request struct {
	// FilePath is the local file to upload. Must be an existing regular file.
	FilePath string

	// Name, when set, is used verbatim as the object key.
	Name string

	// Title, when set, is sanitized into the object key and takes
	// precedence over Name.
	Title string

	// ExpiryDays is the presigned URL lifetime in days.
	ExpiryDays int
}

// Result is produced only after a successful upload and link generation.
type Result struct {
	ObjectKey    string
	Bucket       string
	PresignedURL string
	ConsoleURL   string
	ExpiryDays   int
}

// Upload runs the full sequence: validate the file, resolve the object key,
// check the bucket, put the object, and build both links.
func Upload(ctx context.Context, client storage.Client, cfg *config.Config, req Request) (*Result, error) {
	info, err := os.Stat(req.FilePath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, req.FilePath)
	}

	key := objectname.ResolveKey(req.FilePath, req.Name, req.Title)

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", ErrBucketNotFound, cfg.Bucket)
	}

	contentType := objectname.ResolveContentType(key)

	err = client.Upload(ctx, cfg.Bucket, key, req.FilePath, contentType, objectname.DispositionInline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	log.Info().
		Str("file", req.FilePath).
		Str("bucket", cfg.Bucket).
		Str("key", key).
		Msg("uploaded")

	presigned, console, err := BuildLinks(ctx, client, cfg, key, req.ExpiryDays)
	if err != nil {
		return nil, err
	}

	return &Result{
		ObjectKey:    key,
		Bucket:       cfg.Bucket,
		PresignedURL: presigned,
		ConsoleURL:   console,
		ExpiryDays:   req.ExpiryDays,
	}, nil
}

// BuildLinks produces the presigned download URL and the console preview URL
// for an object.
func BuildLinks(ctx context.Context, client storage.Client, cfg *config.Config, key string, expiryDays int) (presigned, console string, err error) {
	expiry := time.Duration(expiryDays) * 24 * time.Hour
	presigned, err = client.PresignGet(ctx, cfg.Bucket, key, expiry)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrLinkGeneration, err)
	}
	return presigned, ConsoleURL(cfg.ConsoleBaseURL, cfg.Bucket, key), nil
}

// ConsoleURL composes the console browser URL for an object. Each path
// segment of the key is percent-encoded; slashes stay literal so keys with
// virtual directory prefixes keep their structure.
func ConsoleURL(base, bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/browser/" + bucket + "/" + strings.Join(segments, "/")
}
