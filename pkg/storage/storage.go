package storage

import (
	"context"
	"mime"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Storage defines the contract for the backends a rendered site is published
// to. Keys are slash separated paths relative to the output root.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Write stores data with the given key, replacing existing data.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves data for the given key.
	// Returns os.ErrNotExist if the key does not exist.
	Read(ctx context.Context, key string) ([]byte, error)

	// List returns all keys below the given prefix, sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the data for the given key.
	// Returns nil if the key does not exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage backend.
	Close() error
}

// supportedBlobSchemes lists the URL schemes handled by blob storage
var supportedBlobSchemes = []string{"file://", "mem://", "gs://", "s3://", "azblob://"}

// Open returns a blob storage for bucket URLs and a filesystem storage for
// plain directory paths
func Open(ctx context.Context, location string) (Storage, error) {
	if !strings.Contains(location, "://") {
		return NewFilesystemStorage(location)
	}
	if !IsBlobURL(location) {
		return nil, errors.Errorf("unsupported storage URL scheme in %q; supported schemes: %s",
			location, strings.Join(supportedBlobSchemes, ", "))
	}
	return NewBlobStorage(ctx, location, "")
}

// IsBlobURL checks if the location has a supported bucket scheme
func IsBlobURL(location string) bool {
	for _, scheme := range supportedBlobSchemes {
		if strings.HasPrefix(location, scheme) {
			return true
		}
	}
	return false
}

// ContentType guesses the mime type of a key from its extension
func ContentType(key string) string {
	if t := mime.TypeByExtension(path.Ext(key)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// CleanKey normalizes a key to a slash separated relative path
func CleanKey(key string) string {
	key = path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	return strings.TrimPrefix(key, "/")
}
