package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/config"
)

// Storage is the blob backend for resume binaries. Keys are opaque strings
// generated by NewKey; ownership and filename metadata live in the
// resume_files collection, not here.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewStorage creates the storage backend selected by configuration. GridFS is
// the default and shares the application's document store.
func NewStorage(cfg *config.Config, db *mongo.Database) (Storage, error) {
	switch cfg.StorageType {
	case "gridfs":
		return NewGridFSStorage(db), nil
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg.StorageLocalPath)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// NewKey generates a unique storage key for a file. The original filename is
// kept in the key, sanitized, for operator readability only.
func NewKey(filename string) string {
	id := uuid.New().String()
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.ReplaceAll(base, "/", "_")
	base = strings.ReplaceAll(base, "\\", "_")

	return fmt.Sprintf("%s/%s_%s%s", id[:2], id, base, ext)
}
