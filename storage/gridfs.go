package storage

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GridFSStorage stores blobs in the document store's GridFS bucket, using the
// storage key as the file id.
type GridFSStorage struct {
	bucket *mongo.GridFSBucket
}

// NewGridFSStorage creates a GridFS storage instance on the given database.
func NewGridFSStorage(db *mongo.Database) *GridFSStorage {
	return &GridFSStorage{bucket: db.GridFSBucket()}
}

// Put stores a blob under the given key.
func (s *GridFSStorage) Put(ctx context.Context, key, contentType string, data io.Reader) error {
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})

	if err := s.bucket.UploadFromStreamWithID(ctx, key, key, data, opts); err != nil {
		return fmt.Errorf("failed to upload to gridfs: %w", err)
	}
	return nil
}

// Get retrieves a blob by key.
func (s *GridFSStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStream(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs stream: %w", err)
	}
	return stream, nil
}

// Delete removes a blob by key.
func (s *GridFSStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete from gridfs: %w", err)
	}
	return nil
}
