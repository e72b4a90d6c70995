package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/apperr"
	"careerlog-backend/models"
	"careerlog-backend/storage"
)

// ResumeStore is the metadata persistence surface the resume service needs,
// satisfied by repository.ResumeRepository.
type ResumeStore interface {
	Create(ctx context.Context, file *models.ResumeFile) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.ResumeFile, error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}

// ResumeService stores and streams resume binaries. The bytes go to the
// configured storage backend; the owner/filename/content-type record lives in
// the resume_files collection and is checked on every fetch.
type ResumeService struct {
	files ResumeStore
	store storage.Storage
	log   *logrus.Logger
}

// NewResumeService creates a new resume service.
func NewResumeService(files ResumeStore, store storage.Storage, log *logrus.Logger) *ResumeService {
	return &ResumeService{files: files, store: store, log: log}
}

// Store persists a resume binary for the given owner and returns its
// metadata record. If the metadata insert fails, the stored blob is removed
// again so no unreferenced bytes remain.
func (s *ResumeService) Store(ctx context.Context, userID, filename, contentType string, size int64, data io.Reader) (*models.ResumeFile, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.NewKey(filename)
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	file := &models.ResumeFile{
		UserID:      userID,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		StorageKey:  key,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.files.Create(ctx, file); err != nil {
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			s.log.WithError(cleanupErr).WithField("key", key).Warn("Failed to clean up orphaned resume blob")
		}
		return nil, err
	}

	return file, nil
}

// Fetch streams a resume binary. The caller must own the file; a mismatch is
// forbidden, not not-found.
func (s *ResumeService) Fetch(ctx context.Context, id, userID string) (*models.ResumeFile, io.ReadCloser, error) {
	file, err := s.lookup(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if file.UserID != userID {
		return nil, nil, apperr.Forbidden("Not authorized to access this resume")
	}

	reader, err := s.store.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, apperr.NotFound("Resume not found")
	}

	return file, reader, nil
}

// Delete removes a resume binary and its metadata record, scoped to the
// owner.
func (s *ResumeService) Delete(ctx context.Context, id, userID string) error {
	file, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}

	if file.UserID != userID {
		return apperr.Forbidden("Not authorized to access this resume")
	}

	if err := s.store.Delete(ctx, file.StorageKey); err != nil {
		return err
	}

	if _, err := s.files.Delete(ctx, file.ID); err != nil {
		return err
	}

	return nil
}

func (s *ResumeService) lookup(ctx context.Context, id string) (*models.ResumeFile, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Invalid resume id")
	}

	file, err := s.files.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Resume not found")
		}
		return nil, err
	}

	return file, nil
}
