package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/apperr"
	"careerlog-backend/models"
)

const testOwnerID = "64b0c8f2a1d2e3f405060708"
const testDocID = "64b0c8f2a1d2e3f405060709"

type fakeJobStore struct {
	jobs         []models.Job
	total        int64
	byID         *models.Job
	matched      int64
	deleted      int64
	updateCalled bool
}

func (f *fakeJobStore) Create(ctx context.Context, job *models.Job) error {
	job.ID = bson.NewObjectID()
	return nil
}

func (f *fakeJobStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Job, error) {
	return f.jobs, nil
}

func (f *fakeJobStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return f.total, nil
}

func (f *fakeJobStore) FindByID(ctx context.Context, id bson.ObjectID, userID string) (*models.Job, error) {
	if f.byID == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.byID, nil
}

func (f *fakeJobStore) Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error) {
	f.updateCalled = true
	return f.matched, time.Now().UTC(), nil
}

func (f *fakeJobStore) Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error) {
	return f.deleted, nil
}

func newTestJobService(store *fakeJobStore) *JobService {
	return NewJobService(store, nil, logrus.New())
}

func TestJobServiceCreateTimestampsMatch(t *testing.T) {
	svc := newTestJobService(&fakeJobStore{})

	result, err := svc.Create(context.Background(), testOwnerID, CreateJobRequest{
		URL:            "https://example.com/jobs/1",
		JobTitle:       "Backend Engineer",
		Company:        "Acme",
		Status:         models.JobStatusApplied,
		Location:       "Remote",
		EmploymentType: "full-time",
	}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)
}

func TestJobServiceUpdateEmptyPayload(t *testing.T) {
	store := &fakeJobStore{matched: 1}
	svc := newTestJobService(store)

	_, err := svc.Update(context.Background(), testOwnerID, testDocID, UpdateJobRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
	assert.False(t, store.updateCalled)
}

func TestJobServiceUpdateUnmatchedIsNotFound(t *testing.T) {
	// A job owned by someone else matches zero documents; the caller cannot
	// tell it apart from a missing one.
	store := &fakeJobStore{matched: 0}
	svc := newTestJobService(store)

	title := "Staff Engineer"
	_, err := svc.Update(context.Background(), testOwnerID, testDocID, UpdateJobRequest{JobTitle: &title}, nil)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestJobServiceDeleteUnmatchedIsNotFound(t *testing.T) {
	store := &fakeJobStore{byID: nil}
	svc := newTestJobService(store)

	err := svc.Delete(context.Background(), testOwnerID, testDocID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestJobServiceListPageBeyondRange(t *testing.T) {
	store := &fakeJobStore{jobs: []models.Job{}, total: 3}
	svc := newTestJobService(store)

	result, err := svc.List(context.Background(), testOwnerID, ListParams{
		Page:      5,
		PageSize:  25,
		SortBy:    "createdAt",
		SortOrder: "asc",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, 5, result.Meta.Page)
	assert.Equal(t, int64(3), result.Meta.TotalItems)
	assert.Equal(t, int64(1), result.Meta.TotalPages)
}

type fakeAlertStore struct {
	matched      int64
	deleted      int64
	updateCalled bool
}

func (f *fakeAlertStore) Create(ctx context.Context, alert *models.Alert) error {
	alert.ID = bson.NewObjectID()
	return nil
}

func (f *fakeAlertStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Alert, error) {
	return []models.Alert{}, nil
}

func (f *fakeAlertStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

func (f *fakeAlertStore) Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error) {
	f.updateCalled = true
	return f.matched, time.Now().UTC(), nil
}

func (f *fakeAlertStore) Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error) {
	return f.deleted, nil
}

func TestAlertServiceUpdateEmptyPayload(t *testing.T) {
	store := &fakeAlertStore{matched: 1}
	svc := NewAlertService(store)

	_, err := svc.Update(context.Background(), testOwnerID, testDocID, UpdateAlertRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
	assert.False(t, store.updateCalled)
}

func TestAlertServiceUpdateUnmatchedIsNotFound(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{matched: 0})

	message := "Follow up"
	_, err := svc.Update(context.Background(), testOwnerID, testDocID, UpdateAlertRequest{Message: &message})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestAlertServiceDeleteUnmatchedIsNotFound(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{deleted: 0})

	err := svc.Delete(context.Background(), testOwnerID, testDocID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

type fakeResumeStore struct {
	file      *models.ResumeFile
	createErr error
}

func (f *fakeResumeStore) Create(ctx context.Context, file *models.ResumeFile) error {
	if f.createErr != nil {
		return f.createErr
	}
	file.ID = bson.NewObjectID()
	return nil
}

func (f *fakeResumeStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.ResumeFile, error) {
	if f.file == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.file, nil
}

func (f *fakeResumeStore) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	return 1, nil
}

type memBlobStore struct {
	blobs   map[string][]byte
	deleted []string
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: map[string][]byte{}}
}

func (s *memBlobStore) Put(ctx context.Context, key, contentType string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	s.blobs[key] = b
	return nil
}

func (s *memBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	b, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memBlobStore) Delete(ctx context.Context, key string) error {
	delete(s.blobs, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func TestResumeServiceFetchOwnerMismatch(t *testing.T) {
	files := &fakeResumeStore{file: &models.ResumeFile{UserID: testOwnerID}}
	svc := NewResumeService(files, newMemBlobStore(), logrus.New())

	_, _, err := svc.Fetch(context.Background(), testDocID, "someone-else")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeForbidden, apperr.From(err).Code)
}

func TestResumeServiceDeleteOwnerMismatch(t *testing.T) {
	files := &fakeResumeStore{file: &models.ResumeFile{UserID: testOwnerID}}
	svc := NewResumeService(files, newMemBlobStore(), logrus.New())

	err := svc.Delete(context.Background(), testDocID, "someone-else")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeForbidden, apperr.From(err).Code)
}

func TestResumeServiceStoreCleansUpOnMetadataFailure(t *testing.T) {
	blobs := newMemBlobStore()
	files := &fakeResumeStore{createErr: errors.New("insert failed")}
	svc := NewResumeService(files, blobs, logrus.New())

	_, err := svc.Store(context.Background(), testOwnerID, "resume.pdf", "application/pdf", 9, bytes.NewReader([]byte("pdf bytes")))
	require.Error(t, err)

	assert.Empty(t, blobs.blobs)
	assert.Len(t, blobs.deleted, 1)
}
