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
)

// JobStore is the persistence surface the job service needs, satisfied by
// repository.JobRepository.
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Job, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id bson.ObjectID, userID string) (*models.Job, error)
	Update(ctx context.Context, id bson.ObjectID, userID string, fields bson.M) (int64, time.Time, error)
	Delete(ctx context.Context, id bson.ObjectID, userID string) (int64, error)
}

// JobService handles business logic for tracked job applications, including
// the resume attachment lifecycle.
type JobService struct {
	jobs    JobStore
	resumes *ResumeService
	log     *logrus.Logger
}

// NewJobService creates a new job service.
func NewJobService(jobs JobStore, resumes *ResumeService, log *logrus.Logger) *JobService {
	return &JobService{jobs: jobs, resumes: resumes, log: log}
}

// ResumeUpload is a resume binary attached to a job create or update.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// CreateJobRequest is the payload for creating a job.
type CreateJobRequest struct {
	JobID          *string `json:"jobId"`
	URL            string  `json:"url" binding:"required,url"`
	JobTitle       string  `json:"jobTitle" binding:"required"`
	Company        string  `json:"company" binding:"required"`
	SalaryTarget   float64 `json:"salaryTarget"`
	SalaryRange    *string `json:"salaryRange"`
	Status         string  `json:"status" binding:"required"`
	Resume         string  `json:"resume"`
	Location       string  `json:"location" binding:"required"`
	EmploymentType string  `json:"employmentType" binding:"required"`
}

// UpdateJobRequest is a partial job update; nil fields are left unchanged.
type UpdateJobRequest struct {
	JobID          *string  `json:"jobId"`
	URL            *string  `json:"url" binding:"omitempty,url"`
	JobTitle       *string  `json:"jobTitle"`
	Company        *string  `json:"company"`
	SalaryTarget   *float64 `json:"salaryTarget"`
	SalaryRange    *string  `json:"salaryRange"`
	Status         *string  `json:"status"`
	Resume         *string  `json:"resume"`
	Location       *string  `json:"location"`
	EmploymentType *string  `json:"employmentType"`
}

// CreateJobResult is returned from Create.
type CreateJobResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobListResult is one page of jobs with pagination metadata.
type JobListResult struct {
	Items []models.Job    `json:"items"`
	Meta  models.PageMeta `json:"meta"`
}

// Create stores a new job owned by the caller. When a resume binary is
// attached, it is stored first and its id becomes the job's resume reference.
func (s *JobService) Create(ctx context.Context, userID string, req CreateJobRequest, upload *ResumeUpload) (*CreateJobResult, error) {
	if upload != nil {
		file, err := s.resumes.Store(ctx, userID, upload.Filename, upload.ContentType, upload.Size, upload.Data)
		if err != nil {
			return nil, err
		}
		req.Resume = file.ID.Hex()
	}

	now := time.Now().UTC()
	job := &models.Job{
		UserID:         userID,
		JobID:          req.JobID,
		URL:            req.URL,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		SalaryTarget:   req.SalaryTarget,
		SalaryRange:    req.SalaryRange,
		Status:         req.Status,
		Resume:         req.Resume,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		if upload != nil {
			s.dropResume(ctx, req.Resume, userID)
		}
		return nil, err
	}

	return &CreateJobResult{ID: job.ID.Hex(), CreatedAt: now, UpdatedAt: now}, nil
}

// List returns one owner-scoped page of jobs.
func (s *JobService) List(ctx context.Context, userID string, params ListParams) (*JobListResult, error) {
	if err := validateSort(params.SortBy, jobFilterFields); err != nil {
		return nil, err
	}

	filter, err := parseFilters(params.Filters, userID, jobFilterFields)
	if err != nil {
		return nil, err
	}

	items, err := s.jobs.Find(ctx, filter, params.sortDoc(), params.skip(), int64(params.PageSize))
	if err != nil {
		return nil, err
	}

	total, err := s.jobs.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &JobListResult{
		Items: items,
		Meta:  models.NewPageMeta(params.Page, params.PageSize, total),
	}, nil
}

// Update applies a partial update scoped to (id, owner) and returns the new
// updatedAt. A resume attachment replaces the prior file: the new binary is
// stored first, the reference swapped, and only then the old file deleted, so
// a partial failure can orphan a blob but never lose the referenced one.
func (s *JobService) Update(ctx context.Context, userID, id string, req UpdateJobRequest, upload *ResumeUpload) (time.Time, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return time.Time{}, apperr.NotFound("Invalid job id")
	}

	var oldResume string
	if upload != nil {
		existing, err := s.jobs.FindByID(ctx, objectID, userID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return time.Time{}, apperr.NotFound("Job not found")
			}
			return time.Time{}, err
		}
		oldResume = existing.Resume

		file, err := s.resumes.Store(ctx, userID, upload.Filename, upload.ContentType, upload.Size, upload.Data)
		if err != nil {
			return time.Time{}, err
		}
		hex := file.ID.Hex()
		req.Resume = &hex
	}

	fields := jobUpdateFields(req)
	if len(fields) == 0 {
		return time.Time{}, apperr.Validation("No fields provided for update")
	}

	matched, updatedAt, err := s.jobs.Update(ctx, objectID, userID, fields)
	if err != nil || matched == 0 {
		if upload != nil {
			s.dropResume(ctx, *req.Resume, userID)
		}
		if err != nil {
			return time.Time{}, err
		}
		return time.Time{}, apperr.NotFound("Job not found")
	}

	if upload != nil {
		s.dropResume(ctx, oldResume, userID)
	}

	return updatedAt, nil
}

// Delete removes a job scoped to (id, owner). A referenced resume file is
// removed best-effort afterwards.
func (s *JobService) Delete(ctx context.Context, userID, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Invalid job id")
	}

	existing, err := s.jobs.FindByID(ctx, objectID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Job not found")
		}
		return err
	}

	deleted, err := s.jobs.Delete(ctx, objectID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("Job not found")
	}

	s.dropResume(ctx, existing.Resume, userID)
	return nil
}

// dropResume removes a referenced resume file if the reference is a file id.
// Failures are logged and left alone: the job mutation already succeeded.
func (s *JobService) dropResume(ctx context.Context, ref, userID string) {
	if _, err := bson.ObjectIDFromHex(ref); err != nil {
		return // opaque string, not a stored file
	}

	if err := s.resumes.Delete(ctx, ref, userID); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Code == apperr.CodeNotFound {
			return
		}
		s.log.WithError(err).WithField("resumeId", ref).Warn("Failed to delete replaced resume file")
	}
}

func jobUpdateFields(req UpdateJobRequest) bson.M {
	fields := bson.M{}
	if req.JobID != nil {
		fields["jobId"] = *req.JobID
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.JobTitle != nil {
		fields["jobTitle"] = *req.JobTitle
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.SalaryTarget != nil {
		fields["salaryTarget"] = *req.SalaryTarget
	}
	if req.SalaryRange != nil {
		fields["salaryRange"] = *req.SalaryRange
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Resume != nil {
		fields["resume"] = *req.Resume
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.EmploymentType != nil {
		fields["employmentType"] = *req.EmploymentType
	}
	return fields
}
