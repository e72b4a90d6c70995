package handlers

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"careerlog-backend/apperr"
	"careerlog-backend/auth"
	"careerlog-backend/service"
)

// JobHandler handles HTTP requests for jobs. Create and update accept either
// JSON or multipart/form-data with an optional resume file part.
type JobHandler struct {
	jobs          *service.JobService
	maxResumeSize int64
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{
		jobs:          jobs,
		maxResumeSize: 10 * 1024 * 1024, // 10MB
	}
}

// Create handles POST /api/jobs.
func (h *JobHandler) Create(c *gin.Context) {
	userID := auth.CurrentUserID(c)

	var req service.CreateJobRequest
	var upload *service.ResumeUpload

	if isMultipart(c) {
		var err error
		req, err = jobCreateFromForm(c)
		if err != nil {
			respondError(c, err)
			return
		}

		var file multipart.File
		upload, file, err = h.resumeUpload(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if file != nil {
			defer file.Close()
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	result, err := h.jobs.Create(c.Request.Context(), userID, req, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, result)
}

// List handles GET /api/jobs.
func (h *JobHandler) List(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.jobs.List(c.Request.Context(), auth.CurrentUserID(c), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// Update handles PUT /api/jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	userID := auth.CurrentUserID(c)

	var req service.UpdateJobRequest
	var upload *service.ResumeUpload

	if isMultipart(c) {
		var err error
		req, err = jobUpdateFromForm(c)
		if err != nil {
			respondError(c, err)
			return
		}

		var file multipart.File
		upload, file, err = h.resumeUpload(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if file != nil {
			defer file.Close()
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	updatedAt, err := h.jobs.Update(c.Request.Context(), userID, c.Param("id"), req, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"updatedAt": updatedAt})
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobs.Delete(c.Request.Context(), auth.CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// resumeUpload opens the optional "resume" file part. The caller is
// responsible for closing the returned file when it is non-nil.
func (h *JobHandler) resumeUpload(c *gin.Context) (*service.ResumeUpload, multipart.File, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, apperr.Validation("Invalid resume file")
	}

	if fileHeader.Size > h.maxResumeSize {
		return nil, nil, apperr.Validation(fmt.Sprintf("Resume file exceeds maximum of %d bytes", h.maxResumeSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}

	return &service.ResumeUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Data:        file,
	}, file, nil
}

func jobCreateFromForm(c *gin.Context) (service.CreateJobRequest, error) {
	req := service.CreateJobRequest{
		URL:            c.PostForm("url"),
		JobTitle:       c.PostForm("jobTitle"),
		Company:        c.PostForm("company"),
		Status:         c.PostForm("status"),
		Resume:         c.PostForm("resume"),
		Location:       c.PostForm("location"),
		EmploymentType: c.PostForm("employmentType"),
	}

	if v, ok := c.GetPostForm("jobId"); ok {
		req.JobID = &v
	}
	if v, ok := c.GetPostForm("salaryRange"); ok {
		req.SalaryRange = &v
	}
	if v := c.PostForm("salaryTarget"); v != "" {
		target, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, apperr.Validation("salaryTarget must be a number")
		}
		req.SalaryTarget = target
	}

	// Same binding tags as the JSON path, so both content types reject the
	// same payloads.
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, apperr.Validation(err.Error())
	}

	return req, nil
}

func jobUpdateFromForm(c *gin.Context) (service.UpdateJobRequest, error) {
	var req service.UpdateJobRequest

	setString := func(name string, dst **string) {
		if v, ok := c.GetPostForm(name); ok {
			*dst = &v
		}
	}

	setString("jobId", &req.JobID)
	setString("url", &req.URL)
	setString("jobTitle", &req.JobTitle)
	setString("company", &req.Company)
	setString("salaryRange", &req.SalaryRange)
	setString("status", &req.Status)
	setString("resume", &req.Resume)
	setString("location", &req.Location)
	setString("employmentType", &req.EmploymentType)

	if v, ok := c.GetPostForm("salaryTarget"); ok {
		target, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, apperr.Validation("salaryTarget must be a number")
		}
		req.SalaryTarget = &target
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, apperr.Validation(err.Error())
	}

	return req, nil
}
