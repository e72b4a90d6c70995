package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerlog-backend/auth"
	"careerlog-backend/service"
)

// ResumeHandler streams stored resume binaries back to their owner.
type ResumeHandler struct {
	resumes *service.ResumeService
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(resumes *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// Download handles GET /api/resumes/:id. The response body is the raw file
// with its original filename in Content-Disposition.
func (h *ResumeHandler) Download(c *gin.Context) {
	file, reader, err := h.resumes.Fetch(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.DataFromReader(http.StatusOK, file.Size, file.ContentType, reader, nil)
}

// Delete handles DELETE /api/resumes/:id.
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumes.Delete(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
