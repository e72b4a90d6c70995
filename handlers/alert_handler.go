package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerlog-backend/apperr"
	"careerlog-backend/auth"
	"careerlog-backend/service"
)

// AlertHandler handles HTTP requests for scheduled reminders.
type AlertHandler struct {
	alerts *service.AlertService
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(alerts *service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// Create handles POST /api/alerts.
func (h *AlertHandler) Create(c *gin.Context) {
	var req service.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	result, err := h.alerts.Create(c.Request.Context(), auth.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, result)
}

// List handles GET /api/alerts.
func (h *AlertHandler) List(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.alerts.List(c.Request.Context(), auth.CurrentUserID(c), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// Update handles PUT /api/alerts/:id.
func (h *AlertHandler) Update(c *gin.Context) {
	var req service.UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	updatedAt, err := h.alerts.Update(c.Request.Context(), auth.CurrentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"updatedAt": updatedAt})
}

// Delete handles DELETE /api/alerts/:id.
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alerts.Delete(c.Request.Context(), auth.CurrentUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
