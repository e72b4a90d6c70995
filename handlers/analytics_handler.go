package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerlog-backend/auth"
	"careerlog-backend/service"
)

// AnalyticsHandler serves read-only aggregations.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// StatusCounts handles GET /api/analytics/status-counts.
func (h *AnalyticsHandler) StatusCounts(c *gin.Context) {
	counts, err := h.analytics.StatusCounts(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, counts)
}
