package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"careerlog-backend/apperr"
	"careerlog-backend/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 100
)

// parseListParams reads the shared list query parameters, applying defaults
// and bounds.
func parseListParams(c *gin.Context) (service.ListParams, error) {
	params := service.ListParams{
		Page:      defaultPage,
		PageSize:  defaultPageSize,
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
		Filters:   c.Query("filters"),
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, apperr.Validation("page must be an integer >= 1")
		}
		params.Page = page
	}

	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > maxPageSize {
			return params, apperr.Validation("pageSize must be an integer between 1 and 100")
		}
		params.PageSize = size
	}

	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		return params, apperr.Validation("sortOrder must be asc or desc")
	}

	return params, nil
}
