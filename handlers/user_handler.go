package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerlog-backend/apperr"
	"careerlog-backend/auth"
	"careerlog-backend/service"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	updatedAt, err := h.users.Update(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"updatedAt": updatedAt})
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id"), auth.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil)
}
