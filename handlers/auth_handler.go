package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"careerlog-backend/apperr"
	"careerlog-backend/auth"
	"careerlog-backend/models"
)

// UserStore is the persistence surface the auth handler needs, satisfied by
// repository.UserRepository.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthHandler handles registration, login and token refresh. The duplicate
// email check lives here, at the route boundary, not in a service.
type AuthHandler struct {
	users  UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Pfp         string `json:"pfp" binding:"required"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request body for POST /api/auth/refresh.
type RefreshRequest struct {
	JWT string `json:"jwt" binding:"required"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	// Enforce unique email at write time; no uniqueness index is assumed.
	_, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err == nil {
		respondError(c, apperr.AlreadyExists("Email already registered"))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Pfp:          req.Pfp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{
		"user":      user,
		"jwt":       token,
		"expiresAt": expiresAt,
	})
}

// Login handles POST /api/auth/login. Unknown email and wrong password yield
// the same error so account existence does not leak.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, apperr.InvalidCredentials())
			return
		}
		respondError(c, err)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(c, apperr.InvalidCredentials())
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"user":      user,
		"jwt":       token,
		"expiresAt": expiresAt,
	})
}

// Refresh handles POST /api/auth/refresh: a fresh token minted from the
// subject and email of a still-valid one.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	claims, err := h.tokens.Verify(req.JWT)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(claims.Subject, claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"jwt":       token,
		"expiresAt": expiresAt,
	})
}
