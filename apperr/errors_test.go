package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status)
	assert.Equal(t, http.StatusUnauthorized, InvalidCredentials().Status)
	assert.Equal(t, http.StatusUnauthorized, InvalidToken("x").Status)
	assert.Equal(t, http.StatusForbidden, OwnershipViolation("x").Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, http.StatusConflict, AlreadyExists("x").Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("x").Status)
}

func TestFromPassesThroughAppError(t *testing.T) {
	orig := NotFound("Job not found")
	assert.Same(t, orig, From(orig))

	wrapped := fmt.Errorf("handler: %w", orig)
	assert.Same(t, orig, From(wrapped))
}

func TestFromWrapsUnknownError(t *testing.T) {
	appErr := From(errors.New("connection reset"))
	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "connection reset", appErr.Message)
}
