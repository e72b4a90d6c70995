package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerlog-backend/apperr"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func recordEnvelope(t *testing.T, fn func(c *gin.Context)) (int, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestRespondSuccessEnvelope(t *testing.T) {
	code, env := recordEnvelope(t, func(c *gin.Context) {
		respond(c, http.StatusCreated, gin.H{"id": "abc"})
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id": "abc"}`, string(env.Data))
	assert.Nil(t, env.Error)
}

func TestRespondNilData(t *testing.T) {
	code, env := recordEnvelope(t, func(c *gin.Context) {
		respond(c, http.StatusOK, nil)
	})

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestRespondErrorEnvelope(t *testing.T) {
	code, env := recordEnvelope(t, func(c *gin.Context) {
		respondError(c, apperr.NotFound("Job not found"))
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
	require.NotNil(t, env.Error)
	assert.Equal(t, apperr.CodeNotFound, env.Error.Code)
	assert.Equal(t, "Job not found", env.Error.Message)
}

func TestRespondErrorUnknownErrorBecomesInternal(t *testing.T) {
	code, env := recordEnvelope(t, func(c *gin.Context) {
		respondError(c, errors.New("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, apperr.CodeInternal, env.Error.Code)
}
