package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err     error
		code    int
		message string
	}{
		{ErrGiftNotFound, http.StatusNotFound, "gift not found"},
		{fmt.Errorf("wrapped: %w", ErrGiftLocked), http.StatusForbidden, "wrapped: gift is still locked"},
		{ErrEmailNotAllowed, http.StatusForbidden, "email is not on the guest list"},
		{ErrInvalidRating, http.StatusBadRequest, "rating must be between 1 and 5"},
		{fmt.Errorf("%w: correct answer must be one of the options", ErrInvalidInput), http.StatusBadRequest,
			"invalid input: correct answer must be one of the options"},
		{fmt.Errorf("%w: bucket timeout", ErrUploadFailed), http.StatusBadGateway, "upload failed"},
		{fmt.Errorf("%w: boom", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{fmt.Errorf("anything"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Set("trace_id", "t-1")

		HandleServiceError(c, tt.err)

		assert.Equal(t, tt.code, rec.Code, tt.err.Error())
		body := decode(t, rec)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "t-1", body.TraceID)
		assert.Equal(t, tt.message, body.Message)
	}
}

func TestRespondSuccess_WithoutTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondSuccess(c, gin.H{"ok": true}, "fine")

	body := decode(t, rec)
	assert.Equal(t, http.StatusOK, body.Code)
	assert.Equal(t, "success", body.Status)
	assert.Empty(t, body.TraceID)
}
