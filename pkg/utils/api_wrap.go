package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	RespondErrorData(c, code, message, nil)
}

func RespondErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

type errorMapping struct {
	target error
	code   int
}

var errorMappings = []errorMapping{
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidMood, http.StatusBadRequest},
	{ErrInvalidRating, http.StatusBadRequest},
	{ErrInvalidOtp, http.StatusUnauthorized},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrEmailNotAllowed, http.StatusForbidden},
	{ErrForbidden, http.StatusForbidden},
	{ErrGiftLocked, http.StatusForbidden},
	{ErrCapsuleLocked, http.StatusForbidden},
	{ErrTripNotFound, http.StatusNotFound},
	{ErrAlbumNotFound, http.StatusNotFound},
	{ErrGiftNotFound, http.StatusNotFound},
	{ErrCapsuleNotFound, http.StatusNotFound},
	{ErrRestaurantNotFound, http.StatusNotFound},
	{ErrReviewNotFound, http.StatusNotFound},
	{ErrBucketItemNotFound, http.StatusNotFound},
	{ErrQuoteNotFound, http.StatusNotFound},
	{ErrTriviaNotFound, http.StatusNotFound},
	{ErrProfileNotFound, http.StatusNotFound},
	{ErrUploadFailed, http.StatusBadGateway},
	{ErrMailFailed, http.StatusBadGateway},
}

// HandleServiceError maps service errors onto the response envelope.
// Client errors carry the full wrapped message. Upstream failures report
// only the sentinel and log the cause; anything unmapped is an internal error.
func HandleServiceError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.code >= http.StatusInternalServerError {
				Logger(c).Warn("upstream failure", zap.Error(err))
				RespondError(c, m.code, m.target.Error())
				return
			}
			RespondError(c, m.code, err.Error())
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		Logger(c).Error("database error", zap.Error(err))
	} else {
		Logger(c).Error("unhandled service error", zap.Error(err))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}

// Logger returns the request-scoped logger set by the logging middleware.
func Logger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.L()
}
