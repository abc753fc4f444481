package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapGeneratorError maps inference backend errors to HTTP error responses.
// Only the status endpoints use it; analyze always answers 200.
func MapGeneratorError(err error) ErrorResponse {
	switch {
	case errors.Is(err, service.ErrServiceUnavailable):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "SERVICE_UNAVAILABLE",
			Message:    "inference server is not running",
		}
	case errors.Is(err, service.ErrTimeout):
		return ErrorResponse{
			StatusCode: http.StatusGatewayTimeout,
			Code:       "GATEWAY_TIMEOUT",
			Message:    "inference server did not answer in time",
		}
	case errors.Is(err, service.ErrModelNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       "MODEL_NOT_FOUND",
			Message:    "model not found",
		}
	case errors.Is(err, service.ErrTransport), errors.Is(err, service.ErrMalformedResponse):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "BAD_GATEWAY",
			Message:    "inference server returned an invalid reply",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleGeneratorError sends the HTTP error response mapped from err.
func HandleGeneratorError(c *gin.Context, err error) {
	errResp := MapGeneratorError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// NotFound handles unknown routes
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "NOT_FOUND", "route not found")
}

// MethodNotAllowed handles known routes called with the wrong method
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
