package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// APIError represents a standardized error payload for JSON endpoints.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// Forbidden renders the access-denied page. Authorization failures are
// terminal for the request and are never presented as "not found".
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "You are not allowed to perform this action."
	}
	c.HTML(http.StatusForbidden, "error_403.html", gin.H{
		"message": message,
	})
	c.Abort()
}

// NotFound renders the missing-resource page.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "The requested resource does not exist."
	}
	c.HTML(http.StatusNotFound, "error_404.html", gin.H{
		"message": message,
	})
	c.Abort()
}

// InternalError sends a 500 response for JSON callers.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, NewAPIError(ErrCodeInternal, message))
}
