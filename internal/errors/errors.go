package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// ErrorTemplate is the template rendered for every error page.
const ErrorTemplate = "error.html"

// PageError is what the error template renders.
type PageError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface
func (e *PageError) Error() string {
	return e.Message
}

// NewPageError creates a new PageError
func NewPageError(status int, code, message string) *PageError {
	return &PageError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// RespondWithError renders the error page and aborts the chain
func RespondWithError(c *gin.Context, err *PageError) {
	c.HTML(err.Status, ErrorTemplate, gin.H{
		"error": err,
	})
	c.Abort()
}

// NotFound sends a 404 page
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, NewPageError(http.StatusNotFound, ErrCodeNotFound, message))
}

// BadRequest sends a 400 page
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, NewPageError(http.StatusBadRequest, ErrCodeInvalidInput, message))
}

// InternalError sends a 500 page. The cause stays in the logs.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, NewPageError(http.StatusInternalServerError, ErrCodeInternalError, message))
}
