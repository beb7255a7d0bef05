package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// With returns a copy of e carrying err as its cause, leaving the shared
// sentinel untouched.
func (e *Error) With(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: err}
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "unauthorized access", nil)
	ErrForbidden      = New(http.StatusForbidden, "forbidden access", nil)
	ErrNotFound       = New(http.StatusNotFound, "not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "internal server error", nil)
)

// Upstream error types
var (
	ErrDatabase = New(http.StatusInternalServerError, "database error", nil)
	ErrGateway  = New(http.StatusBadGateway, "payment gateway error", nil)
)

// ErrorMiddleware is the uniform error boundary: any error attached to the
// gin context by a handler becomes a structured JSON response instead of an
// unhandled failure, so one failing request never takes the process down.
// gin.Recovery() runs underneath it for panics.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := err.(*Error)
		if !ok {
			appErr = New(http.StatusInternalServerError, "internal server error", err)
		}
		c.JSON(appErr.Code, gin.H{"error": true, "message": appErr.Message})
	}
}
