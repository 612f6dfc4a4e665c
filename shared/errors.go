package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status alongside the underlying error so handlers
// can return errors straight up and let the fiber error handler map them.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

func NewBadRequestError(err error, message string) *AppError {
	if message == "" {
		message = "Bad Request"
	}
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	if message == "" {
		message = "Not Found"
	}
	return NewAppError(http.StatusNotFound, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewAppError(http.StatusUnauthorized, err, message)
}

func NewForbiddenError(err error, message string) *AppError {
	if message == "" {
		message = "Forbidden"
	}
	return NewAppError(http.StatusForbidden, err, message)
}

func NewConflictError(err error, message string) *AppError {
	if message == "" {
		message = "Conflict"
	}
	return NewAppError(http.StatusConflict, err, message)
}

func NewInternalError(err error, message string) *AppError {
	if message == "" {
		message = "Internal Server Error"
	}
	return NewAppError(http.StatusInternalServerError, err, message)
}

func NewValidationError(data interface{}) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: "Validation failed", Data: data}
}

// GetAppError unwraps err to an *AppError when one is in the chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
