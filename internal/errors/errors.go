package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no record.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when a task lookup finds no record.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmailExists is returned when a user's email collides with another user.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserHasTasks is returned when deleting a user that tasks still reference.
	ErrUserHasTasks = errors.New("user has existing tasks")
	// ErrInvalidUserID is returned when a user id does not parse as an integer.
	ErrInvalidUserID = errors.New("user ID must be a valid number")
)

// ValidationError carries a request-validation failure message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// reported as a generic 500 so internals never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrUserHasTasks):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_HAS_TASKS")
	case errors.Is(err, ErrInvalidUserID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_USER_ID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
