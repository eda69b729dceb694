package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotebookNotFound is returned when a notebook does not exist or is not
	// visible to the caller.
	ErrNotebookNotFound = errors.New("notebook not found")
	// ErrNoteNotFound is returned when a note does not exist or is not visible
	// to the caller.
	ErrNoteNotFound = errors.New("note not found")
)

// Detail is the standard error response body. Auth gate rejections, handler
// failures and validation errors all use this shape so clients can rely on a
// single "detail" string.
type Detail struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToDetail converts an HTTPError to a Detail body.
func (e *HTTPError) ToDetail() Detail {
	return Detail{Detail: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotebookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
