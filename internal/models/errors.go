package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrCycleDetected      = errors.New("folder cycle detected")
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal server error")
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidParams      = errors.New("invalid params")
	ErrSessionNotFound    = errors.New("sessions not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// HTTPError is implemented by domain errors that map onto a response status.
type HTTPError interface {
	error
	StatusCode() int
}

// ValidationError reports malformed input, e.g. a folder parented to itself.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string        { return e.Message }
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a reference to a folder or document id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CycleDetectedError is returned when an ancestor walk exceeds the folder count.
type CycleDetectedError struct {
	FolderID string
	Steps    int
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("folder %q: ancestor walk did not terminate after %d steps", e.FolderID, e.Steps)
}
func (e *CycleDetectedError) StatusCode() int      { return http.StatusConflict }
func (e *CycleDetectedError) Is(target error) bool { return target == ErrCycleDetected }

// ConflictError is reserved for transactional writes. Nothing returns it yet.
type ConflictError struct {
	Message      string
	ResourceType string
	ResourceID   string
}

func (e *ConflictError) Error() string        { return e.Message }
func (e *ConflictError) StatusCode() int      { return http.StatusConflict }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func FolderNotFound(id string) error {
	return &NotFoundError{Resource: "folder", ID: id}
}

func DocumentNotFound(id string) error {
	return &NotFoundError{Resource: "document", ID: id}
}
