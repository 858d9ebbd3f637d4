package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	// ErrMissingProjectType indicates no project type was provided.
	ErrMissingProjectType = errors.New("models: project type is required")

	// ErrUnknownProjectType indicates an unsupported project type value.
	ErrUnknownProjectType = errors.New("models: unknown project type")

	// ErrMissingProjectName indicates no project name was provided.
	ErrMissingProjectName = errors.New("models: project name is required")

	// ErrInvalidProjectName indicates the project name is not usable as
	// a directory name.
	ErrInvalidProjectName = errors.New("models: invalid project name")

	// ErrUnknownLicense indicates an unsupported license value.
	ErrUnknownLicense = errors.New("models: unknown license")

	// ErrMissingAuthor indicates a license was chosen without an author.
	ErrMissingAuthor = errors.New("models: author is required for the chosen license")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid --%s value %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid --%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) append(ve ValidationError) {
	e.Errors = append(e.Errors, ve)
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against
// the target.
func (e *ValidationErrors) Is(target error) bool {
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
