// Package errors provides custom error types for the wikiai catalog system.
// These errors enable programmatic error checking across the repository,
// taxonomy, submission, and store layers.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the wikiai system
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness conflict on an id, slug, or category
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageRead indicates that a persisted value could not be read back
	ErrStorageRead = errors.New("storage read failed")
)

// NotFoundError represents an error when an entity is not found.
// It is also returned for submissions that have already been decided,
// since decided submissions are hard-deleted from the queue.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError represents a uniqueness violation on an id, slug,
// or category name. Nothing is committed when one is returned.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
	}
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Value)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, field, value string) *ConflictError {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// FieldViolation describes a single failed validation check.
type FieldViolation struct {
	Field   string
	Value   any
	Message string
}

// String returns a human-readable description of the violation.
func (v FieldViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError represents a validation failure. Every violated field
// is collected and reported together, not just the first one found.
type ValidationError struct {
	Entity     string
	Violations []FieldViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	if e.Entity != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Entity, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Add appends a violation for the given field.
func (e *ValidationError) Add(field string, value any, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Value: value, Message: message})
}

// HasViolations reports whether any field checks failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// OrNil returns the error itself when violations were collected, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

// NewValidationError creates a new ValidationError for the given entity
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity}
}

// StorageReadError represents a failure to read a persisted store slot.
// The store layer degrades to a caller-supplied default instead of
// surfacing this to callers of Load; it exists for logging and tests.
type StorageReadError struct {
	Key     string
	Message string
	Err     error
}

// Error implements the error interface
func (e *StorageReadError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage read failed for slot %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("storage read failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StorageReadError) Is(target error) bool {
	return target == ErrStorageRead
}

// NewStorageReadError creates a new StorageReadError
func NewStorageReadError(key string, err error) *StorageReadError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StorageReadError{Key: key, Message: message, Err: err}
}

// ParseError represents an error when parsing serialized data
type ParseError struct {
	Format  string // "json", "yaml"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s data from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{Format: format, Source: source, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStorageRead checks if an error is a storage read error
func IsStorageRead(err error) bool {
	return errors.Is(err, ErrStorageRead)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}
