package errors

import (
	stderrors "errors"
	"fmt"
)

// Error kinds for the glint toolkit
type ErrorKind string

const (
	// Configuration errors: malformed regex or glob patterns. Fatal,
	// surfaced before any file I/O begins.
	KindConfig ErrorKind = "config"

	// File errors: unreadable entries during a walk or match pass.
	// Logged and skipped, except for the root directory itself.
	KindFile ErrorKind = "file"

	// View errors
	KindNotFound  ErrorKind = "not_found"
	KindSizeLimit ErrorKind = "size_limit"
)

// ConfigError represents an invalid search or glob pattern
type ConfigError struct {
	Kind       ErrorKind
	Field      string
	Value      string
	Underlying error
}

// NewConfigError creates a new config error naming the offending field and value
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Kind:       KindConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// FileError represents a per-entity I/O failure
type FileError struct {
	Kind       ErrorKind
	Operation  string
	Path       string
	Underlying error
}

// NewFileError creates a new file error with the failed operation and path
func NewFileError(op, path string, err error) *FileError {
	return &FileError{
		Kind:       KindFile,
		Operation:  op,
		Path:       path,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// NotFoundError represents a view of a nonexistent path
type NotFoundError struct {
	Kind ErrorKind
	Path string
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{Kind: KindNotFound, Path: path}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// SizeLimitError represents a file exceeding the configured view size limit
type SizeLimitError struct {
	Kind  ErrorKind
	Path  string
	Size  int64
	Limit int64
}

// NewSizeLimitError creates a new size-limit error
func NewSizeLimitError(path string, size, limit int64) *SizeLimitError {
	return &SizeLimitError{Kind: KindSizeLimit, Path: path, Size: size, Limit: limit}
}

// Error implements the error interface
func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("file is too large: %s (size: %d, limit: %d)", e.Path, e.Size, e.Limit)
}

// IsConfig reports whether err is (or wraps) a ConfigError
func IsConfig(err error) bool {
	var ce *ConfigError
	return stderrors.As(err, &ce)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return stderrors.As(err, &ne)
}

// IsSizeLimit reports whether err is (or wraps) a SizeLimitError
func IsSizeLimit(err error) bool {
	var se *SizeLimitError
	return stderrors.As(err, &se)
}
