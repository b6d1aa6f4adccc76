package application

import (
	"errors"
	"fmt"
	"strings"

	"relapse/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = domain.ErrNotFound
	ErrScanFailure  = errors.New("scan failed")
	ErrEmptyScan    = errors.New("no files found")
	ErrExternalTool = errors.New("external tool failed")
)

// NotFoundError is returned when an index or datetime resolves to no batch
type NotFoundError = domain.NotFoundError

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanError represents a root that could not be read
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailure
}

// ExternalToolError represents a failed or missing archiver/summarizer
type ExternalToolError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

// EmptyScanError is returned when a root holds no eligible files.
// Selecting from an empty scan is a NotFound condition.
type EmptyScanError struct {
	Root string
}

func (e *EmptyScanError) Error() string {
	return fmt.Sprintf("no files found under %s", e.Root)
}

func (e *EmptyScanError) Is(target error) bool {
	return target == ErrEmptyScan || target == ErrNotFound
}
