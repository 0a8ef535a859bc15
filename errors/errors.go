// Package errors provides SR-specific error types for better error handling
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidValueType        = errors.New("sr: value type not allowed for document type")
	ErrMissingFrameOfReference = errors.New("sr: SCOORD3D item has no resolvable frame of reference UID")
	ErrNoKeyObjects            = errors.New("sr: key object selection document contains no key objects")
	ErrInvalidDocumentType     = errors.New("sr: document SOP class does not match the expected family")
	ErrInvalidStructure        = errors.New("sr: document is missing mandatory substructure")
	ErrInvalidPath             = errors.New("sr: malformed SR path")
	ErrMissingValueType        = errors.New("sr: content item has no value type")
	ErrUnknownValueType        = errors.New("sr: unknown value type discriminant")
	ErrMissingHeaderField      = errors.New("sr: mandatory header field is absent")
	ErrMaxDepthExceeded        = errors.New("sr: content tree exceeds maximum depth")
)

// BuildError represents a document validation failure at build time
type BuildError struct {
	DocumentType string
	ValueType    string
	Err          error
}

func (e *BuildError) Error() string {
	if e.ValueType != "" {
		return fmt.Sprintf("build failed for %s: value type %s: %v", e.DocumentType, e.ValueType, e.Err)
	}
	return fmt.Sprintf("build failed for %s: %v", e.DocumentType, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new build error
func NewBuildError(documentType, valueType string, err error) *BuildError {
	return &BuildError{
		DocumentType: documentType,
		ValueType:    valueType,
		Err:          err,
	}
}

// PathError represents a malformed SR path string. It is raised at parse
// time, independent of any document.
type PathError struct {
	Path string
	Msg  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid SR path %q: %s", e.Path, e.Msg)
}

func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}

// NewPathError creates a new path error
func NewPathError(path, msg string) *PathError {
	return &PathError{
		Path: path,
		Msg:  msg,
	}
}

// ExtractionError represents a failure to project a document into a
// template-specific view
type ExtractionError struct {
	View     string
	Expected string
	Actual   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Actual != "" {
		return fmt.Sprintf("%s extraction failed: expected %s, got SOP class %s: %v",
			e.View, e.Expected, e.Actual, e.Err)
	}
	return fmt.Sprintf("%s extraction failed: %v", e.View, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new extraction error
func NewExtractionError(view, expected, actual string, err error) *ExtractionError {
	return &ExtractionError{
		View:     view,
		Expected: expected,
		Actual:   actual,
		Err:      err,
	}
}

// ParseError represents a decode failure while reconstructing a document
// from a data-set view
type ParseError struct {
	Field string
	Depth int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse failed at %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse failed at depth %d: %v", e.Depth, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error
func NewParseError(field string, depth int, err error) *ParseError {
	return &ParseError{
		Field: field,
		Depth: depth,
		Err:   err,
	}
}
