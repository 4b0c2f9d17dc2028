package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNoTargets  = errors.New("no target files configured")
	ErrDrift      = errors.New("files are not normalized")
	ErrRootObject = errors.New("document root must be a JSON object")
)

// Error codes returned by Code.
const (
	CodeFileAccess = "file_access"
	CodeParse      = "parse"
	CodeNoTargets  = "no_targets"
	CodeDrift      = "drift"
)

// FileAccessError reports a path that could not be read, stat'ed or written.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports a document that is not a well-formed JSON object.
// Line and Column are 1-based; zero means the position is unknown.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedMetadata records a metadata value that was not an object and was
// replaced by an empty one. It is never returned as an error by the normalizer.
type MalformedMetadata struct {
	Key  string
	Kind string
}

func (m MalformedMetadata) Error() string {
	return fmt.Sprintf("metadata %q is a %s, not an object", m.Key, m.Kind)
}

// Code extracts the stable code of a domain error, or "" for anything else.
func Code(err error) string {
	var fileErr *FileAccessError
	var parseErr *ParseError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &fileErr):
		return CodeFileAccess
	case errors.As(err, &parseErr):
		return CodeParse
	case errors.Is(err, ErrNoTargets):
		return CodeNoTargets
	case errors.Is(err, ErrDrift):
		return CodeDrift
	default:
		return ""
	}
}
