// Package errors provides structured error handling for the seeds library.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindDefine indicates an invalid class definition.
	KindDefine
	// KindDecorate indicates decoration applied to an unsupported target.
	KindDecorate
	// KindLookup indicates a failed method or attribute lookup.
	KindLookup
	// KindCall indicates a failed method invocation.
	KindCall
	// KindParse indicates a table definition that could not be parsed.
	KindParse
	// KindRender indicates a table that could not be rendered.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindDefine:
		return "define"
	case KindDecorate:
		return "decorate"
	case KindLookup:
		return "lookup"
	case KindCall:
		return "call"
	case KindParse:
		return "parse"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// SeedError represents a structured error in the seeds library.
type SeedError struct {
	// Op is the operation that failed (e.g., "object.Define").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// New builds a SeedError wrapping err.
func New(op string, kind Kind, err error) *SeedError {
	return &SeedError{Op: op, Kind: kind, Err: err}
}

// Newf builds a SeedError from a format string.
func Newf(op string, kind Kind, format string, args ...any) *SeedError {
	return &SeedError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err is, or wraps, a SeedError of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *SeedError
	return stderrors.As(err, &se) && se.Kind == kind
}
