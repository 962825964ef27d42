// Package assembly is the command core of the design session: it flattens
// the occurrence tree into per-command indices, resolves symbolic and
// geometric selectors, and constructs kinematic joints on the engine.
//
// Every failure is classified with a Code so handlers can report it
// uniformly. Resolution is read-only; the engine is only mutated by the
// final commit of a joint builder call.
package assembly

import (
	"errors"
	"fmt"
)

// Code classifies a failure for reporting.
type Code string

const (
	// CodeValidation marks missing parameters, out-of-range indices,
	// and unrecognized symbolic values. No engine call was attempted.
	CodeValidation Code = "validation"
	// CodeResolution marks named occurrences, bodies, faces, or edges
	// that could not be found. No engine call was attempted.
	CodeResolution Code = "resolution"
	// CodeEngine marks a rejection by the underlying engine, with the
	// engine's own message preserved.
	CodeEngine Code = "engine"
	// CodeUnsupported marks deliberate stub paths that fail clearly
	// instead of guessing.
	CodeUnsupported Code = "unsupported"
)

// Error is a classified assembly failure.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error returns the human-readable reason, sufficient to identify the
// offending parameter.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped engine error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Validationf creates a validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Resolutionf creates a resolution error.
func Resolutionf(format string, args ...any) *Error {
	return &Error{Code: CodeResolution, Message: fmt.Sprintf(format, args...)}
}

// Unsupportedf creates an unsupported-operation error.
func Unsupportedf(format string, args ...any) *Error {
	return &Error{Code: CodeUnsupported, Message: fmt.Sprintf(format, args...)}
}

// EngineWrap wraps a rejection from the engine, keeping its message.
func EngineWrap(err error, format string, args ...any) *Error {
	return &Error{Code: CodeEngine, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf returns the classification of err, or the empty Code when err
// carries none.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// prefix rewraps err with a parameter label, preserving its Code so a
// "geometry one" failure still reports as the class it was.
func prefix(label string, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return &Error{Code: ae.Code, Message: label + ": " + ae.Message, Err: ae.Err}
	}
	return fmt.Errorf("%s: %w", label, err)
}
