// Package errors provides structured error reporting for pullzoom.
//
// Gesture handling never returns errors to the host: conditions such as a
// move from an unknown pointer are reported to the global [ErrorHandler]
// and the event is left unconsumed. Tooling code (scenario loading, chart
// rendering, the terminal host) returns ordinary wrapped errors and uses the
// same types to describe them.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPointer indicates an event for a pointer that is not tracked.
	KindPointer
	// KindConfig indicates missing or invalid layout or configuration.
	KindConfig
	// KindScenario indicates a malformed gesture scenario.
	KindScenario
	// KindRender indicates a trace chart rendering failure.
	KindRender
	// KindHost indicates a failure in an interactive host.
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindConfig:
		return "config"
	case KindScenario:
		return "scenario"
	case KindRender:
		return "render"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownPointer is reported when a move or lift references a pointer
	// id the controller is not tracking.
	ErrUnknownPointer = errors.New("unknown pointer")
	// ErrNotLaidOut is reported when a gesture starts before the host has
	// supplied a non-zero natural header height.
	ErrNotLaidOut = errors.New("natural height not laid out")
)

// ZoomError is a structured pullzoom error.
type ZoomError struct {
	// Op is the operation that failed (e.g., "zoom.HandlePointer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// PointerID is the pointer involved, if any.
	PointerID int64
	// HasPointer reports whether PointerID is meaningful.
	HasPointer bool
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ZoomError) Error() string {
	if e.HasPointer {
		return fmt.Sprintf("%s [%s] pointer=%d: %v", e.Op, e.Kind, e.PointerID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ZoomError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "demo.frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a field that could not be decoded.
type ParseError struct {
	// Source names the input, usually a file path.
	Source string
	// Field is the offending field, e.g. "steps[3].kind".
	Field string
	// Got is the value that was rejected.
	Got any
	// Reason says what was expected.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid %s %v: %s", e.Source, e.Field, e.Got, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s %v", e.Source, e.Field, e.Got)
}

// ErrorHandler receives errors reported by pullzoom.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ZoomError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
