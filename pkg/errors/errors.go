// Package errors provides structured error reporting for the refresh control
// and its collaborators.
//
// The control never returns errors from its public operations: invalid calls
// are no-ops. Configuration mistakes and recovered panics are instead
// reported to a process-wide [ErrorHandler] so hosts can log them.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unsupported configuration value.
	KindConfig
	// KindDelegate indicates a misbehaving delegate.
	KindDelegate
	// KindRender indicates a content view rendering failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDelegate:
		return "delegate"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RefreshError represents a structured, non-fatal error.
type RefreshError struct {
	// Op is the operation that failed (e.g., "refresh.Control.SetExpandedHeight").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "refresh.Control.transition").
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

// ErrorHandler receives errors reported through this package.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RefreshError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Configf builds a KindConfig error for op.
func Configf(op, format string, args ...any) *RefreshError {
	return &RefreshError{
		Op:   op,
		Kind: KindConfig,
		Err:  fmt.Errorf(format, args...),
	}
}
