// Package errors provides structured error handling for the showbox engine.
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
	// KindConfig indicates an invalid or malformed configuration value.
	// Configuration errors are detected at resolution time, before any
	// measurement is requested, and abort that single render.
	KindConfig
	// KindMeasure indicates the host renderer could not honor a
	// measurement request. Not retried: identical input would yield the
	// identical failure.
	KindMeasure
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMeasure:
		return "measure"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BoxError represents a structured error in the showbox engine.
type BoxError struct {
	// Op is the operation that failed (e.g., "box.Compose").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BoxError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BoxError) Unwrap() error {
	return e.Err
}

// Config wraps err as a configuration error for the given operation.
func Config(op string, err error) *BoxError {
	return &BoxError{Op: op, Kind: KindConfig, Err: err, Timestamp: time.Now()}
}

// Configf creates a configuration error from a format string.
func Configf(op, format string, args ...any) *BoxError {
	return Config(op, fmt.Errorf(format, args...))
}

// Measure wraps err as a measurement error for the given operation.
func Measure(op string, err error) *BoxError {
	return &BoxError{Op: op, Kind: KindMeasure, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of err, or KindUnknown if err carries no kind.
func KindOf(err error) ErrorKind {
	var be *BoxError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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

// ErrorHandler receives errors reported by the showbox engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BoxError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
