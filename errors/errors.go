package errors

import (
	stderrors "errors"
	"fmt"
)

// PipelineError is the unified engine error type.
type PipelineError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *PipelineError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *PipelineError) WithCause(cause error) *PipelineError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *PipelineError) WithDetail(key string, value any) *PipelineError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new PipelineError with the given code and message.
func New(code ErrorCode, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// Connection creates a PipelineError for a connection that cannot be made.
func Connection(format string, args ...any) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeConnection,
		Message: fmt.Sprintf(format, args...),
	}
}

// AlreadyExists creates a PipelineError for a duplicate component name.
func AlreadyExists(name string) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeAlreadyExists,
		Message: fmt.Sprintf("a component named %q already exists in this pipeline", name),
		Details: map[string]any{"component": name},
	}
}

// NotFound creates a PipelineError for an unknown component or socket.
func NotFound(kind, name string) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %q not found", kind, name),
		Details: map[string]any{kind: name},
	}
}

// MaxLoops creates a PipelineError for an exceeded loop bound.
func MaxLoops(pipeline, component string, maxLoops int) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeMaxLoops,
		Message: fmt.Sprintf("pipeline %q exceeded maximum loops allowed (%d) at component %q", pipeline, maxLoops, component),
		Details: map[string]any{"pipeline": pipeline, "component": component, "max_loops_allowed": maxLoops},
	}
}

// Runtime creates a PipelineError for a malformed component result.
func Runtime(component string, format string, args ...any) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeRuntime,
		Message: fmt.Sprintf("component %q: %s", component, fmt.Sprintf(format, args...)),
		Details: map[string]any{"component": component},
	}
}

// InvalidInput creates a PipelineError for invalid run inputs.
func InvalidInput(format string, args ...any) *PipelineError {
	return &PipelineError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}

// --- Kind predicates ---

// CodeOf extracts the ErrorCode from err, or "" if err is not a PipelineError.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsConnection reports whether err is a connection error.
func IsConnection(err error) bool { return CodeOf(err) == ErrCodeConnection }

// IsMaxLoops reports whether err is an exceeded loop bound.
func IsMaxLoops(err error) bool { return CodeOf(err) == ErrCodeMaxLoops }

// IsRuntime reports whether err is a malformed-output error.
func IsRuntime(err error) bool { return CodeOf(err) == ErrCodeRuntime }

// IsInvalidInput reports whether err is an invalid run-input error.
func IsInvalidInput(err error) bool { return CodeOf(err) == ErrCodeInvalidInput }
