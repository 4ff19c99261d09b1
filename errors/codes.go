package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Graph-construction errors
const (
	// ErrCodeConnection indicates a connection could not be established:
	// ambiguous socket resolution, incompatible socket types, an occupied
	// non-variadic destination, or an unknown component or socket name.
	ErrCodeConnection ErrorCode = "CONNECTION_ERROR"
	// ErrCodeAlreadyExists indicates a component name is already registered.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeNotFound indicates a referenced component or socket does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Run-time errors
const (
	// ErrCodeMaxLoops indicates a loop-group component exceeded the
	// pipeline's max_loops_allowed bound.
	ErrCodeMaxLoops ErrorCode = "MAX_LOOPS_EXCEEDED"
	// ErrCodeRuntime indicates a component returned a result that does not
	// conform to its declared output-socket contract.
	ErrCodeRuntime ErrorCode = "RUNTIME_ERROR"
	// ErrCodeInvalidInput indicates the caller-supplied run inputs reference
	// unknown components or sockets.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)
