package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeNotFound: a lookup matched nothing.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput: configuration or arguments failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)
