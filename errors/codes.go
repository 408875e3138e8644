package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transport errors (retryable)
const (
	// ErrCodeFetchFailed indicates the dataset source could not be reached or read.
	ErrCodeFetchFailed ErrorCode = "FETCH_FAILED"
	// ErrCodeTimeout indicates the fetch timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Data errors
const (
	// ErrCodeSchema indicates the dataset does not satisfy the required schema.
	ErrCodeSchema ErrorCode = "SCHEMA_ERROR"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeFetchFailed:  true,
	ErrCodeTimeout:      true,
	ErrCodeSchema:       false,
	ErrCodeInvalidInput: false,
	ErrCodeInternal:     false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
