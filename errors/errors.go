package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// FetchFailed creates a new AppError for a dataset source that could not be read.
// The transport or parse failure is carried unmodified as the cause.
func FetchFailed(source string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeFetchFailed, Message: fmt.Sprintf("failed to fetch dataset from %s", source),
		Retryable: true, Cause: cause,
		Details: map[string]any{"source": source},
	}
}

// Timeout creates a new AppError for a fetch that took too long.
func Timeout(source string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("fetching %s timed out", source),
		Retryable: true,
		Details:   map[string]any{"source": source},
	}
}

// Schema creates a new AppError for a dataset that violates the required schema.
func Schema(reason string) *AppError {
	return &AppError{
		Code: ErrCodeSchema, Message: reason,
		Retryable: false,
	}
}

// MissingColumn creates a new AppError for a required column that is absent.
func MissingColumn(column string) *AppError {
	return &AppError{
		Code: ErrCodeSchema, Message: fmt.Sprintf("missing required column: %s", column),
		Retryable: false,
		Details:   map[string]any{"column": column},
	}
}

// EmptyDataset creates a new AppError for a dataset with no rows.
func EmptyDataset() *AppError {
	return &AppError{
		Code: ErrCodeSchema, Message: "dataset contains no rows",
		Retryable: false,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(message string) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: message,
		Retryable: false,
	}
}

// --- Predicates ---

// AsAppError extracts an *AppError from err's chain, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

// IsSchema reports whether err is a schema error.
func IsSchema(err error) bool { return IsCode(err, ErrCodeSchema) }

// IsFetch reports whether err is a fetch (transport/parse) error.
func IsFetch(err error) bool {
	return IsCode(err, ErrCodeFetchFailed) || IsCode(err, ErrCodeTimeout)
}

// IsRetryable reports whether err is retryable.
func IsRetryable(err error) bool {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Retryable
	}
	return false
}
