package prop

import "errors"

// StatusCode is the outcome of a property operation.
type StatusCode int32

const (
	// StatusOK indicates the operation completed successfully.
	StatusOK StatusCode = 0

	// StatusTryAgain indicates the caller should retry later.
	StatusTryAgain StatusCode = 1

	// StatusInvalidArg indicates a malformed request.
	StatusInvalidArg StatusCode = 2

	// StatusNotAvailable indicates the property is disabled or errored.
	StatusNotAvailable StatusCode = 3

	// StatusAccessDenied indicates the operation is not permitted.
	StatusAccessDenied StatusCode = 4

	// StatusInternalError indicates an unexpected failure.
	StatusInternalError StatusCode = 5
)

// String returns the status code name.
func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusTryAgain:
		return "TRY_AGAIN"
	case StatusInvalidArg:
		return "INVALID_ARG"
	case StatusNotAvailable:
		return "NOT_AVAILABLE"
	case StatusAccessDenied:
		return "ACCESS_DENIED"
	case StatusInternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// StatusError is an error carrying a StatusCode.
type StatusError struct {
	Code    StatusCode
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.String()
}

// Is matches any StatusError with the same code.
func (e *StatusError) Is(target error) bool {
	var t *StatusError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors, one per status code.
var (
	ErrTryAgain     = &StatusError{Code: StatusTryAgain}
	ErrInvalidArg   = &StatusError{Code: StatusInvalidArg}
	ErrNotAvailable = &StatusError{Code: StatusNotAvailable}
	ErrAccessDenied = &StatusError{Code: StatusAccessDenied}
	ErrInternal     = &StatusError{Code: StatusInternalError}
)

// NewStatusError returns an error with the given code and message.
func NewStatusError(code StatusCode, msg string) error {
	return &StatusError{Code: code, Message: msg}
}

// StatusOf returns the status code carried by err.
// A nil error is StatusOK; errors without a code are StatusInternalError.
func StatusOf(err error) StatusCode {
	if err == nil {
		return StatusOK
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return StatusInternalError
}
