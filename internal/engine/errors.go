package engine

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable classification of an input failure.
type ErrorCode string

const (
	CodeInvalidBoundary  ErrorCode = "INVALID_BOUNDARY"
	CodeInvalidItem      ErrorCode = "INVALID_ITEM"
	CodeDuplicateItem    ErrorCode = "DUPLICATE_ITEM"
	CodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
)

// InputError reports malformed input. It is returned synchronously before
// any optimization work starts and is never retried internally.
type InputError struct {
	Code   ErrorCode
	Detail string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func inputErrorf(code ErrorCode, format string, args ...any) error {
	return &InputError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// AsInputError unwraps err into an *InputError if it is one.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
