package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalancedEntry indicates that a journal entry's lines do not balance.
var ErrUnbalancedEntry = fmt.Errorf("%w: journal lines do not balance", ErrValidation)

// ErrChartNotSeeded indicates the chart of accounts was not seeded for the
// business before posting.
var ErrChartNotSeeded = errors.New("chart of accounts not seeded for business")

// UnknownAccountCodeError is returned when a posting recipe references an
// account code that has no matching account for the business.
type UnknownAccountCodeError struct {
	BusinessID  string
	AccountCode string
}

func (e *UnknownAccountCodeError) Error() string {
	return fmt.Sprintf("unknown account code %q for business %s", e.AccountCode, e.BusinessID)
}

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message suitable for the caller.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
