package db

import "errors"

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func (e *DuplicateKeyError) Is(err error) bool {
	_, ok := err.(*DuplicateKeyError)
	return ok
}

func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, &DuplicateKeyError{})
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, &NotFoundError{})
}

// InsufficientFundsError is returned when a vault or the reward pool cannot
// cover a requested withdrawal; the whole operation aborts, nothing is paid.
type InsufficientFundsError struct {
	Message string
}

func (e *InsufficientFundsError) Error() string {
	return e.Message
}

func (e *InsufficientFundsError) Is(err error) bool {
	_, ok := err.(*InsufficientFundsError)
	return ok
}

func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, &InsufficientFundsError{})
}
