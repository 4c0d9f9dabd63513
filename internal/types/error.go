package types

import (
	"errors"
	"net/http"
)

type ApplicationErrorCode string

const (
	// 5XX
	InternalServiceError ApplicationErrorCode = "INTERNAL_SERVICE_ERROR"
	// 4XX
	ValidationError     ApplicationErrorCode = "VALIDATION_ERROR"
	NotFound            ApplicationErrorCode = "NOT_FOUND"
	BadRequest          ApplicationErrorCode = "BAD_REQUEST"
	Forbidden           ApplicationErrorCode = "FORBIDDEN"
	Unauthorized        ApplicationErrorCode = "UNAUTHORIZED"
	Conflict            ApplicationErrorCode = "CONFLICT"
	UnprocessableEntity ApplicationErrorCode = "UNPROCESSABLE_ENTITY"
	InsufficientFunds   ApplicationErrorCode = "INSUFFICIENT_FUNDS"
)

// Error wraps an application error with the HTTP status it should be
// rendered as. Precondition violations map to 4XX codes so that callers can
// correct the request and resubmit; anything unexpected is a 500.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ApplicationErrorCode
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.ErrorCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ApplicationErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ApplicationErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
