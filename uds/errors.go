package uds

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the codecs in this package wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	ErrInvalidDataLength = errors.New("uds: invalid data length")
	ErrInvalidParam      = errors.New("uds: invalid parameter")
	ErrSubFunction       = errors.New("uds: sub-function error")
	ErrService           = errors.New("uds: service error")
)

// DataLengthError describes a payload which is shorter or longer than
// required.
type DataLengthError struct {
	// Expect is the required (minimum or exact) length.
	Expect int

	// Actual is the length found.
	Actual int
}

// Error implements error.
func (e *DataLengthError) Error() string {
	return fmt.Sprintf("%s: expect %d, actual %d",
		ErrInvalidDataLength, e.Expect, e.Actual)
}

// Unwrap returns ErrInvalidDataLength.
func (e *DataLengthError) Unwrap() error {
	return ErrInvalidDataLength
}

// ParamError describes a field of valid length holding an invalid value.
type ParamError struct {
	// Msg describes the offending value.
	Msg string
}

// paramErrorf returns a new ParamError with a formatted message.
func paramErrorf(format string, args ...interface{}) *ParamError {
	return &ParamError{Msg: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidParam, e.Msg)
}

// Unwrap returns ErrInvalidParam.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}

// SubFunctionError is returned when a service requires a sub-function byte
// and none was given, or when one was given to a service without
// sub-functions.
type SubFunctionError struct {
	// Service is the service in question.
	Service Service
}

// Error implements error.
func (e *SubFunctionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSubFunction, e.Service)
}

// Unwrap returns ErrSubFunction.
func (e *SubFunctionError) Unwrap() error {
	return ErrSubFunction
}

// ServiceError is returned when a request is handed to a codec for a
// different service, or lacks the sub-function its service requires.
type ServiceError struct {
	// Service is the service found in the request.
	Service Service
}

// Error implements error.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrService, e.Service)
}

// Unwrap returns ErrService.
func (e *ServiceError) Unwrap() error {
	return ErrService
}
