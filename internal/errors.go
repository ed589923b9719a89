package internal

import "fmt"

// BaseError is a sentinel for constructor and parameter checks
type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

const (
	ErrMissingParam BaseError = "missing parameter"
	ErrInvalidParam BaseError = "invalid parameter"
)

// ErrorWrapper pairs a sentinel with the name of the offending parameter
type ErrorWrapper struct {
	Err     error
	Message string
}

func (e *ErrorWrapper) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ErrorWrapper) Unwrap() error {
	return e.Err
}

// NewMissingParamError reports a required parameter that was not set
func NewMissingParamError(param string) error {
	return &ErrorWrapper{
		Err:     ErrMissingParam,
		Message: param,
	}
}

// NewInvalidParamError reports a parameter that was set to an unusable value
func NewInvalidParamError(msg string) error {
	return &ErrorWrapper{
		Err:     ErrInvalidParam,
		Message: msg,
	}
}
