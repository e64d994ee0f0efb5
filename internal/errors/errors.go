package errors

import (
	"errors"
	"fmt"
)

// Standard library helpers, re-exported so callers need only this package
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// codedError renders as "<message>[: <detail>]", where the message falls
// back to the code's entry in the message table and the detail is the
// attached data or, failing that, the wrapped cause.
type codedError struct {
	code    ErrorCode
	message string
	cause   error
	data    any
}

func (e *codedError) Error() string {
	msg := e.message
	if msg == "" {
		msg = GetErrorMessage(e.code)
	}

	switch {
	case e.data != nil:
		return fmt.Sprintf("%s: %v", msg, e.data)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", msg, e.cause)
	default:
		return msg
	}
}

func (e *codedError) Code() ErrorCode { return e.code }

func (e *codedError) Unwrap() error { return e.cause }

type factory struct{}

func (factory) New(code ErrorCode) Error {
	return &codedError{code: code}
}

func (factory) Wrap(code ErrorCode, err error) Error {
	return &codedError{code: code, cause: err}
}

func (factory) WithMessage(code ErrorCode, msg string) Error {
	return &codedError{code: code, message: msg}
}

func (factory) WithData(code ErrorCode, data any) Error {
	return &codedError{code: code, data: data}
}

// New returns the Factory used throughout the module
func New() Factory {
	return factory{}
}

// HasCode reports whether any error in err's chain carries the given code
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var coded Coded
		if !As(err, &coded) {
			return false
		}
		if coded.Code() == code {
			return true
		}
		err = Unwrap(coded)
	}

	return false
}
