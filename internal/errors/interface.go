package errors

// ErrorCode identifies an error kind. Fatal startup failures and degraded
// collector reads are told apart by code, not by message.
type ErrorCode string

// Coded is satisfied by any error that carries an ErrorCode
type Coded interface {
	error
	Code() ErrorCode
}

// Error is a coded error that may wrap a cause
type Error interface {
	Coded
	Unwrap() error
}

// Factory creates coded errors
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
