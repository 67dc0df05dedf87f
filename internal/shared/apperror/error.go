package apperror

import "fmt"

// AppError pairs a stable machine code with the message and HTTP status
// clients see. Handlers never build status codes themselves; they map
// whatever the service returned through ToHTTP.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // underlying cause, may be nil
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap keeps errors.Is and errors.As working through the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap annotates err with a code, message and status while leaving it
// reachable for errors.Is. Returns nil when err is nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
