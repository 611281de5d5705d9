package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string
	Details any
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// WithDetails attaches structured information (for example a list of invalid fields) which is
// rendered along with the message.
func (e Error) WithDetails(details any) Error {
	e.Details = details
	return e
}

// From returns the Error wrapped in err, or Unknown if err is not an Error.
func From(err error) Error {
	var errx Error
	if errors.As(err, &errx) {
		return errx
	}

	return Unknown
}

// FieldError describes a violation of a request field, it is used as Details of BadRequest
// errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
