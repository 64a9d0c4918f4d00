package aiops

import (
	"fmt"
	"net/http"
)

// Error is a request-level failure with a short client-facing message.
// Internal detail stays in Err and is only logged, never sent to the client.
type Error struct {
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MalformedRequest means the request body could not be parsed into the
// {type, data} envelope.
func MalformedRequest(err error) *Error {
	return &Error{
		Message:    "Malformed request body",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// InvalidRequestType means the type discriminator is not a supported
// operation.
func InvalidRequestType(opType string) *Error {
	return &Error{
		Message:    "Invalid request type",
		HTTPStatus: http.StatusBadRequest,
		Err:        fmt.Errorf("unsupported operation %q", opType),
	}
}

// MissingField means a handler precondition was unmet: a required input
// field was absent. Raised before any prompt is built or upstream call made.
func MissingField(name string) *Error {
	return &Error{
		Message:    "Missing required field: " + name,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal wraps upstream and handler failures. The client sees a generic
// message only.
func Internal(err error) *Error {
	return &Error{
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
