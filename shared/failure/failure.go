package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of failure a service can report. Use errors.Is to match them.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnknown          = errors.New("unknown error")
)

const MessageUnexpected = "An unexpected error occurred!"

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
	Err      error    `json:"-"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// Details returns the message list when more than one message is present, otherwise the single message.
func (e *Failure) Details() any {
	if len(e.Messages) > 1 {
		return e.Messages
	}

	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request carrying every field violation found.
func Validation(messages []string) error {
	msg := ErrValidation.Error()
	if len(messages) > 0 {
		msg = messages[0]
	}

	return &Failure{
		Code:     http.StatusBadRequest,
		Message:  msg,
		Messages: messages,
		Err:      ErrValidation,
	}
}

// InvalidID reports a malformed identifier.
func InvalidID(id string) error {
	msg := "The ID must not be empty."
	if id != "" {
		msg = fmt.Sprintf("The ID #%s is invalid.", id)
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Err:     ErrInvalidID,
	}
}

// InvalidParameter reports a malformed query parameter by name.
func InvalidParameter(parameter string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("The parameter %q is invalid.", parameter),
		Err:     ErrInvalidParameter,
	}
}

func GuestNotFound(id string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Could not find the guest with ID #%s.", id),
		Err:     ErrGuestNotFound,
	}
}

func BookingNotFound(id string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Could not find the booking with ID #%s.", id),
		Err:     ErrBookingNotFound,
	}
}

// Unknown returns the catch-all internal failure.
func Unknown() error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: MessageUnexpected,
		Err:     ErrUnknown,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Err:     err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsExpected reports whether err is a Failure raised on purpose by the application.
func IsExpected(err error) bool {
	var fail *Failure
	if !errors.As(err, &fail) {
		return false
	}

	return fail.Code < http.StatusInternalServerError
}
