package pagetext

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	EFETCH    = "fetch"
	EEXTRACT  = "extract"
	EINTERNAL = "internal"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagetext error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// StatusCode maps an error to the HTTP status adapters respond with.
// Only invalid input is the caller's fault.
func StatusCode(err error) int {
	if ErrorCode(err) == EINVALID {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ResponseMessage returns the text adapters place in the "error" field of
// the response body for err.
func ResponseMessage(err error) string {
	if ErrorCode(err) == EINVALID {
		return ErrorMessage(err)
	}
	return "Error extracting content: " + ErrorMessage(err)
}
