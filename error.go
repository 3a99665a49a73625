package extractcss

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("extractcss error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
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
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// StatusError is returned when the main document of a page responds with
// an HTTP status outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error reports the URL together with the numeric status and its reason phrase.
func (e *StatusError) Error() string {
	return fmt.Sprintf("There was an error retrieving CSS from %s.\n\tHTTP status code: %d (%s)",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// CheckStatus returns a *StatusError when code is not a 2xx status.
func CheckStatus(url string, code int) error {
	if code >= 200 && code <= 299 {
		return nil
	}
	return &StatusError{URL: url, StatusCode: code}
}
