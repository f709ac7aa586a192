// Package errors wraps stdlib errors and pkg/errors behind one import and
// classifies failures for redelivery.
package errors

import (
	stderrors "errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// statusCoder is satisfied by application errors that map to an HTTP status.
type statusCoder interface {
	HTTPCode() int
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Permanent reports whether err carries a client error status, meaning the
// same input will fail again. Request timeouts and rate limits clear up on
// their own and are not permanent. Errors without a status are assumed
// transient.
func Permanent(err error) bool {
	if err == nil {
		return false
	}

	var coded statusCoder
	if !stderrors.As(err, &coded) {
		return false
	}

	switch code := coded.HTTPCode(); code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	default:
		return code >= http.StatusBadRequest && code < http.StatusInternalServerError
	}
}

// Retryable reports whether retrying the operation that produced err could
// succeed.
func Retryable(err error) bool {
	return err != nil && !Permanent(err)
}
