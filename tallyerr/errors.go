// Package tallyerr provides the small sentinel-error/typed-message
// contract used across this repository: a handful of broad error kinds
// (ErrInvalid, ErrInternal, ErrFatal) that callers compare against with
// errors.Is, wrapped with a human-readable message via MessageError and
// MessageErrorf.
//
// The shape mirrors the MessageError(kind, format, ...)/ErrInvalid
// contract used pervasively by the teacher service at every validation
// call site, whose own definition lives in its external datastore
// dependency and isn't part of this codebase.
package tallyerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Compare with errors.Is.
var (
	// ErrInvalid marks a ballot or input that is malformed but
	// recoverable: the item is discarded and the run continues.
	ErrInvalid = errors.New("invalid")
	// ErrInternal marks a configuration or programming error: fatal.
	ErrInternal = errors.New("internal")
	// ErrFatal marks an unrecoverable input error (I/O or CSV framing
	// failure): the run aborts.
	ErrFatal = errors.New("fatal")
)

// messageError wraps one of the sentinel kinds with a formatted message.
type messageError struct {
	kind error
	msg  string
}

// MessageError returns an error of the given kind carrying msg.
func MessageError(kind error, msg string) error {
	return messageError{kind: kind, msg: msg}
}

// MessageErrorf returns an error of the given kind carrying a formatted
// message.
func MessageErrorf(kind error, format string, args ...any) error {
	return messageError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e messageError) Error() string {
	return e.msg
}

func (e messageError) Unwrap() error {
	return e.kind
}

// Type returns a short string naming the error's kind, for logging and
// for error responses.
func (e messageError) Type() string {
	switch {
	case errors.Is(e.kind, ErrInvalid):
		return "invalid"
	case errors.Is(e.kind, ErrFatal):
		return "fatal"
	default:
		return "internal"
	}
}
