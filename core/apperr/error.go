package apperr

import (
	"errors"
	"fmt"
)

// Error is a taxonomy member. It carries only what is needed to report it:
// a custom message for Custom, and the underlying cause for kinds that wrap
// one (Image, Validation, FormRejection, Internal).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Message()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so wrapped errors match the package sentinels:
//
//	errors.Is(err, apperr.ErrNotFound)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Payload-free taxonomy members.
var (
	ErrCaptcha         = New(Captcha)
	ErrNameExists      = New(NameExists)
	ErrInnCreateLimit  = New(InnCreateLimit)
	ErrUsernameInvalid = New(UsernameInvalid)
	ErrWrongPassword   = New(WrongPassword)
	ErrLocked          = New(Locked)
	ErrHidden          = New(Hidden)
	ErrReadOnly        = New(ReadOnly)
	ErrNoJoinedInn     = New(NoJoinedInn)
	ErrNotFound        = New(NotFound)
	ErrWriteInterval   = New(WriteInterval)
	ErrNonLogin        = New(NonLogin)
	ErrUnauthorized    = New(Unauthorized)
	ErrBanned          = New(Banned)
)

// New creates an error of the given kind without payload.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap creates an error of the given kind wrapping cause.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// Customf creates a Custom error with a formatted message.
func Customf(format string, args ...any) *Error {
	return &Error{Kind: Custom, Message: fmt.Sprintf(format, args...)}
}

// ImageError wraps an image decoding or processing failure.
func ImageError(cause error) *Error {
	return Wrap(Image, cause)
}

// ValidationError wraps the violations reported by a validator.
func ValidationError(violations error) *Error {
	return Wrap(Validation, violations)
}

// FormRejectionError wraps a request body decode failure.
func FormRejectionError(cause error) *Error {
	return Wrap(FormRejection, cause)
}

// InternalError wraps an unclassified failure.
func InternalError(cause error) *Error {
	return Wrap(Internal, cause)
}

// As extracts the taxonomy member from err. Errors outside the taxonomy are
// reported as Internal wrapping the original error.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return InternalError(err)
}

// KindOf returns the kind of err, Internal for errors outside the taxonomy.
func KindOf(err error) Kind {
	if e := As(err); e != nil {
		return e.Kind
	}
	return Internal
}
