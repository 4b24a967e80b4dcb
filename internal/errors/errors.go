// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors wrapping, so stack traces survive from the solver and storage
// layers up to the HTTP error handler.
package errors

import (
	stderrors "errors"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error wrapping every non-nil err, or nil.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// CloseAfter closes c and combines its error with err, the result of the
// work done on c. A file that fails to flush on close is as broken as one
// that failed to write.
func CloseAfter(c io.Closer, err error, message string) error {
	return Wrap(Join(err, c.Close()), message)
}
