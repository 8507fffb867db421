// Package errors is the one import infrastructure code needs for errors: the
// standard library's inspection helpers, plus pkg/errors constructors that
// record a stack trace where the error is created.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection and aggregation come straight from the standard library.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// New returns an error with the given text and the caller's stack.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf is New with formatting.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap prefixes err with message and records a stack. It returns nil if err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records a stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
