package uri

import (
	"fmt"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
)

// Error represents a URI engine error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	ErrEmptyInput      = grammar.ErrEmptyInput
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

const (
	ErrInvalidScheme      Error = "invalid scheme"
	ErrInvalidHost        Error = "invalid host"
	ErrInvalidPort        Error = "invalid port"
	ErrRelativeNotAllowed Error = "relative URI not allowed"
	ErrInvalidReference   Error = "invalid reference"
	ErrNoBaseAuthority    Error = "base URI has no authority"
)

// ParseError is returned by the parser.
// Err is one of the parse sentinel errors, possibly wrapped with details.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolveError is returned by the resolver.
// Err is [ErrInvalidReference] or [ErrNoBaseAuthority], an invalid absolute reference
// additionally carries the [*ParseError] of the reference.
type ResolveError struct {
	Base      URI
	Reference string
	Err       error
}

func (e *ResolveError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("resolve %q against %q: %v", e.Reference, e.Base.String(), e.Err)
}

func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newParseError(input string, err error) error {
	return &ParseError{Input: input, Err: err} //errtrace:skip
}
