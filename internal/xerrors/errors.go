// Package xerrors defines the error taxonomy of the transit catalogue: the
// kinds of failure the system can encounter, and whether each is fatal to
// the whole run or scoped to a single query.
package xerrors

import "fmt"

// Kind is one of the five error kinds the system distinguishes.
type Kind int

const (
	// InputParseError: malformed input document. Fatal.
	InputParseError Kind = iota
	// SchemaError: well-formed input missing required fields or with
	// wrong value shapes. Fatal.
	SchemaError
	// UnknownReference: a stat request names an unknown stop/route.
	// Non-fatal; folds into that request's error_message.
	UnknownReference
	// UnreachableRoute: router found no path. Non-fatal.
	UnreachableRoute
	// BuilderMisuse: JSON builder contract violation. Fatal programmer
	// error.
	BuilderMisuse
)

func (k Kind) String() string {
	switch k {
	case InputParseError:
		return "InputParseError"
	case SchemaError:
		return "SchemaError"
	case UnknownReference:
		return "UnknownReference"
	case UnreachableRoute:
		return "UnreachableRoute"
	case BuilderMisuse:
		return "BuilderMisuse"
	default:
		return "UnknownErrorKind"
	}
}

// Error is a typed error carrying one of the Kind values above.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Fatal reports whether an error of this kind terminates the whole run
// rather than being contained to a single query's answer.
func (k Kind) Fatal() bool {
	switch k {
	case InputParseError, SchemaError, BuilderMisuse:
		return true
	default:
		return false
	}
}

// New constructs an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
