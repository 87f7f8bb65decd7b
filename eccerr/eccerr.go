// Package eccerr defines the error taxonomy shared by every layer of the
// engine: parse failures, an unrecognized curve name, arithmetic faults
// (inverse of zero, a degenerate r or s), and verify preconditions.
package eccerr

import (
	"github.com/pkg/errors"
)

// Kind identifies which of the four taxonomy buckets an error belongs to.
type Kind int

const (
	// KindParse marks an ill-formed decimal or hex input.
	KindParse Kind = iota
	// KindUnknownCurve marks a curve name absent from the catalogue.
	KindUnknownCurve
	// KindArithmetic marks a zero inverse, or a zero r/s during sign/verify.
	KindArithmetic
	// KindPrecondition marks an out-of-range r or s passed to Verify.
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindUnknownCurve:
		return "UnknownCurveError"
	case KindArithmetic:
		return "ArithmeticError"
	case KindPrecondition:
		return "PreconditionError"
	default:
		return "UnknownError"
	}
}

// ErrParse, ErrUnknownCurve, ErrArithmetic and ErrPrecondition are the
// sentinels callers compare against with errors.Is. Wrap attaches context
// while keeping the sentinel recoverable.
var (
	ErrParse        = errors.New("eccerr: parse error")
	ErrUnknownCurve = errors.New("eccerr: unknown curve")
	ErrArithmetic   = errors.New("eccerr: arithmetic error")
	ErrPrecondition = errors.New("eccerr: precondition violated")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindParse:
		return ErrParse
	case KindUnknownCurve:
		return ErrUnknownCurve
	case KindArithmetic:
		return ErrArithmetic
	case KindPrecondition:
		return ErrPrecondition
	default:
		return errors.New("eccerr: unknown kind")
	}
}

// Wrap builds an error of the given kind carrying a formatted message,
// still satisfying errors.Is against the kind's sentinel.
func Wrap(k Kind, format string, args ...interface{}) error {
	return errors.Wrapf(sentinelFor(k), format, args...)
}

// Is reports whether err was produced by Wrap for the given kind.
func Is(err error, k Kind) bool {
	return errors.Is(err, sentinelFor(k))
}
