// Package rsaerr defines the error taxonomy shared by every component of
// this module: bigint, codec, schoolbook, montgomery, modinv, expselect,
// and rsa. Every error returned across a component boundary is a *Error
// wrapped with github.com/pkg/errors so it carries a stack trace back to
// its point of origin.
package rsaerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the taxonomy of failures a caller may want to branch
// on. Kinds are distinct from any Go stdlib error type.
type Kind string

const (
	// BadFormat means a codec could not parse its input.
	BadFormat Kind = "bad_format"
	// BufferTooSmall means an output buffer was shorter than required;
	// Error.Needed reports the size that would have sufficed.
	BufferTooSmall Kind = "buffer_too_small"
	// Overflow means an arithmetic result would exceed bigint.Cap limbs.
	Overflow Kind = "overflow"
	// Underflow means a subtraction a-b was attempted with a < b.
	Underflow Kind = "underflow"
	// DivisionByZero means a divisor or modulus was zero.
	DivisionByZero Kind = "division_by_zero"
	// ZeroOperand means an inverse was requested for a zero operand.
	ZeroOperand Kind = "zero_operand"
	// NoInverse means gcd(a, m) != 1 during an inverse computation.
	NoInverse Kind = "no_inverse"
	// EvenModulus means a Montgomery context was built over an even modulus.
	EvenModulus Kind = "even_modulus"
	// ZeroModulus means a Montgomery context was built over a zero modulus.
	ZeroModulus Kind = "zero_modulus"
	// DomainError means an input was out of the required range for an
	// operation (e.g. m >= n in RSA encrypt).
	DomainError Kind = "domain_error"
	// InternalInvariantBroken means a REDC, normalization, or bound
	// invariant was violated. Always fatal; never expected in correct code.
	InternalInvariantBroken Kind = "internal_invariant_broken"
)

// Error is the concrete error type carried by every Kind above.
type Error struct {
	Kind   Kind
	Op     string
	Needed int // populated only for BufferTooSmall
	cause  error
}

func (e *Error) Error() string {
	if e.Kind == BufferTooSmall {
		return fmt.Sprintf("%s: %s (needed %d bytes)", e.Op, e.Kind, e.Needed)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap exposes any wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds a stack-traced error of the given kind, originating at op.
func New(op string, kind Kind) error {
	return errors.WithStack(&Error{Op: op, Kind: kind})
}

// Wrap attaches op/kind to an existing cause, preserving it under Unwrap.
func Wrap(op string, kind Kind, cause error) error {
	return errors.WithStack(&Error{Op: op, Kind: kind, cause: cause})
}

// NewBufferTooSmall builds a BufferTooSmall error reporting the byte count
// that would have been sufficient.
func NewBufferTooSmall(op string, needed int) error {
	return errors.WithStack(&Error{Op: op, Kind: BufferTooSmall, Needed: needed})
}

// KindOf reports the Kind carried by err, if any in its chain is a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err's chain carries the given Kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
