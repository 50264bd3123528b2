// Package expselect picks between Montgomery and schoolbook modular
// exponentiation for a given call, and transparently falls back to
// schoolbook if Montgomery fails at runtime.
package expselect

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/montgomery"
	"github.com/blck-snwmn/rsa4096/rsaerr"
	"github.com/blck-snwmn/rsa4096/schoolbook"
	"go.uber.org/zap"
)

// montgomeryMinBits is the modulus bit length below which Montgomery's
// setup cost dominates and schoolbook is chosen instead.
const montgomeryMinBits = 512

// Algorithm identifies which engine a call was routed to, for callers
// (the CLI's "algorithms" subcommand) that want to inspect the decision
// without re-deriving it.
type Algorithm int

const (
	// Schoolbook is the square-and-multiply / sliding-window engine.
	Schoolbook Algorithm = iota
	// Montgomery is the REDC-based engine.
	Montgomery
)

func (a Algorithm) String() string {
	if a == Montgomery {
		return "montgomery"
	}
	return "schoolbook"
}

// Choose reports which algorithm ModExp would use for the given modulus
// and optional context, without performing any exponentiation. It runs
// the selection policy in isolation so the CLI's "algorithms"
// subcommand can report it.
func Choose(n bigint.Uint, mont *montgomery.Ctx) Algorithm {
	if mont == nil || !mont.Active || n.Bit(0) == 0 {
		return Schoolbook
	}
	if n.BitLen() < montgomeryMinBits {
		return Schoolbook
	}
	return Montgomery
}

// ModExp computes base^exp mod n, routing to Montgomery when mont is
// active, the modulus is odd, and the modulus is at least
// montgomeryMinBits wide; otherwise to schoolbook. If Montgomery fails at
// runtime with a retryable error, it retries once with schoolbook on the
// original inputs; if schoolbook also fails, the original Montgomery error
// is returned rather than schoolbook's. A logger may be nil; when present,
// a Montgomery-to-schoolbook downgrade is recorded at Warn level as a
// transparent, non-correctness-path event.
func ModExp(base, exp, n bigint.Uint, mont *montgomery.Ctx, logger *zap.SugaredLogger) (bigint.Uint, error) {
	if Choose(n, mont) == Montgomery {
		result, montErr := montgomery.ExpMod(base, exp, mont)
		if montErr == nil {
			return finalize(result, n)
		}
		if !isRetryable(montErr) {
			return bigint.Uint{}, montErr
		}
		if logger != nil {
			logger.Warnw("montgomery modexp failed, falling back to schoolbook",
				"error", montErr, "modulus_bits", n.BitLen())
		}

		result, err := schoolbook.ModExp(base, exp, n)
		if err != nil {
			return bigint.Uint{}, montErr
		}
		return finalize(result, n)
	}

	result, err := schoolbook.ModExp(base, exp, n)
	if err != nil {
		return bigint.Uint{}, err
	}
	return finalize(result, n)
}

// isRetryable reports whether a Montgomery failure should trigger a
// schoolbook retry: Overflow and InternalInvariantBroken from
// Montgomery may be caught and retried; every other error (e.g. a zero
// modulus, which schoolbook would also reject) propagates unchanged.
func isRetryable(err error) bool {
	kind, ok := rsaerr.KindOf(err)
	if !ok {
		return false
	}
	return kind == rsaerr.Overflow || kind == rsaerr.InternalInvariantBroken
}

// finalize enforces the postcondition that every ModExp result satisfies
// result < n, reducing once more if a caller-visible result somehow failed
// to.
func finalize(result, n bigint.Uint) (bigint.Uint, error) {
	if bigint.Compare(result, n) == bigint.Less {
		return result, nil
	}
	return bigint.Mod(result, n)
}
