// Package montgomery implements Montgomery reduction (REDC) and the
// modular exponentiation built on top of it. A Ctx is precomputed once
// from an odd modulus n and is immutable and safe to share read-only
// across goroutines thereafter.
//
// REDC, ToForm/FromForm, MulMod, and ExpMod are expressed here in terms
// of bigint's carry-propagating primitives (Add, MulAddWord, the
// shifts) rather than a hand-rolled raw-limb accumulation loop: adding
// m*n to the accumulator starting at limb i, tracking a carry past
// index i+k, is exactly what bigint.Add composed with a limb-aligned
// bigint.ShiftLeft already does, since Go's uint32 multiplication wraps
// mod 2^32 the same way the single-limb m computation requires.
package montgomery

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// Ctx holds the parameters precomputed once for one odd modulus n: the
// modulus itself, its limb count k, the word inverse n', and R^2 mod n.
type Ctx struct {
	N        bigint.Uint
	K        int // used(n), the limb count of the modulus
	NPrime   uint32
	RSquared bigint.Uint
	Active   bool
}

// Build constructs a Ctx from an odd, non-zero modulus n. Fails with
// rsaerr.ZeroModulus if n is zero, rsaerr.EvenModulus if n is even, and
// rsaerr.Overflow if the modulus is too wide for the working room REDC
// needs (2*k+1 limbs must fit in bigint.Cap).
func Build(n bigint.Uint) (*Ctx, error) {
	if n.IsZero() {
		return nil, rsaerr.New("montgomery.Build", rsaerr.ZeroModulus)
	}
	if n.Bit(0) == 0 {
		return nil, rsaerr.New("montgomery.Build", rsaerr.EvenModulus)
	}
	k := n.Used()
	if 2*k+1 > bigint.Cap {
		return nil, rsaerr.New("montgomery.Build", rsaerr.Overflow)
	}

	nPrime, err := wordInverse(n.Limb(0))
	if err != nil {
		return nil, err
	}

	pow2, err := bigint.ShiftLeft(bigint.FromU32(1), 32*k)
	if err != nil {
		return nil, rsaerr.Wrap("montgomery.Build", rsaerr.InternalInvariantBroken, err)
	}
	rModN, err := bigint.Mod(pow2, n)
	if err != nil {
		return nil, err
	}
	rr, err := bigint.Mul(rModN, rModN)
	if err != nil {
		return nil, rsaerr.Wrap("montgomery.Build", rsaerr.InternalInvariantBroken, err)
	}
	rSquared, err := bigint.Mod(rr, n)
	if err != nil {
		return nil, err
	}

	return &Ctx{
		N:        n,
		K:        k,
		NPrime:   nPrime,
		RSquared: rSquared,
		Active:   true,
	}, nil
}

// wordInverse computes n' = (-n0^-1) mod 2^32 via five Hensel-lifting
// iterations x <- x*(2 - n0*x), enough to converge for any odd 32-bit
// value.
func wordInverse(n0 uint32) (uint32, error) {
	x := n0
	for i := 0; i < 5; i++ {
		x = x * (2 - n0*x)
	}
	if n0*x != 1 {
		return 0, rsaerr.New("montgomery.wordInverse", rsaerr.InternalInvariantBroken)
	}
	nPrime := ^x + 1 // two's-complement negation mod 2^32
	if n0*nPrime != 0xffffffff {
		return 0, rsaerr.New("montgomery.wordInverse", rsaerr.InternalInvariantBroken)
	}
	return nPrime, nil
}

// REDC computes T*R^-1 mod n for a context's modulus n and radix R =
// 2^(32*k). Precondition: 0 <= T < n*R.
func REDC(t bigint.Uint, ctx *Ctx) (bigint.Uint, error) {
	if ctx == nil || !ctx.Active {
		return bigint.Uint{}, rsaerr.New("montgomery.REDC", rsaerr.InternalInvariantBroken)
	}
	a := t
	for i := 0; i < ctx.K; i++ {
		ai := a.Limb(i)
		m := ai * ctx.NPrime // wraps mod 2^32, as required

		mn, err := bigint.MulAddWord(ctx.N, m, 0)
		if err != nil {
			return bigint.Uint{}, rsaerr.Wrap("montgomery.REDC", rsaerr.InternalInvariantBroken, err)
		}
		shifted, err := bigint.ShiftLeft(mn, 32*i)
		if err != nil {
			return bigint.Uint{}, rsaerr.Wrap("montgomery.REDC", rsaerr.InternalInvariantBroken, err)
		}
		a, err = bigint.Add(a, shifted)
		if err != nil {
			return bigint.Uint{}, rsaerr.Wrap("montgomery.REDC", rsaerr.InternalInvariantBroken, err)
		}
	}
	a = bigint.ShiftRight(a, 32*ctx.K)
	if bigint.Compare(a, ctx.N) != bigint.Less {
		reduced, err := bigint.Sub(a, ctx.N)
		if err != nil {
			return bigint.Uint{}, rsaerr.Wrap("montgomery.REDC", rsaerr.InternalInvariantBroken, err)
		}
		a = reduced
	}
	if bigint.Compare(a, ctx.N) != bigint.Less {
		return bigint.Uint{}, rsaerr.New("montgomery.REDC", rsaerr.InternalInvariantBroken)
	}
	return a, nil
}

// ToForm converts a into Montgomery form: a*R mod n. Inputs a >= n are
// reduced first rather than relying on REDC's domain assumption.
func ToForm(a bigint.Uint, ctx *Ctx) (bigint.Uint, error) {
	reduced := a
	if bigint.Compare(a, ctx.N) != bigint.Less {
		r, err := bigint.Mod(a, ctx.N)
		if err != nil {
			return bigint.Uint{}, err
		}
		reduced = r
	}
	prod, err := bigint.Mul(reduced, ctx.RSquared)
	if err != nil {
		return bigint.Uint{}, rsaerr.Wrap("montgomery.ToForm", rsaerr.InternalInvariantBroken, err)
	}
	return REDC(prod, ctx)
}

// FromForm converts a out of Montgomery form: a*R^-1 mod n. Inputs a >= n
// are reduced first, matching ToForm's policy.
func FromForm(a bigint.Uint, ctx *Ctx) (bigint.Uint, error) {
	reduced := a
	if bigint.Compare(a, ctx.N) != bigint.Less {
		r, err := bigint.Mod(a, ctx.N)
		if err != nil {
			return bigint.Uint{}, err
		}
		reduced = r
	}
	return REDC(reduced, ctx)
}

// MulMod computes a Montgomery-form product: redc(a*b). Both operands must
// already be in Montgomery form; the result is too.
func MulMod(a, b bigint.Uint, ctx *Ctx) (bigint.Uint, error) {
	prod, err := bigint.Mul(a, b)
	if err != nil {
		return bigint.Uint{}, err
	}
	return REDC(prod, ctx)
}

// ExpMod computes base^exp mod n via Montgomery multiplication.
func ExpMod(base, exp bigint.Uint, ctx *Ctx) (bigint.Uint, error) {
	if ctx == nil || !ctx.Active {
		return bigint.Uint{}, rsaerr.New("montgomery.ExpMod", rsaerr.InternalInvariantBroken)
	}
	if exp.IsZero() {
		return bigint.FromU32(1), nil
	}
	if base.IsZero() {
		return bigint.Zero(), nil
	}

	bTilde, err := ToForm(base, ctx)
	if err != nil {
		return bigint.Uint{}, err
	}

	// exp is normalized, so its most-significant bit is always 1: the
	// first iteration of the left-to-right scan would square r~=1 (a
	// no-op) and then multiply by b~, so initialize r~ = b~ directly and
	// scan the remaining bits.
	rTilde := bTilde
	n := exp.BitLen()
	for i := n - 2; i >= 0; i-- {
		rTilde, err = MulMod(rTilde, rTilde, ctx)
		if err != nil {
			return bigint.Uint{}, err
		}
		if exp.Bit(i) == 1 {
			rTilde, err = MulMod(rTilde, bTilde, ctx)
			if err != nil {
				return bigint.Uint{}, err
			}
		}
	}

	result, err := FromForm(rTilde, ctx)
	if err != nil {
		return bigint.Uint{}, err
	}
	if bigint.Compare(result, ctx.N) != bigint.Less {
		result, err = bigint.Mod(result, ctx.N)
		if err != nil {
			return bigint.Uint{}, err
		}
	}
	return result, nil
}
