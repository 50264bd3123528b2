// Package modinv computes modular inverses over bigint.Uint via the
// extended Euclidean algorithm. bigint.Uint is unsigned, so the Bezout
// coefficient that tracks a^-1 is carried as a sign-tagged pair
// (magnitude, sign) instead of a signed integer.
package modinv

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// smallModulusLimit is the threshold at or below which a single-limb
// modulus makes InvMod use a trial-search
// fast path instead of the extended Euclidean algorithm.
const smallModulusLimit = 10000

// InvMod computes a^-1 mod m for gcd(a, m) == 1. Fails with
// rsaerr.ZeroOperand if a or m is zero, and rsaerr.NoInverse if
// gcd(a, m) != 1. The result always lies in [1, m).
func InvMod(a, m bigint.Uint) (bigint.Uint, error) {
	if a.IsZero() || m.IsZero() {
		return bigint.Uint{}, rsaerr.New("modinv.InvMod", rsaerr.ZeroOperand)
	}
	if m.Used() == 1 && m.Limb(0) <= smallModulusLimit {
		return invModSmall(a, m)
	}
	return invModExtendedGCD(a, m)
}

// invModSmall handles moduli that fit in a single limb and are small
// enough for a linear trial search to be instant.
func invModSmall(a, m bigint.Uint) (bigint.Uint, error) {
	mod, err := bigint.Mod(a, m)
	if err != nil {
		return bigint.Uint{}, err
	}
	mv := m.Limb(0)
	av := uint32(0)
	if mod.Used() > 0 {
		av = mod.Limb(0)
	}
	if av == 0 {
		return bigint.Uint{}, rsaerr.New("modinv.InvMod", rsaerr.NoInverse)
	}
	for x := uint32(1); x < mv; x++ {
		if (uint64(av) * uint64(x)) % uint64(mv) == 1 {
			return bigint.FromU32(x), nil
		}
	}
	return bigint.Uint{}, rsaerr.New("modinv.InvMod", rsaerr.NoInverse)
}

// signedCoeff is a sign-tagged bigint.Uint: the Bezout coefficient tracks
// over the course of the algorithm whenever it would otherwise have gone
// negative.
type signedCoeff struct {
	mag bigint.Uint
	neg bool
}

func fromUint(v bigint.Uint) signedCoeff { return signedCoeff{mag: v} }

// sub computes a-b over signed magnitudes.
func sub(a, b signedCoeff) (signedCoeff, error) {
	if a.neg == b.neg {
		if bigint.Compare(a.mag, b.mag) != bigint.Less {
			d, err := bigint.Sub(a.mag, b.mag)
			return signedCoeff{mag: d, neg: a.neg}, err
		}
		d, err := bigint.Sub(b.mag, a.mag)
		return signedCoeff{mag: d, neg: !a.neg}, err
	}
	sum, err := bigint.Add(a.mag, b.mag)
	return signedCoeff{mag: sum, neg: a.neg}, err
}

// mul computes q*b over a signed magnitude, where q is an unsigned
// quotient produced by bigint.DivMod.
func mul(q, b signedCoeff) (signedCoeff, error) {
	p, err := bigint.Mul(q.mag, b.mag)
	return signedCoeff{mag: p, neg: q.neg != b.neg}, err
}

// reduce folds a signed coefficient into [0, m): a non-negative one is
// reduced modulo m; a negative one has its magnitude reduced modulo m and
// that remainder subtracted from m (zero stays zero).
func reduce(c signedCoeff, m bigint.Uint) (bigint.Uint, error) {
	if !c.neg {
		return bigint.Mod(c.mag, m)
	}
	r, err := bigint.Mod(c.mag, m)
	if err != nil {
		return bigint.Uint{}, err
	}
	if r.IsZero() {
		return bigint.Zero(), nil
	}
	return bigint.Sub(m, r)
}

// invModExtendedGCD runs the standard extended Euclidean algorithm,
// tracking (old_s, s) as signed coefficients of a. It terminates in
// O(log max(a, m)) steps; no iteration cap is applied.
func invModExtendedGCD(a, m bigint.Uint) (bigint.Uint, error) {
	oldR, err := bigint.Mod(a, m)
	if err != nil {
		return bigint.Uint{}, err
	}
	r := m
	oldS := fromUint(bigint.FromU32(1))
	s := signedCoeff{mag: bigint.Zero()}

	for !r.IsZero() {
		q, rem, err := bigint.DivMod(oldR, r)
		if err != nil {
			return bigint.Uint{}, err
		}
		oldR, r = r, rem

		qs, err := mul(fromUint(q), s)
		if err != nil {
			return bigint.Uint{}, err
		}
		newS, err := sub(oldS, qs)
		if err != nil {
			return bigint.Uint{}, err
		}
		oldS, s = s, newS
	}

	if !oldR.IsOne() {
		return bigint.Uint{}, rsaerr.New("modinv.InvMod", rsaerr.NoInverse)
	}

	result, err := reduce(oldS, m)
	if err != nil {
		return bigint.Uint{}, err
	}
	if result.IsZero() {
		// gcd==1 guarantees a nonzero inverse in [1, m) unless m==1, in
		// which case every residue is congruent to 0 and "the" inverse is
		// conventionally 0 mod 1 — but m==1 has no unit other than 0, so
		// treat it as having no inverse rather than returning 0.
		return bigint.Uint{}, rsaerr.New("modinv.InvMod", rsaerr.NoInverse)
	}
	return result, nil
}
