// Package bigint implements a fixed-capacity, non-negative multi-precision
// integer: a little-endian sequence of base-2^32 limbs with a maximum
// capacity of Cap limbs, large enough to hold every intermediate value a
// 4096-bit RSA modular exponentiation produces (including Montgomery's
// T < n*R working values) without ever reallocating.
//
// Every operation either returns a normalized result or a typed error from
// rsaerr; none silently truncate. A Uint is plain value data — callers own
// the copies they hold, and nothing here aliases across calls.
package bigint

import (
	"math/bits"

	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// Cap is the maximum number of 32-bit limbs a Uint may hold: 512 limbs,
// 16,384 bits, chosen so that 2*k+1 limbs plus one guard limb fit for
// any modulus k <= 128 limbs (any modulus up to 4096 bits).
const Cap = 512

// Comparison results returned by Compare.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Uint is a fixed-capacity unsigned multi-precision integer.
type Uint struct {
	limbs [Cap]uint32
	used  int // count of significant low-order limbs; limbs[used:] are zero
}

// Zero returns the zero value.
func Zero() Uint { return Uint{} }

// FromU32 returns the value v as a Uint.
func FromU32(v uint32) Uint {
	if v == 0 {
		return Uint{}
	}
	var u Uint
	u.limbs[0] = v
	u.used = 1
	return u
}

// Clone returns an independent copy of a. Since Uint is plain value data,
// ordinary assignment already copies it; Clone exists to make that copy
// explicit at call sites that care about it.
func (a Uint) Clone() Uint { return a }

// Used reports the number of significant limbs.
func (a Uint) Used() int { return a.used }

// Limb returns the i'th limb (0 above Used()-1).
func (a Uint) Limb(i int) uint32 {
	if i < 0 || i >= Cap {
		return 0
	}
	return a.limbs[i]
}

func normalizeUsed(limbs []uint32, n int) int {
	if n > Cap {
		n = Cap
	}
	if n < 0 {
		n = 0
	}
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return n
}

// IsZero reports whether a is the zero value.
func (a Uint) IsZero() bool { return a.used == 0 }

// IsOne reports whether a equals one.
func (a Uint) IsOne() bool { return a.used == 1 && a.limbs[0] == 1 }

// Compare returns Less, Equal, or Greater comparing a to b lexicographically
// by limb value from the most significant limb down.
func Compare(a, b Uint) int {
	if a.used != b.used {
		if a.used < b.used {
			return Less
		}
		return Greater
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return Less
			}
			return Greater
		}
	}
	return Equal
}

// BitLen returns the position of the highest set bit plus one; zero for a
// zero value.
func (a Uint) BitLen() int {
	if a.used == 0 {
		return 0
	}
	return (a.used-1)*32 + bits.Len32(a.limbs[a.used-1])
}

// Bit returns the i'th bit (0 or 1); zero when i is at or beyond 32*Cap.
func (a Uint) Bit(i int) int {
	if i < 0 || i >= 32*Cap {
		return 0
	}
	limbIdx := i / 32
	if limbIdx >= a.used {
		return 0
	}
	return int((a.limbs[limbIdx] >> uint(i%32)) & 1)
}

// ShiftLeft returns a<<n, failing with rsaerr.Overflow if the result would
// need more than Cap limbs.
func ShiftLeft(a Uint, n int) (Uint, error) {
	if n == 0 || a.used == 0 {
		return a.Clone(), nil
	}
	if a.BitLen()+n > Cap*32 {
		return Uint{}, rsaerr.New("bigint.ShiftLeft", rsaerr.Overflow)
	}
	wordShift := n / 32
	bitShift := uint(n % 32)

	var out Uint
	if bitShift == 0 {
		for i := a.used - 1; i >= 0; i-- {
			out.limbs[i+wordShift] = a.limbs[i]
		}
		out.used = normalizeUsed(out.limbs[:], a.used+wordShift)
		return out, nil
	}

	var carry uint32
	for i := 0; i < a.used; i++ {
		v := a.limbs[i]
		out.limbs[i+wordShift] = (v << bitShift) | carry
		carry = v >> (32 - bitShift)
	}
	top := a.used + wordShift
	if carry != 0 {
		out.limbs[top] = carry
		top++
	}
	out.used = normalizeUsed(out.limbs[:], top)
	return out, nil
}

// ShiftRight returns a>>n. Never fails; returns zero when n is at or beyond
// a's bit length.
func ShiftRight(a Uint, n int) Uint {
	if n <= 0 || a.used == 0 {
		if n == 0 {
			return a.Clone()
		}
		return Zero()
	}
	wordShift := n / 32
	bitShift := uint(n % 32)
	if wordShift >= a.used {
		return Zero()
	}

	var out Uint
	if bitShift == 0 {
		for i := wordShift; i < a.used; i++ {
			out.limbs[i-wordShift] = a.limbs[i]
		}
		out.used = normalizeUsed(out.limbs[:], a.used-wordShift)
		return out
	}

	for i := wordShift; i < a.used; i++ {
		v := a.limbs[i] >> bitShift
		if i+1 < a.used {
			v |= a.limbs[i+1] << (32 - bitShift)
		}
		out.limbs[i-wordShift] = v
	}
	out.used = normalizeUsed(out.limbs[:], a.used-wordShift)
	return out
}

// Add returns a+b, failing with rsaerr.Overflow if the carry would require
// limb Cap.
func Add(a, b Uint) (Uint, error) {
	var out Uint
	n := a.used
	if b.used > n {
		n = b.used
	}
	var carry uint32
	for i := 0; i < n; i++ {
		var ai, bi uint32
		if i < a.used {
			ai = a.limbs[i]
		}
		if i < b.used {
			bi = b.limbs[i]
		}
		sum, c := bits.Add32(ai, bi, carry)
		out.limbs[i] = sum
		carry = c
	}
	if carry != 0 {
		if n >= Cap {
			return Uint{}, rsaerr.New("bigint.Add", rsaerr.Overflow)
		}
		out.limbs[n] = carry
		n++
	}
	out.used = normalizeUsed(out.limbs[:], n)
	return out, nil
}

// Sub returns a-b. Precondition a>=b; otherwise fails with rsaerr.Underflow.
func Sub(a, b Uint) (Uint, error) {
	if Compare(a, b) == Less {
		return Uint{}, rsaerr.New("bigint.Sub", rsaerr.Underflow)
	}
	var out Uint
	var borrow uint32
	for i := 0; i < a.used; i++ {
		var bi uint32
		if i < b.used {
			bi = b.limbs[i]
		}
		d, bo := bits.Sub32(a.limbs[i], bi, borrow)
		out.limbs[i] = d
		borrow = bo
	}
	out.used = normalizeUsed(out.limbs[:], a.used)
	return out, nil
}

// mulAddCarry computes dst[idx] += a*b + carry using a 64-bit intermediate
// and returns the new single-limb carry. a*b is at most (2^32-1)^2, plus two
// more additions of at most 2^32-1 each, which always fits in uint64 without
// overflow, and the resulting carry (the top 32 bits of that uint64) always
// fits back in a uint32.
func mulAddCarry(dst []uint32, idx int, a, b, carry uint32) uint32 {
	prod := uint64(a)*uint64(b) + uint64(dst[idx]) + uint64(carry)
	dst[idx] = uint32(prod)
	return uint32(prod >> 32)
}

// Mul returns a*b computed by schoolbook long multiplication in
// O(used(a)*used(b)), failing with rsaerr.Overflow when used(a)+used(b) >
// Cap.
func Mul(a, b Uint) (Uint, error) {
	if a.used == 0 || b.used == 0 {
		return Uint{}, nil
	}
	if a.used+b.used > Cap {
		return Uint{}, rsaerr.New("bigint.Mul", rsaerr.Overflow)
	}
	var out Uint
	for i := 0; i < a.used; i++ {
		ai := a.limbs[i]
		if ai == 0 {
			continue
		}
		var carry uint32
		for j := 0; j < b.used; j++ {
			carry = mulAddCarry(out.limbs[:], i+j, ai, b.limbs[j], carry)
		}
		k := i + b.used
		for carry != 0 {
			sum := uint64(out.limbs[k]) + uint64(carry)
			out.limbs[k] = uint32(sum)
			carry = uint32(sum >> 32)
			k++
		}
	}
	out.used = normalizeUsed(out.limbs[:], a.used+b.used)
	return out, nil
}

// MulAddWord computes a*w + c in a single limb-scan, failing with
// rsaerr.Overflow if it grows beyond Cap limbs.
func MulAddWord(a Uint, w uint32, c uint32) (Uint, error) {
	var out Uint
	carry := uint64(c)
	for i := 0; i < a.used; i++ {
		prod := uint64(a.limbs[i])*uint64(w) + carry
		out.limbs[i] = uint32(prod)
		carry = prod >> 32
	}
	idx := a.used
	for carry != 0 {
		if idx >= Cap {
			return Uint{}, rsaerr.New("bigint.MulAddWord", rsaerr.Overflow)
		}
		out.limbs[idx] = uint32(carry)
		carry >>= 32
		idx++
	}
	out.used = normalizeUsed(out.limbs[:], idx)
	return out, nil
}

// AddWord computes a+w, failing with rsaerr.Overflow if the carry would
// require limb Cap.
func AddWord(a Uint, w uint32) (Uint, error) {
	return Add(a, FromU32(w))
}

// DivMod computes (q, r) such that a = q*b + r and 0 <= r < b. Precondition
// b != 0; otherwise fails with rsaerr.DivisionByZero. Single-limb divisors
// take a fast single-pass path; wider divisors use bit-serial binary long
// division.
func DivMod(a, b Uint) (q, r Uint, err error) {
	if b.used == 0 {
		return Uint{}, Uint{}, rsaerr.New("bigint.DivMod", rsaerr.DivisionByZero)
	}
	if Compare(a, b) == Less {
		return Uint{}, a.Clone(), nil
	}
	if b.used == 1 {
		return divModWord(a, b.limbs[0])
	}
	return divModBinary(a, b)
}

// divModWord divides a by the single-limb value w in one pass over a's
// limbs, most significant limb first.
func divModWord(a Uint, w uint32) (q, r Uint, err error) {
	var out Uint
	var rem uint64
	for i := a.used - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(a.limbs[i])
		out.limbs[i] = uint32(cur / uint64(w))
		rem = cur % uint64(w)
	}
	out.used = normalizeUsed(out.limbs[:], a.used)
	return out, FromU32(uint32(rem)), nil
}

// divModBinary implements long division one bit at a time: for each bit of
// a from most to least significant, the running remainder is shifted left,
// the next bit of a is folded in, and b is subtracted out if it fits.
// Terminates in BitLen(a) iterations; never caps out or silently truncates.
func divModBinary(a, b Uint) (q, r Uint, err error) {
	n := a.BitLen()
	var quotient Uint
	var rem Uint
	for i := n - 1; i >= 0; i-- {
		shifted, shErr := ShiftLeft(rem, 1)
		if shErr != nil {
			return Uint{}, Uint{}, rsaerr.Wrap("bigint.DivMod", rsaerr.InternalInvariantBroken, shErr)
		}
		rem = shifted
		if a.Bit(i) == 1 {
			withBit, addErr := AddWord(rem, 1)
			if addErr != nil {
				return Uint{}, Uint{}, rsaerr.Wrap("bigint.DivMod", rsaerr.InternalInvariantBroken, addErr)
			}
			rem = withBit
		}
		if Compare(rem, b) != Less {
			reduced, subErr := Sub(rem, b)
			if subErr != nil {
				return Uint{}, Uint{}, rsaerr.Wrap("bigint.DivMod", rsaerr.InternalInvariantBroken, subErr)
			}
			rem = reduced
			quotient = setBit(quotient, i)
		}
	}
	return quotient, rem, nil
}

// setBit returns a copy of a with bit i set. Used only to build up a
// quotient one bit at a time inside divModBinary; i is always within the
// bit length of the dividend, which is always within Cap*32.
func setBit(a Uint, i int) Uint {
	limbIdx := i / 32
	a.limbs[limbIdx] |= 1 << uint(i%32)
	if limbIdx+1 > a.used {
		a.used = normalizeUsed(a.limbs[:], limbIdx+1)
	}
	return a
}

// Mod is a convenience wrapper returning a mod m.
func Mod(a, m Uint) (Uint, error) {
	_, r, err := DivMod(a, m)
	return r, err
}
