// Package schoolbook computes modular exponentiation using only bigint
// operations: right-to-left binary for small exponents, a 4-bit
// left-to-right sliding window for large ones. It never
// touches Montgomery form; every intermediate is reduced modulo m
// immediately after the multiplication that produced it.
package schoolbook

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// smallExponentLimbs is the cutoff (in limbs, i.e. 640 bits) at or below
// which ModExp uses the right-to-left binary algorithm instead of the 4-bit
// sliding window.
const smallExponentLimbs = 20

// ModExp computes base^exp mod m. Preconditions: m != 0 (rsaerr.ZeroModulus
// otherwise isn't part of this contract — m==0 is rejected as
// rsaerr.DivisionByZero since every reduction inside routes through
// bigint.DivMod). Edge cases: exp==0 -> 1; base==0 && exp>0 -> 0; m==1 ->
// 0.
func ModExp(base, exp, m bigint.Uint) (bigint.Uint, error) {
	if m.IsZero() {
		return bigint.Uint{}, rsaerr.New("schoolbook.ModExp", rsaerr.DivisionByZero)
	}
	if m.IsOne() {
		return bigint.Zero(), nil
	}
	if exp.IsZero() {
		return bigint.FromU32(1), nil
	}
	if base.IsZero() {
		return bigint.Zero(), nil
	}

	baseMod, err := bigint.Mod(base, m)
	if err != nil {
		return bigint.Uint{}, err
	}

	if exp.Used() <= smallExponentLimbs {
		return modExpBinary(baseMod, exp, m)
	}
	return modExpWindow(baseMod, exp, m)
}

// modExpBinary implements right-to-left binary exponentiation: state is
// (result, base', exp') initialized to (1, base mod m, exp). Each step
// multiplies result by base' when exp''s low bit is set, then squares
// base' for the next bit.
func modExpBinary(base, exp, m bigint.Uint) (bigint.Uint, error) {
	result := bigint.FromU32(1)
	b := base
	e := exp
	for !e.IsZero() {
		if e.Bit(0) == 1 {
			prod, err := bigint.Mul(result, b)
			if err != nil {
				return bigint.Uint{}, err
			}
			result, err = bigint.Mod(prod, m)
			if err != nil {
				return bigint.Uint{}, err
			}
		}
		e = bigint.ShiftRight(e, 1)
		if e.IsZero() {
			break
		}
		sq, err := bigint.Mul(b, b)
		if err != nil {
			return bigint.Uint{}, err
		}
		b, err = bigint.Mod(sq, m)
		if err != nil {
			return bigint.Uint{}, err
		}
	}
	return result, nil
}

// windowBits is the sliding window width: 4 bits, 16 precomputed powers.
const windowBits = 4
const windowSize = 1 << windowBits

// modExpWindow implements 4-bit sliding-window exponentiation, left to
// right: precompute T[0..15] with T[i] = base^i mod m, skip leading
// all-zero windows, and for each subsequent window of width b square the
// running result b times then multiply by T[w] iff w > 0.
func modExpWindow(base, exp, m bigint.Uint) (bigint.Uint, error) {
	table := make([]bigint.Uint, windowSize)
	table[0] = bigint.FromU32(1)
	table[1] = base
	for i := 2; i < windowSize; i++ {
		prod, err := bigint.Mul(table[i-1], base)
		if err != nil {
			return bigint.Uint{}, err
		}
		reduced, err := bigint.Mod(prod, m)
		if err != nil {
			return bigint.Uint{}, err
		}
		table[i] = reduced
	}

	n := exp.BitLen()
	// Align windows so the leading window may be partial: number of bits
	// in the first (possibly short) window.
	firstWidth := n % windowBits
	if firstWidth == 0 {
		firstWidth = windowBits
	}

	var result bigint.Uint
	haveResult := false
	pos := n - firstWidth
	width := firstWidth
	for pos >= 0 {
		w := windowValue(exp, pos, width)
		if !haveResult {
			if w != 0 {
				result = table[w]
				haveResult = true
			}
		} else {
			for i := 0; i < width; i++ {
				sq, err := bigint.Mul(result, result)
				if err != nil {
					return bigint.Uint{}, err
				}
				result, err = bigint.Mod(sq, m)
				if err != nil {
					return bigint.Uint{}, err
				}
			}
			if w != 0 {
				prod, err := bigint.Mul(result, table[w])
				if err != nil {
					return bigint.Uint{}, err
				}
				result, err = bigint.Mod(prod, m)
				if err != nil {
					return bigint.Uint{}, err
				}
			}
		}
		pos -= windowBits
		width = windowBits
	}
	if !haveResult {
		// exp's bits were all zero in every window, i.e. exp == 0; ModExp
		// already special-cases this, so this path is unreachable, but
		// return the identity rather than a zero-value Uint.
		return bigint.FromU32(1), nil
	}
	return result, nil
}

// windowValue reads the `width`-bit window of exp starting at bit index
// pos, most significant bit first within the window.
func windowValue(exp bigint.Uint, pos, width int) int {
	v := 0
	for i := width - 1; i >= 0; i-- {
		v = v<<1 | exp.Bit(pos+i)
	}
	return v
}
