// Package codec converts between bigint.Uint and the external
// representations RSA primitives are exchanged in: decimal strings, hex
// strings, and big-endian bytes (the I2OSP/OS2IP convention). Decimal
// and hex parsing fold in each digit as a single-limb MulAddWord
// instead of repeated Mul/Add pairs.
package codec

import (
	"strings"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

// ParseDecimal reads digits left-to-right as repeated x*10+d. An empty
// string decodes to zero, matching the source contract; any non-digit
// character fails with rsaerr.BadFormat.
func ParseDecimal(s string) (bigint.Uint, error) {
	v := bigint.Zero()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return bigint.Uint{}, rsaerr.New("codec.ParseDecimal", rsaerr.BadFormat)
		}
		next, err := bigint.MulAddWord(v, 10, uint32(c-'0'))
		if err != nil {
			return bigint.Uint{}, err
		}
		v = next
	}
	return v, nil
}

// DecimalString renders a as a decimal string, peeling digits off by
// repeated div_mod by ten. The zero value renders as "0".
func DecimalString(a bigint.Uint) string {
	if a.IsZero() {
		return "0"
	}
	digits := make([]byte, 0, a.BitLen()/3+2)
	ten := bigint.FromU32(10)
	for !a.IsZero() {
		q, r, err := bigint.DivMod(a, ten)
		if err != nil {
			// unreachable: ten is never zero
			panic(err)
		}
		var d byte
		if r.Used() > 0 {
			d = byte(r.Limb(0))
		}
		digits = append(digits, '0'+d)
		a = q
	}
	reverse(digits)
	return string(digits)
}

const hexDigits = "0123456789abcdef"

// ParseHex reads hex digits left-to-right, case-insensitive. An empty
// string decodes to zero; any non-hex character fails with
// rsaerr.BadFormat.
func ParseHex(s string) (bigint.Uint, error) {
	v := bigint.Zero()
	for i := 0; i < len(s); i++ {
		d, ok := hexValue(s[i])
		if !ok {
			return bigint.Uint{}, rsaerr.New("codec.ParseHex", rsaerr.BadFormat)
		}
		next, err := bigint.MulAddWord(v, 16, uint32(d))
		if err != nil {
			return bigint.Uint{}, err
		}
		v = next
	}
	return v, nil
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// HexString renders a as a lower-case hex string with no prefix and no
// leading zeros, except the value zero which renders as "0".
func HexString(a bigint.Uint) string {
	if a.IsZero() {
		return "0"
	}
	n := a.BitLen()
	nibbles := (n + 3) / 4
	out := make([]byte, nibbles)
	for i := 0; i < nibbles; i++ {
		shift := i * 4
		limb := a.Limb(shift / 32)
		nibble := (limb >> uint(shift%32)) & 0xf
		out[nibbles-1-i] = hexDigits[nibble]
	}
	return string(out)
}

// ByteLen returns the minimum number of big-endian bytes needed to encode
// a (one byte for zero).
func ByteLen(a bigint.Uint) int {
	if a.IsZero() {
		return 1
	}
	return (a.BitLen() + 7) / 8
}

// Bytes returns the minimum-length big-endian encoding of a (one byte for
// zero), matching the I2OSP convention.
func Bytes(a bigint.Uint) []byte {
	buf := make([]byte, ByteLen(a))
	_, _ = BytesInto(a, buf) // buf is always exactly large enough
	return buf
}

// BytesInto writes a's big-endian encoding into buf, returning the number
// of bytes written. Fails with rsaerr.BufferTooSmall (reporting the needed
// length) if buf is shorter than ByteLen(a).
func BytesInto(a bigint.Uint, buf []byte) (int, error) {
	need := ByteLen(a)
	if len(buf) < need {
		return 0, rsaerr.NewBufferTooSmall("codec.BytesInto", need)
	}
	// zero any leading padding the caller's buffer carries
	for i := 0; i < len(buf)-need; i++ {
		buf[i] = 0
	}
	off := len(buf) - need
	// Walk bytes from least to most significant directly off the limbs.
	for i := 0; i < need; i++ {
		bitOff := i * 8
		limb := a.Limb(bitOff / 32)
		b := byte(limb >> uint(bitOff%32))
		buf[off+need-1-i] = b
	}
	return need, nil
}

// FromBytes decodes big-endian bytes into a Uint; the first (index 0) byte
// is the most significant. An empty slice decodes to zero.
func FromBytes(b []byte) (bigint.Uint, error) {
	v := bigint.Zero()
	for i := 0; i < len(b); i++ {
		next, err := bigint.MulAddWord(v, 256, uint32(b[i]))
		if err != nil {
			return bigint.Uint{}, err
		}
		v = next
	}
	return v, nil
}

// Canonicalize strips leading zeros from a decimal or hex string, except
// for the value zero, which canonicalizes to "0". It is used by tests to
// state a round-trip property without re-parsing.
func Canonicalize(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
