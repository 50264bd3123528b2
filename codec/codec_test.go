package codec

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

func TestDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "9", "123456789012345678901234567890", "340282366920938463463374607431768211455"}
	for _, s := range cases {
		v, err := ParseDecimal(s)
		require.NoError(t, err)
		require.Equal(t, s, DecimalString(v))
	}
}

func TestDecimalEmptyIsZero(t *testing.T) {
	v, err := ParseDecimal("")
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestDecimalBadFormat(t *testing.T) {
	_, err := ParseDecimal("12a3")
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.BadFormat, kind)
}

func TestHexRoundTrip(t *testing.T) {
	cases := []string{"0", "a", "ff", "deadbeef", "123456789abcdef0"}
	for _, s := range cases {
		v, err := ParseHex(s)
		require.NoError(t, err)
		require.Equal(t, s, HexString(v))
	}
}

func TestHexCaseInsensitive(t *testing.T) {
	lower, err := ParseHex("deadbeef")
	require.NoError(t, err)
	upper, err := ParseHex("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, bigint.Equal, bigint.Compare(lower, upper))
}

func TestHexBadFormat(t *testing.T) {
	_, err := ParseHex("12g3")
	kind, _ := rsaerr.KindOf(err)
	require.Equal(t, rsaerr.BadFormat, kind)
}

func TestBytesRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "255", "256", "65535", "123456789012345678901234567890"} {
		v, err := ParseDecimal(s)
		require.NoError(t, err)
		b := Bytes(v)
		back, err := FromBytes(b)
		require.NoError(t, err)
		require.Equal(t, bigint.Equal, bigint.Compare(v, back))
	}
}

func TestBytesMinimumLength(t *testing.T) {
	v, _ := ParseDecimal("0")
	require.Equal(t, []byte{0}, Bytes(v))

	v, _ = ParseDecimal("256")
	require.Equal(t, []byte{1, 0}, Bytes(v))
}

func TestBytesIntoTooSmall(t *testing.T) {
	v, _ := ParseDecimal("65536")
	buf := make([]byte, 1)
	_, err := BytesInto(v, buf)
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.BufferTooSmall, kind)
	var e *rsaerr.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, 3, e.Needed)
}

func TestBytesIntoLeftPads(t *testing.T) {
	v, _ := ParseDecimal("1")
	buf := make([]byte, 4)
	n, err := BytesInto(v, buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0, 0, 0, 1}, buf)
}

func TestCanonicalize(t *testing.T) {
	require.Equal(t, "0", Canonicalize("0000"))
	require.Equal(t, "7", Canonicalize("007"))
	require.Equal(t, "0", Canonicalize(""))
}

func TestDecimalRoundTripProperty(t *testing.T) {
	f := func(a, b uint16) bool {
		s := DecimalString(bigint.FromU32(uint32(a)<<16 | uint32(b)))
		v, err := ParseDecimal(s)
		if err != nil {
			return false
		}
		return DecimalString(v) == Canonicalize(s)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
