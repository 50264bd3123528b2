package rsa

import (
	"crypto/rand"
	gorsa "crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/rsaerr"
)

func dec(t *testing.T, s string) bigint.Uint {
	t.Helper()
	v, err := codec.ParseDecimal(s)
	require.NoError(t, err)
	return v
}

// Small-key encrypt scenarios: n=35=5*7, e=5.
func TestEncryptScenarios(t *testing.T) {
	pub, err := NewKey(dec(t, "35"), dec(t, "5"), false)
	require.NoError(t, err)

	cases := []struct{ m, want string }{
		{"2", "32"},
		{"3", "33"},
		{"4", "9"},
	}
	for _, c := range cases {
		got, err := Encrypt(pub, dec(t, c.m), nil)
		require.NoError(t, err)
		require.Equal(t, c.want, codec.DecimalString(got))
	}
}

// Zero message short-circuits without touching either engine.
func TestEncryptZeroMessage(t *testing.T) {
	pub, err := NewKey(dec(t, "35"), dec(t, "5"), false)
	require.NoError(t, err)
	got, err := Encrypt(pub, bigint.Zero(), nil)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

// Exponent of 1 is the identity.
func TestEncryptExponentOne(t *testing.T) {
	pub, err := NewKey(dec(t, "35"), dec(t, "1"), false)
	require.NoError(t, err)
	got, err := Encrypt(pub, dec(t, "34"), nil)
	require.NoError(t, err)
	require.Equal(t, "34", codec.DecimalString(got))
}

// n=143=11*13, e=7, d=103 encrypt/decrypt round trip.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, err := NewKey(dec(t, "143"), dec(t, "7"), false)
	require.NoError(t, err)
	priv, err := NewKey(dec(t, "143"), dec(t, "103"), true)
	require.NoError(t, err)

	for m := uint32(1); m < 143; m++ {
		c, err := Encrypt(pub, bigint.FromU32(m), nil)
		require.NoError(t, err)
		back, err := Decrypt(priv, c, nil)
		require.NoError(t, err)
		require.Equal(t, bigint.Equal, bigint.Compare(back, bigint.FromU32(m)))
	}
}

func TestModexpRejectsMessageNotLessThanN(t *testing.T) {
	pub, err := NewKey(dec(t, "35"), dec(t, "5"), false)
	require.NoError(t, err)
	_, err = Encrypt(pub, dec(t, "35"), nil)
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.DomainError, kind)
}

func TestNewKeyRejectsZeroModulusOrExponent(t *testing.T) {
	_, err := NewKey(bigint.Zero(), dec(t, "5"), false)
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.ZeroModulus, kind)

	_, err = NewKey(dec(t, "35"), bigint.Zero(), false)
	kind, ok = rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.DomainError, kind)
}

func TestEncryptDecryptDecimalHexBytes(t *testing.T) {
	pub, err := NewKey(dec(t, "143"), dec(t, "7"), false)
	require.NoError(t, err)
	priv, err := NewKey(dec(t, "143"), dec(t, "103"), true)
	require.NoError(t, err)

	cDec, err := EncryptDecimal(pub, "42", nil)
	require.NoError(t, err)
	mDec, err := DecryptDecimal(priv, cDec, nil)
	require.NoError(t, err)
	require.Equal(t, "42", mDec)

	cHex, err := EncryptHex(pub, "2a", nil)
	require.NoError(t, err)
	mHex, err := DecryptHex(priv, cHex, nil)
	require.NoError(t, err)
	require.Equal(t, "2a", mHex)

	cBytes, err := EncryptBytes(pub, []byte{42}, nil)
	require.NoError(t, err)
	mBytes, err := DecryptBytes(priv, cBytes, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{42}, mBytes)
}

// A real 4096-bit key pair generated with the standard library (test
// fixture generation only, never production arithmetic surface) round-trips
// through this package's engines.
func TestReal4096BitKeyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("4096-bit key generation is slow; skipped under -short")
	}
	key, err := gorsa.GenerateKey(rand.Reader, 4096)
	require.NoError(t, err)

	n, err := codec.FromBytes(key.N.Bytes())
	require.NoError(t, err)
	e := bigint.FromU32(uint32(key.E))
	d, err := codec.FromBytes(key.D.Bytes())
	require.NoError(t, err)

	pub, err := NewKey(n, e, false)
	require.NoError(t, err)
	priv, err := NewKey(n, d, true)
	require.NoError(t, err)

	m := dec(t, "123456789012345678901234567890")
	c, err := Encrypt(pub, m, nil)
	require.NoError(t, err)
	back, err := Decrypt(priv, c, nil)
	require.NoError(t, err)
	require.Equal(t, bigint.Equal, bigint.Compare(back, m))
}
