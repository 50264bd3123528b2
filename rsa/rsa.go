// Package rsa is the thin external collaborator that wraps a key pair,
// calls expselect.ModExp, and handles decimal/hex/byte encoding via
// codec. It implements no padding scheme (PKCS#1 v1.5, OAEP), no key
// generation, and no primality testing.
package rsa

import (
	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
	"github.com/blck-snwmn/rsa4096/expselect"
	"github.com/blck-snwmn/rsa4096/montgomery"
	"github.com/blck-snwmn/rsa4096/rsaerr"
	"go.uber.org/zap"
)

// Key is an RSA key: n and an exponent (e for a public key, d for a
// private key). The public/private distinction is informational only —
// arithmetic is identical either way.
type Key struct {
	N         bigint.Uint
	Exp       bigint.Uint
	IsPrivate bool
	Mont      *montgomery.Ctx // nil if n is even or context setup failed
}

// NewKey builds a Key from n and an exponent, attempting to build a
// Montgomery context for n. Fails with rsaerr.ZeroModulus or
// rsaerr.DomainError if n or exp is zero; a failure to build the
// Montgomery context (even modulus, or a modulus too wide for the
// configured capacity) is not fatal — Mont stays nil and expselect falls
// back to schoolbook for every call on this key.
func NewKey(n, exp bigint.Uint, isPrivate bool) (*Key, error) {
	if n.IsZero() {
		return nil, rsaerr.New("rsa.NewKey", rsaerr.ZeroModulus)
	}
	if exp.IsZero() {
		return nil, rsaerr.New("rsa.NewKey", rsaerr.DomainError)
	}
	key := &Key{N: n, Exp: exp, IsPrivate: isPrivate}
	if ctx, err := montgomery.Build(n); err == nil {
		key.Mont = ctx
	}
	return key, nil
}

// Modexp computes m^key.Exp mod key.N, routing through expselect. logger
// may be nil.
func (k *Key) Modexp(m bigint.Uint, logger *zap.SugaredLogger) (bigint.Uint, error) {
	if bigint.Compare(m, k.N) != bigint.Less {
		return bigint.Uint{}, rsaerr.New("rsa.Modexp", rsaerr.DomainError)
	}
	return expselect.ModExp(m, k.Exp, k.N, k.Mont, logger)
}

// Encrypt computes pub.Exp-th power of m mod pub.N (public-key operation).
// Precondition m < n; the zero message short-circuits to zero without
// touching the arithmetic engines.
func Encrypt(pub *Key, m bigint.Uint, logger *zap.SugaredLogger) (bigint.Uint, error) {
	if m.IsZero() {
		return bigint.Zero(), nil
	}
	return pub.Modexp(m, logger)
}

// Decrypt computes priv.Exp-th power of c mod priv.N (private-key
// operation), symmetric to Encrypt.
func Decrypt(priv *Key, c bigint.Uint, logger *zap.SugaredLogger) (bigint.Uint, error) {
	if c.IsZero() {
		return bigint.Zero(), nil
	}
	return priv.Modexp(c, logger)
}

// EncryptDecimal/DecryptDecimal/EncryptHex/DecryptHex/EncryptBytes/
// DecryptBytes are the decimal, hex, and binary encoding entry points spec
// §4.G assigns to this collaborator.

// EncryptDecimal parses m as a decimal string, encrypts it, and renders
// the result back to decimal.
func EncryptDecimal(pub *Key, m string, logger *zap.SugaredLogger) (string, error) {
	v, err := codec.ParseDecimal(m)
	if err != nil {
		return "", err
	}
	c, err := Encrypt(pub, v, logger)
	if err != nil {
		return "", err
	}
	return codec.DecimalString(c), nil
}

// DecryptDecimal is the decimal-string inverse of EncryptDecimal.
func DecryptDecimal(priv *Key, c string, logger *zap.SugaredLogger) (string, error) {
	v, err := codec.ParseDecimal(c)
	if err != nil {
		return "", err
	}
	m, err := Decrypt(priv, v, logger)
	if err != nil {
		return "", err
	}
	return codec.DecimalString(m), nil
}

// EncryptHex parses m as a hex string, encrypts it, and renders the result
// back to hex.
func EncryptHex(pub *Key, m string, logger *zap.SugaredLogger) (string, error) {
	v, err := codec.ParseHex(m)
	if err != nil {
		return "", err
	}
	c, err := Encrypt(pub, v, logger)
	if err != nil {
		return "", err
	}
	return codec.HexString(c), nil
}

// DecryptHex is the hex-string inverse of EncryptHex.
func DecryptHex(priv *Key, c string, logger *zap.SugaredLogger) (string, error) {
	v, err := codec.ParseHex(c)
	if err != nil {
		return "", err
	}
	m, err := Decrypt(priv, v, logger)
	if err != nil {
		return "", err
	}
	return codec.HexString(m), nil
}

// EncryptBytes decodes m as big-endian bytes, encrypts it, and returns the
// minimum-length big-endian encoding of the result.
func EncryptBytes(pub *Key, m []byte, logger *zap.SugaredLogger) ([]byte, error) {
	v, err := codec.FromBytes(m)
	if err != nil {
		return nil, err
	}
	c, err := Encrypt(pub, v, logger)
	if err != nil {
		return nil, err
	}
	return codec.Bytes(c), nil
}

// DecryptBytes is the byte-slice inverse of EncryptBytes.
func DecryptBytes(priv *Key, c []byte, logger *zap.SugaredLogger) ([]byte, error) {
	v, err := codec.FromBytes(c)
	if err != nil {
		return nil, err
	}
	m, err := Decrypt(priv, v, logger)
	if err != nil {
		return nil, err
	}
	return codec.Bytes(m), nil
}
