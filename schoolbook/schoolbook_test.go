package schoolbook

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blck-snwmn/rsa4096/bigint"
	"github.com/blck-snwmn/rsa4096/codec"
)

func dec(t *testing.T, s string) bigint.Uint {
	t.Helper()
	v, err := codec.ParseDecimal(s)
	require.NoError(t, err)
	return v
}

func TestModExpEdgeCases(t *testing.T) {
	m := dec(t, "35")

	r, err := ModExp(dec(t, "7"), bigint.Zero(), m)
	require.NoError(t, err)
	require.True(t, r.IsOne())

	r, err = ModExp(bigint.Zero(), dec(t, "5"), m)
	require.NoError(t, err)
	require.True(t, r.IsZero())

	r, err = ModExp(dec(t, "7"), dec(t, "5"), bigint.FromU32(1))
	require.NoError(t, err)
	require.True(t, r.IsZero())
}

func TestModExpScenarios(t *testing.T) {
	cases := []struct{ base, exp, mod, want string }{
		{"2", "5", "35", "32"},
		{"3", "5", "35", "33"},
		{"4", "5", "35", "9"},
		{"34", "1", "35", "34"},
	}
	for _, c := range cases {
		got, err := ModExp(dec(t, c.base), dec(t, c.exp), dec(t, c.mod))
		require.NoError(t, err)
		require.Equal(t, c.want, codec.DecimalString(got))
	}
}

func TestModExpAgreesWithMathBig(t *testing.T) {
	mBig, _ := new(big.Int).SetString("62297188326078156161846999392494743256441", 10)
	baseBig, _ := new(big.Int).SetString("12345678901234567890123456789012345678901", 10)
	expBig, _ := new(big.Int).SetString("987654321098765432109876543210987654321", 10)

	m, err := codec.ParseDecimal(mBig.String())
	require.NoError(t, err)
	base, err := codec.ParseDecimal(baseBig.String())
	require.NoError(t, err)
	exp, err := codec.ParseDecimal(expBig.String())
	require.NoError(t, err)

	got, err := ModExp(base, exp, m)
	require.NoError(t, err)

	want := new(big.Int).Exp(baseBig, expBig, mBig)
	require.Equal(t, want.String(), codec.DecimalString(got))
}

func TestModExpLargeExponentUsesWindow(t *testing.T) {
	// An exponent wider than smallExponentLimbs*32 bits forces the
	// sliding-window path; verify it still agrees with math/big.
	expBig := new(big.Int).Lsh(big.NewInt(1), 700)
	expBig.Add(expBig, big.NewInt(12345))
	mBig, _ := new(big.Int).SetString("62297188326078156161846999392494743256441", 10)
	baseBig := big.NewInt(65537)

	m, _ := codec.ParseDecimal(mBig.String())
	base, _ := codec.ParseDecimal(baseBig.String())
	exp, _ := codec.ParseDecimal(expBig.String())

	got, err := ModExp(base, exp, m)
	require.NoError(t, err)
	require.True(t, exp.Used() > smallExponentLimbs)

	want := new(big.Int).Exp(baseBig, expBig, mBig)
	require.Equal(t, want.String(), codec.DecimalString(got))
}
