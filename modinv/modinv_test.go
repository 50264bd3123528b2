package modinv

import (
	"math/big"
	"testing"
	"testing/quick"

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

func TestInvModRejectsZeroOperands(t *testing.T) {
	_, err := InvMod(bigint.Zero(), dec(t, "7"))
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.ZeroOperand, kind)

	_, err = InvMod(dec(t, "3"), bigint.Zero())
	kind, ok = rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.ZeroOperand, kind)
}

func TestInvModNoInverse(t *testing.T) {
	_, err := InvMod(dec(t, "6"), dec(t, "9"))
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.NoInverse, kind)
}

func TestInvModSmallModulusFastPath(t *testing.T) {
	inv, err := InvMod(dec(t, "3"), dec(t, "11"))
	require.NoError(t, err)
	require.Equal(t, "4", codec.DecimalString(inv)) // 3*4 = 12 = 1 mod 11
}

func TestInvModWideModulusExtendedGCD(t *testing.T) {
	mBig, _ := new(big.Int).SetString("62297188326078156161846999392494743256441", 10)
	aBig := big.NewInt(123456791)
	a := dec(t, aBig.String())
	m := dec(t, mBig.String())

	inv, err := InvMod(a, m)
	require.NoError(t, err)

	want := new(big.Int).ModInverse(aBig, mBig)
	require.NotNil(t, want)
	require.Equal(t, want.String(), codec.DecimalString(inv))
}

func TestInvModCorrectnessProperty(t *testing.T) {
	mBig, _ := new(big.Int).SetString("62297188326078156161846999392494743256441", 10)
	f := func(x uint32) bool {
		aBig := new(big.Int).SetUint64(uint64(x) + 1)
		if new(big.Int).GCD(nil, nil, aBig, mBig).Cmp(big.NewInt(1)) != 0 {
			return true
		}
		a := dec(t, aBig.String())
		m := dec(t, mBig.String())
		inv, err := InvMod(a, m)
		if err != nil {
			return false
		}
		prod := new(big.Int).Mul(aBig, new(big.Int).SetBytes(codec.Bytes(inv)))
		prod.Mod(prod, mBig)
		return prod.Cmp(big.NewInt(1)) == 0
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 100}); err != nil {
		t.Error(err)
	}
}
