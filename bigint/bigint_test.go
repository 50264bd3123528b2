package bigint

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/blck-snwmn/rsa4096/rsaerr"
)

func toBig(u Uint) *big.Int {
	b := new(big.Int)
	for i := u.used - 1; i >= 0; i-- {
		b.Lsh(b, 32)
		b.Or(b, big.NewInt(int64(u.limbs[i])))
	}
	return b
}

func fromBig(b *big.Int) Uint {
	var u Uint
	bb := new(big.Int).Set(b)
	mask := big.NewInt(1<<32 - 1)
	i := 0
	for bb.Sign() != 0 {
		word := new(big.Int).And(bb, mask)
		u.limbs[i] = uint32(word.Uint64())
		bb.Rsh(bb, 32)
		i++
	}
	u.used = normalizeUsed(u.limbs[:], i)
	return u
}

func TestAddSubRoundTrip(t *testing.T) {
	a := FromU32(123456789)
	b := FromU32(987654321)
	sum, err := Add(a, b)
	require.NoError(t, err)
	back, err := Sub(sum, b)
	require.NoError(t, err)
	require.Equal(t, Equal, Compare(back, a))
}

func TestSubUnderflow(t *testing.T) {
	_, err := Sub(FromU32(1), FromU32(2))
	require.Error(t, err)
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.Underflow, kind)
}

func TestSubEqualIsZero(t *testing.T) {
	r, err := Sub(FromU32(42), FromU32(42))
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.Equal(t, 0, r.Used())
}

func TestMulZero(t *testing.T) {
	r, err := Mul(Zero(), FromU32(999))
	require.NoError(t, err)
	require.True(t, r.IsZero())
}

func TestMulOverflow(t *testing.T) {
	big1 := ShiftLeftMust(t, FromU32(1), 32*(Cap-1))
	big2 := ShiftLeftMust(t, FromU32(1), 32*2)
	_, err := Mul(big1, big2)
	require.Error(t, err)
	kind, _ := rsaerr.KindOf(err)
	require.Equal(t, rsaerr.Overflow, kind)
}

func ShiftLeftMust(t *testing.T, a Uint, n int) Uint {
	t.Helper()
	r, err := ShiftLeft(a, n)
	require.NoError(t, err)
	return r
}

func TestDivModIdentitySmallDivisor(t *testing.T) {
	a := FromU32(1000003)
	b := FromU32(7)
	q, r, err := DivMod(a, b)
	require.NoError(t, err)
	prod, err := Mul(q, b)
	require.NoError(t, err)
	sum, err := Add(prod, r)
	require.NoError(t, err)
	require.Equal(t, Equal, Compare(sum, a))
	require.Equal(t, Less, Compare(r, b))
}

func TestDivModIdentityWideDivisor(t *testing.T) {
	aBig, _ := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	bBig, _ := new(big.Int).SetString("987654321098765432109876543210987654321", 10)
	a := fromBig(aBig)
	b := fromBig(bBig)
	q, r, err := DivMod(a, b)
	require.NoError(t, err)

	wantQ := new(big.Int).Div(aBig, bBig)
	wantR := new(big.Int).Mod(aBig, bBig)
	require.Equal(t, 0, toBig(q).Cmp(wantQ))
	require.Equal(t, 0, toBig(r).Cmp(wantR))
}

func TestDivByZero(t *testing.T) {
	_, _, err := DivMod(FromU32(5), Zero())
	kind, ok := rsaerr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, rsaerr.DivisionByZero, kind)
}

func TestShiftRoundTrip(t *testing.T) {
	a := fromBig(mustParse("340282366920938463463374607431768211456")) // 2^128
	shifted := ShiftLeftMust(t, a, 37)
	back := ShiftRight(shifted, 37)
	require.Equal(t, Equal, Compare(back, a))
}

func TestShiftRightBeyondBitLen(t *testing.T) {
	a := FromU32(5)
	require.True(t, ShiftRight(a, 1000).IsZero())
}

func TestBitLenZero(t *testing.T) {
	require.Equal(t, 0, Zero().BitLen())
}

func TestCompare(t *testing.T) {
	require.Equal(t, Less, Compare(FromU32(1), FromU32(2)))
	require.Equal(t, Greater, Compare(FromU32(2), FromU32(1)))
	require.Equal(t, Equal, Compare(FromU32(2), FromU32(2)))
}

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal")
	}
	return v
}

func TestMulAddWordMatchesBig(t *testing.T) {
	a := fromBig(mustParse("11112222333344445555666677778888"))
	got, err := MulAddWord(a, 999983, 12345)
	require.NoError(t, err)
	want := new(big.Int).Add(new(big.Int).Mul(toBig(a), big.NewInt(999983)), big.NewInt(12345))
	require.Equal(t, 0, toBig(got).Cmp(want))
}

func TestAddSubProperty(t *testing.T) {
	f := func(x, y uint32) bool {
		a := FromU32(x)
		b := FromU32(y)
		sum, err := Add(a, b)
		if err != nil {
			return false
		}
		back, err := Sub(sum, b)
		if err != nil {
			return false
		}
		return Compare(back, a) == Equal
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

func TestDivModProperty(t *testing.T) {
	f := func(x, y uint32) bool {
		if y == 0 {
			return true
		}
		a := FromU32(x)
		b := FromU32(y)
		q, r, err := DivMod(a, b)
		if err != nil {
			return false
		}
		prod, err := Mul(q, b)
		if err != nil {
			return false
		}
		sum, err := Add(prod, r)
		if err != nil {
			return false
		}
		return Compare(sum, a) == Equal && Compare(r, b) == Less
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}
