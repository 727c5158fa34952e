package isqrt

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = I128From64

func i128s(s string) I128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("isqrt: i128 string %q invalid", s))
	}
	out, acc := I128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("isqrt: inaccurate i128 %s", s))
	}
	return out
}

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{i64(0), big0},
		{i64(1), bigs("1")},
		{i64(-1), bigs("-1")},
		{MaxI128, bigs("170141183460469231731687303715884105727")},
		{MinI128, bigs("-170141183460469231731687303715884105728")},
		{i128s("18446744073709551616"), bigs("18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 1000; i++ {
		b := randomBigUint(globalRNG, 127)
		if globalRNG.Intn(2) == 1 {
			b.Neg(b)
		}
		v := accI128FromBigInt(b)
		tt.MustAssert(b.Cmp(v.AsBigInt()) == 0, "round trip of %s", b)
	}
}

func TestI128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, i64(1).Sign())
	tt.MustEqual(-1, i64(-1).Sign())
	tt.MustEqual(1, MaxI128.Sign())
	tt.MustEqual(-1, MinI128.Sign())
}

func TestI128Neg(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(i64(-3).Neg().Equal(i64(3)))
	tt.MustAssert(i64(3).Neg().Equal(i64(-3)))
	tt.MustAssert(i64(0).Neg().Equal(i64(0)))
	tt.MustAssert(MinI128.Neg().Equal(MinI128)) // Overflow wraps
}

func TestI128Cmp(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(7).Cmp(i64(7)))
	tt.MustEqual(-1, i64(-7).Cmp(i64(7)))
	tt.MustEqual(1, i64(7).Cmp(i64(-7)))
	tt.MustEqual(-1, MinI128.Cmp(MaxI128))
	tt.MustEqual(1, MaxI128.Cmp(MinI128))
}

func TestI128Isqrt(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, tc := range []struct {
		n, root I128
	}{
		{i64(0), i64(0)},
		{i64(1), i64(1)},
		{i64(2), i64(1)},
		{i64(144), i64(12)},
		{i128s("18446744073709551616"), i64(4294967296)},
		{MaxI128, i128s("13043817825332782212")},
	} {
		r, ok := tc.n.CheckedIsqrt()
		tt.MustAssert(ok, "CheckedIsqrt(%s)", tc.n)
		tt.MustAssert(tc.root.Equal(r), "CheckedIsqrt(%s): expected %s, found %s", tc.n, tc.root, r)
		tt.MustAssert(tc.root.Equal(tc.n.Isqrt()))
	}

	for _, n := range []I128{i64(-1), i64(-144), MinI128} {
		if _, ok := n.CheckedIsqrt(); ok {
			t.Fatalf("CheckedIsqrt(%s) should have no value", n)
		}
		assertPanics(t, func() { n.Isqrt() })
	}
}

func TestI128IsqrtOracle(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		b := randomBigUint(globalRNG, 127)
		r, ok := accI128FromBigInt(b).CheckedIsqrt()
		tt.MustAssert(ok)

		expect := new(big.Int).Sqrt(b)
		tt.MustAssert(expect.Cmp(r.AsBigInt()) == 0, "isqrt(%s): expected %s, found %s", b, expect, r)
	}
}
