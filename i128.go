package isqrt

import (
	"fmt"
	"math/big"
)

// I128 is a signed two's complement 128-bit integer. It is a value type;
// all operations return new values.
//
// Like U128, the type is adapted from github.com/shabbyrobe/go-num and
// keeps the subset of its API the signed root wrappers and their tests
// need.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128 { return I128From64(int64(v)) }
func I128From16(v int16) I128 { return I128From64(int64(v)) }
func I128From8(v int8) I128   { return I128From64(int64(v)) }

// I128FromString creates an I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("isqrt: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	u, inRange := U128FromBigInt(new(big.Int).Abs(v))
	if !inRange {
		if neg {
			return MinI128, false
		}
		return MaxI128, false
	}

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			return MaxI128, true
		} else if cmp > 0 {
			return MaxI128, false
		}
		return u.AsI128(), true
	}

	if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
		return MinI128, true
	} else if cmp > 0 {
		return MinI128, false
	}
	return u.AsI128().Neg(), true
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw()
// for the counterpart.
func (i I128) Raw() (hi, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	return i.AsBigInt().String()
}

func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	neg := i.hi&signBit != 0

	u := U128{hi: i.hi, lo: i.lo}
	if neg {
		u = zeroU128.Sub(u)
	}
	u.IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values above MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Neg() (v I128) {
	u := zeroU128.Sub(U128{hi: i.hi, lo: i.lo})
	return I128{hi: u.hi, lo: u.lo}
}

// CheckedIsqrt returns the integer square root of i, reporting false when
// i is negative.
//
// A nonnegative I128 reinterprets exactly as a U128, and the root of a
// 128-bit value fits in 64 bits, so the round trip cannot overflow into
// the sign bit.
func (i I128) CheckedIsqrt() (I128, bool) {
	if i.hi&signBit != 0 {
		return I128{}, false
	}
	return i.AsU128().Isqrt().AsI128(), true
}

// Isqrt returns the integer square root of i, panicking when i is
// negative.
func (i I128) Isqrt() I128 {
	r, ok := i.CheckedIsqrt()
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}

func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}
