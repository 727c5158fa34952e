package isqrt

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer, the widest input the root engines
// accept. It is a value type; all operations return new values.
//
// The type and its arithmetic are adapted from github.com/shabbyrobe/go-num,
// trimmed to the operations the engines and their tests exercise.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a string. Overflow truncates to
// MaxU128 and sets accurate to 'false'. Only decimal strings are currently
// supported.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("isqrt: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("isqrt: unsupported bit size")
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw()
// for the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return new(big.Int).SetUint64(u.lo).String()
	}
	return u.AsBigInt().String()
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		ln := len(words)
		if ln < 2 {
			words = append(words, make([]big.Word, 2-ln)...)
		}
		words = words[:2]
		words[0] = big.Word(u.lo)
		words[1] = big.Word(u.hi)
		b.SetBits(words)

	case 32:
		words := b.Bits()
		ln := len(words)
		if ln < 4 {
			words = append(words, make([]big.Word, 4-ln)...)
		}
		words = words[:4]
		words[0] = big.Word(u.lo & 0xFFFFFFFF)
		words[1] = big.Word(u.lo >> 32)
		words[2] = big.Word(u.hi & 0xFFFFFFFF)
		words[3] = big.Word(u.hi >> 32)
		b.SetBits(words)

	default:
		if u.hi > 0 {
			b.SetUint64(u.hi)
			b.Lsh(b, 64)
		}
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret
// it as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you
// convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

// Isqrt returns the integer square root of u: the largest s such that
// s*s <= u.
func (u U128) Isqrt() U128 {
	return FloatU128(u)
}

// IsqrtRem returns the integer square root s of u together with the
// remainder u - s*s. The remainder never exceeds 2s.
func (u U128) IsqrtRem() (s, r U128) {
	s = KaratsubaU128(u)
	var sq U128
	sq.hi, sq.lo = bits.Mul64(s.lo, s.lo)
	return s, u.Sub(sq)
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	} else {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	} else {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	}
	return v
}

// Mul returns u * n, wrapping on overflow as per the Go spec.
func (u U128) Mul(n U128) (v U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	v.lo = lo
	v.hi = hi + u.hi*n.lo + u.lo*n.hi
	return v
}

// QuoRem returns the quotient q and remainder r for n != 0. If n == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/n      with the result truncated to zero
//	r = u - n*q
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic("isqrt: u128 division by zero")
	}

	if u.hi|by.hi == 0 {
		// by.lo is guaranteed nonzero if by.hi is zero:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		q = u.Rsh(byTrailing0)
		by = by.Dec()
		r.hi, r.lo = by.hi&u.hi, by.lo&u.lo
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	uLeading0 := u.LeadingZeros()
	if byLeading0-uLeading0 > 16 {
		return quorem128by128(u, by)
	}
	return quorem128bin(u, by, uLeading0, byLeading0)
}

// Rem returns the remainder of u%n for n != 0. If n == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// Hacker's delight 9-4, divlu:
func quo128by64(u1, u0, v uint64) (q uint64) {
	q, _ = quorem128by64(u1, u0, v)
	return q
}

// Hacker's delight 9-4, divlu:
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xFFFFFFFF

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xFFFFFFFF

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) | un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}

func quorem128by128(m, v U128) (q, r U128) {
	if v.hi == 0 {
		if m.hi < v.lo {
			q.lo, r.lo = quorem128by64(m.hi, m.lo, v.lo)
			return q, r
		}

		q.hi = m.hi / v.lo
		r.hi = m.hi % v.lo
		q.lo, r.lo = quorem128by64(r.hi, m.lo, v.lo)
		r.hi = 0
		return q, r
	}

	sh := uint(bits.LeadingZeros64(v.hi))

	v1 := v.Lsh(sh)
	u1 := m.Rsh(1)

	var q1 U128
	q1.lo = quo128by64(u1.hi, u1.lo, v1.hi)
	q1 = q1.Rsh(63 - sh)

	if q1.hi|q1.lo != 0 {
		q1 = q1.Dec()
	}
	q = q1
	q1 = q1.Mul(v)
	r = m.Sub(q1)

	if r.Cmp(v) >= 0 {
		q = q.Inc()
		r = r.Sub(v)
	}

	return q, r
}

func quorem128bin(u, by U128, uLeading0, byLeading0 uint) (q, r U128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		by.lo = (by.lo >> 1) | (by.hi << 63)
		by.hi = by.hi >> 1
		// }}}

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}
