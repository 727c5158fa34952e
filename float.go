package isqrt

import (
	"math"
	"math/bits"
)

// The Float functions obtain a candidate root from the hardware square root
// and make it exact by integer comparison.
//
// For widths up to 32 bits no correction is needed: n converts to float64
// exactly (the mantissa holds 53 bits), math.Sqrt is correctly rounded per
// the Go spec, and for roots k <= 1<<16 the gap between sqrt(k*k - 1) and k
// is about 1/(2k) >= 1<<-17, far larger than half an ulp near k, so
// rounding can never push the truncated result past a root boundary.
//
// At 64 bits the conversion to float64 itself rounds, so the truncated
// candidate can land one unit to either side of the true root and a
// correction pass is required.

// FloatUint8 returns the integer square root of n via float64.
func FloatUint8(n uint8) uint8 {
	return uint8(math.Sqrt(float64(n)))
}

// FloatUint16 returns the integer square root of n via float64.
func FloatUint16(n uint16) uint16 {
	return uint16(math.Sqrt(float64(n)))
}

// FloatUint32 returns the integer square root of n via float64.
func FloatUint32(n uint32) uint32 {
	return uint32(math.Sqrt(float64(n)))
}

// FloatUint64 returns the integer square root of n via float64 with an
// exactness correction.
//
// Inputs above 1<<53 collapse onto shared float64 representatives. A
// representative's range covers at most ~1<<11 consecutive inputs near the
// top of the u64 range, while perfect squares up there are at least ~1<<27
// apart, so a range holds at most one perfect square and the truncated
// root of the representative is off by at most one in either direction.
// The candidate squarings are overflow-checked: a square that overflows
// must be treated as "exceeds n", never allowed to wrap, or the correction
// would move the wrong way.
func FloatUint64(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if hi, sq := bits.Mul64(r, r); hi != 0 || sq > n {
		r--
	} else if hi, sq := bits.Mul64(r+1, r+1); hi == 0 && sq <= n {
		r++
	}
	return r
}

// FloatU128 returns the integer square root of u. float64 cannot locate a
// 128-bit root on its own, so values above 64 bits run a single Karatsuba
// combine step over the corrected 64-bit float root of the high half.
func FloatU128(u U128) U128 {
	if u.hi == 0 {
		return U128{lo: FloatUint64(u.lo)}
	}

	shift := uint(bits.LeadingZeros64(u.hi)) & 62
	u = u.Lsh(shift)

	sp := FloatUint64(u.hi)
	rp := u.hi - sp*sp

	s, _ := combine128(sp, rp, u.lo)
	return s.Rsh(shift >> 1)
}
