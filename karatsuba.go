package isqrt

import "math/bits"

// The Karatsuba functions compute the root of a W-bit value from the root
// and remainder of its upper W/2 bits, via one integer division per
// recursion level, terminating in the 8-bit table. The method is described
// in Zimmermann, "Karatsuba Square Root":
// https://web.archive.org/web/20230511212802/https://inria.hal.science/inria-00072854v1/file/RR-3805.pdf
//
// Each level proceeds the same way. A value that fits in the lower half
// width recurses directly. Otherwise the value is shifted left by an even
// amount so that at least one of its top two bits is set (the identity
// requires this of the high half), split into halves, and the high half
// solved recursively for (s', r'). The low half then refines the root: with
// Q the quarter width,
//
//	q, u = (r'<<Q | lo>>Q) divmod 2s'
//	s = s'<<Q + q
//
// and s is one too high exactly when the leftover low bits fall short of
// q*q, detected by comparing (u<<Q | lo&(1<<Q-1)) against q*q. Finally the
// even precondition shift is undone by halving it, which is exact: shifting
// n by 2k shifts its root by exactly k.
//
// The Rem variants additionally carry the remainder upward so the next
// level need not recompute it. When the shortfall subtraction borrows, the
// remainder is restored by adding back 2s-1 alongside the decrement; this
// is the same one-unit correction expressed with an explicit borrow.
//
// The carried remainder is only the remainder of the argument when the
// precondition shift comes out as zero: shifting n by 2k shifts the root by
// exactly k, but r>>k is not n - (s>>k)^2 (n=2 already breaks it). Every
// recursion site passes a normalized value so the shift is zero there; for
// any other argument the Rem variants fall back to recomputing n - s*s,
// which cannot overflow because the root fits the half width.

// KaratsubaUint8 returns the integer square root of n from the base-case
// table.
func KaratsubaUint8(n uint8) uint8 {
	return isqrt8(n)
}

// KaratsubaUint16 returns the integer square root of n using recursive
// halving.
func KaratsubaUint16(n uint16) uint16 {
	lz := uint(bits.LeadingZeros16(n))
	if lz >= 8 {
		return uint16(isqrt8(uint8(n)))
	}

	shift := lz & 6
	n <<= shift

	sp, rp := isqrt8Rem(uint8(n >> 8))
	lo := n & 0xFF

	num := uint16(rp)<<4 | lo>>4
	den := uint16(sp) << 1
	q, u := num/den, num%den

	s := uint16(sp)<<4 + q
	if u<<4|lo&0xF < q*q {
		s--
	}
	return s >> (shift >> 1)
}

func karatsuba16Rem(n uint16) (s, r uint16) {
	lz := uint(bits.LeadingZeros16(n))
	if lz >= 8 {
		s8, r8 := isqrt8Rem(uint8(n))
		return uint16(s8), uint16(r8)
	}

	shift := lz & 6
	n0 := n
	n <<= shift

	sp, rp := isqrt8Rem(uint8(n >> 8))
	lo := n & 0xFF

	num := uint16(rp)<<4 | lo>>4
	den := uint16(sp) << 1
	q, u := num/den, num%den

	s = uint16(sp)<<4 + q
	left, qq := u<<4|lo&0xF, q*q
	r = left - qq
	if left < qq {
		r += s<<1 - 1
		s--
	}
	if shift != 0 {
		s >>= shift >> 1
		return s, n0 - s*s
	}
	return s, r
}

// KaratsubaUint32 returns the integer square root of n using recursive
// halving.
func KaratsubaUint32(n uint32) uint32 {
	lz := uint(bits.LeadingZeros32(n))
	if lz >= 16 {
		return uint32(KaratsubaUint16(uint16(n)))
	}

	shift := lz & 14
	n <<= shift

	sp, rp := karatsuba16Rem(uint16(n >> 16))
	lo := n & 0xFFFF

	num := uint32(rp)<<8 | lo>>8
	den := uint32(sp) << 1
	q, u := num/den, num%den

	s := uint32(sp)<<8 + q
	if u<<8|lo&0xFF < q*q {
		s--
	}
	return s >> (shift >> 1)
}

func karatsuba32Rem(n uint32) (s, r uint32) {
	lz := uint(bits.LeadingZeros32(n))
	if lz >= 16 {
		s16, r16 := karatsuba16Rem(uint16(n))
		return uint32(s16), uint32(r16)
	}

	shift := lz & 14
	n0 := n
	n <<= shift

	sp, rp := karatsuba16Rem(uint16(n >> 16))
	lo := n & 0xFFFF

	num := uint32(rp)<<8 | lo>>8
	den := uint32(sp) << 1
	q, u := num/den, num%den

	s = uint32(sp)<<8 + q
	left, qq := u<<8|lo&0xFF, q*q
	r = left - qq
	if left < qq {
		r += s<<1 - 1
		s--
	}
	if shift != 0 {
		s >>= shift >> 1
		return s, n0 - s*s
	}
	return s, r
}

// KaratsubaUint64 returns the integer square root of n using recursive
// halving.
func KaratsubaUint64(n uint64) uint64 {
	lz := uint(bits.LeadingZeros64(n))
	if lz >= 32 {
		return uint64(KaratsubaUint32(uint32(n)))
	}

	shift := lz & 30
	n <<= shift

	sp, rp := karatsuba32Rem(uint32(n >> 32))
	lo := n & 0xFFFFFFFF

	num := uint64(rp)<<16 | lo>>16
	den := uint64(sp) << 1
	q, u := num/den, num%den

	s := uint64(sp)<<16 + q
	if u<<16|lo&0xFFFF < q*q {
		s--
	}
	return s >> (shift >> 1)
}

func karatsuba64Rem(n uint64) (s, r uint64) {
	lz := uint(bits.LeadingZeros64(n))
	if lz >= 32 {
		s32, r32 := karatsuba32Rem(uint32(n))
		return uint64(s32), uint64(r32)
	}

	shift := lz & 30
	n0 := n
	n <<= shift

	sp, rp := karatsuba32Rem(uint32(n >> 32))
	lo := n & 0xFFFFFFFF

	num := uint64(rp)<<16 | lo>>16
	den := uint64(sp) << 1
	q, u := num/den, num%den

	s = uint64(sp)<<16 + q
	left, qq := u<<16|lo&0xFFFF, q*q
	r = left - qq
	if left < qq {
		r += s<<1 - 1
		s--
	}
	if shift != 0 {
		s >>= shift >> 1
		return s, n0 - s*s
	}
	return s, r
}

// KaratsubaU128 returns the integer square root of u using recursive
// halving.
func KaratsubaU128(u U128) U128 {
	if u.hi == 0 {
		return U128{lo: KaratsubaUint64(u.lo)}
	}

	shift := uint(bits.LeadingZeros64(u.hi)) & 62
	u = u.Lsh(shift)

	sp, rp := karatsuba64Rem(u.hi)
	s, _ := combine128(sp, rp, u.lo)
	return s.Rsh(shift >> 1)
}

// combine128 runs one Karatsuba level at 128 bits, merging the root sp and
// remainder rp of the high 64 bits of a normalized value with its low 64
// bits lo. The caller must ensure at least one of the value's top two bits
// is set, which guarantees sp >= 1<<31 and bounds every intermediate below
// at 66 bits.
func combine128(sp, rp, lo uint64) (s, r U128) {
	// rp can reach 2*sp, one bit past 64; the numerator and the shortfall
	// comparison both need the extra word.
	num := U128{hi: rp >> 32, lo: rp<<32 | lo>>32}
	q128, u128 := num.QuoRem(U128{lo: sp << 1})
	q, u := q128.lo, u128.lo

	var carry uint64
	s.lo, carry = bits.Add64(sp<<32, q, 0)
	s.hi = carry

	left := U128{hi: u >> 32, lo: u<<32 | lo&0xFFFFFFFF}
	var qq U128
	qq.hi, qq.lo = bits.Mul64(q, q)

	r = left.Sub(qq)
	if left.LessThan(qq) {
		r = r.Add(s.Lsh(1).Dec())
		s = s.Dec()
	}
	return s, r
}
