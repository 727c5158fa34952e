package isqrt

import "math/bits"

// The Binary functions compute the integer square root one result bit at a
// time, most significant first, using only shifts, adds and compares. This
// is the classical "long division" square root on base-4 digits; see
// https://en.wikipedia.org/wiki/Methods_of_computing_square_roots#Binary_numeral_system_(base_2)
// which cites the C routine at
// https://web.archive.org/web/20120306040058/http://medialab.freaknet.org/martin/src/sqrt/sqrt.c
//
// The loop maintains op = n - (result so far squared, suitably shifted) and
// probes whether the next result bit can be set. The probe bit starts at
// the largest even bit position at or below the bit length of n and steps
// down two bits at a time, so the iteration count depends on the width, not
// the value.

// BinaryUint8 returns the integer square root of n using the digit-by-digit
// method.
func BinaryUint8(n uint8) uint8 {
	if n < 2 {
		return n
	}

	op, res := n, uint8(0)
	one := uint8(1) << (uint(bits.Len8(n)-1) &^ 1)
	for one != 0 {
		if op >= res+one {
			op -= res + one
			res = res>>1 + one
		} else {
			res >>= 1
		}
		one >>= 2
	}
	return res
}

// BinaryUint16 returns the integer square root of n using the
// digit-by-digit method.
func BinaryUint16(n uint16) uint16 {
	if n < 2 {
		return n
	}

	op, res := n, uint16(0)
	one := uint16(1) << (uint(bits.Len16(n)-1) &^ 1)
	for one != 0 {
		if op >= res+one {
			op -= res + one
			res = res>>1 + one
		} else {
			res >>= 1
		}
		one >>= 2
	}
	return res
}

// BinaryUint32 returns the integer square root of n using the
// digit-by-digit method.
func BinaryUint32(n uint32) uint32 {
	if n < 2 {
		return n
	}

	op, res := n, uint32(0)
	one := uint32(1) << (uint(bits.Len32(n)-1) &^ 1)
	for one != 0 {
		if op >= res+one {
			op -= res + one
			res = res>>1 + one
		} else {
			res >>= 1
		}
		one >>= 2
	}
	return res
}

// BinaryUint64 returns the integer square root of n using the
// digit-by-digit method.
func BinaryUint64(n uint64) uint64 {
	if n < 2 {
		return n
	}

	op, res := n, uint64(0)
	one := uint64(1) << (uint(bits.Len64(n)-1) &^ 1)
	for one != 0 {
		if op >= res+one {
			op -= res + one
			res = res>>1 + one
		} else {
			res >>= 1
		}
		one >>= 2
	}
	return res
}

// BinaryU128 returns the integer square root of u using the digit-by-digit
// method.
func BinaryU128(u U128) U128 {
	if u.hi == 0 && u.lo < 2 {
		return u
	}

	op, res := u, zeroU128
	one := U128{lo: 1}.Lsh((127 - u.LeadingZeros()) &^ 1)
	for !one.IsZero() {
		t := res.Add(one)
		if op.GreaterOrEqualTo(t) {
			op = op.Sub(t)
			res = res.Rsh(1).Add(one)
		} else {
			res = res.Rsh(1)
		}
		one = one.Rsh(2)
	}
	return res
}
