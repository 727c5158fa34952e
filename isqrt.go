package isqrt

import "golang.org/x/exp/constraints"

// The default entry points pick the fast engine for each width: the table
// at 8 bits, the corrected float64 path at 16/32/64, and the float-seeded
// Karatsuba hybrid at 128. Callers that cannot use floating point should
// call the Binary or Karatsuba engines directly; every engine returns
// identical results for identical inputs.

// Uint8 returns the integer square root of n.
func Uint8(n uint8) uint8 { return isqrt8(n) }

// Uint16 returns the integer square root of n.
func Uint16(n uint16) uint16 { return FloatUint16(n) }

// Uint32 returns the integer square root of n.
func Uint32(n uint32) uint32 { return FloatUint32(n) }

// Uint64 returns the integer square root of n.
func Uint64(n uint64) uint64 { return FloatUint64(n) }

const negativeIsqrtMsg = "isqrt: argument of integer square root must be non-negative"

// CheckedInt8 returns the integer square root of n, reporting false when n
// is negative.
func CheckedInt8(n int8) (int8, bool) {
	if n < 0 {
		return 0, false
	}
	return int8(Uint8(uint8(n))), true
}

// Int8 returns the integer square root of n, panicking when n is negative.
func Int8(n int8) int8 {
	r, ok := CheckedInt8(n)
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}

// CheckedInt16 returns the integer square root of n, reporting false when
// n is negative.
func CheckedInt16(n int16) (int16, bool) {
	if n < 0 {
		return 0, false
	}
	return int16(Uint16(uint16(n))), true
}

// Int16 returns the integer square root of n, panicking when n is
// negative.
func Int16(n int16) int16 {
	r, ok := CheckedInt16(n)
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}

// CheckedInt32 returns the integer square root of n, reporting false when
// n is negative.
func CheckedInt32(n int32) (int32, bool) {
	if n < 0 {
		return 0, false
	}
	return int32(Uint32(uint32(n))), true
}

// Int32 returns the integer square root of n, panicking when n is
// negative.
func Int32(n int32) int32 {
	r, ok := CheckedInt32(n)
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}

// CheckedInt64 returns the integer square root of n, reporting false when
// n is negative.
func CheckedInt64(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	return int64(Uint64(uint64(n))), true
}

// Int64 returns the integer square root of n, panicking when n is
// negative.
func Int64(n int64) int64 {
	r, ok := CheckedInt64(n)
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}

// Isqrt returns the integer square root of any native unsigned value. The
// widening to 64 bits is lossless, so the result is exact at every width.
func Isqrt[T constraints.Unsigned](n T) T {
	return T(Uint64(uint64(n)))
}

// CheckedIsqrt returns the integer square root of any native signed value,
// reporting false when n is negative. A nonnegative signed value
// reinterprets exactly as unsigned, and the root of a W-bit value fits in
// W/2 bits, so the conversions cannot overflow into the sign bit.
func CheckedIsqrt[T constraints.Signed](n T) (T, bool) {
	if n < 0 {
		return 0, false
	}
	return T(Uint64(uint64(n))), true
}

// SignedIsqrt returns the integer square root of any native signed value,
// panicking when n is negative.
func SignedIsqrt[T constraints.Signed](n T) T {
	r, ok := CheckedIsqrt(n)
	if !ok {
		panic(negativeIsqrtMsg)
	}
	return r
}
