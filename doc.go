/*
Package isqrt computes exact integer square roots (the floor of the real
square root) of fixed-width signed and unsigned integers, for widths 8, 16,
32, 64 and 128 bits.

Three independently correct strategies are provided for every unsigned
width:

	BinaryUint8(n uint8) uint8 ... BinaryUint64, BinaryU128
	FloatUint8(n uint8) uint8 ... FloatUint64, FloatU128
	KaratsubaUint8(n uint8) uint8 ... KaratsubaUint64, KaratsubaU128

The Binary functions use the classic digit-by-digit shift-and-subtract
method; they are free of floating point and division and make a good
reference or fallback on constrained targets. The Float functions convert
through float64 and correct the truncated candidate, which is the fastest
path on hardware with an FPU. The Karatsuba functions recurse by halving
the bit width down to a precomputed 8-bit table, using one integer division
per level.

Unless you need a specific strategy, use the default entry points, which
pick the fast engine for each width:

	Uint8(n uint8) uint8 ... Uint16, Uint32, Uint64
	u.Isqrt() // U128

Signed widths delegate to the unsigned engines. The Checked forms report
negative inputs through a false second return; the unchecked forms panic:

	CheckedInt8(n int8) (int8, bool) ... CheckedInt64
	Int8(n int8) int8 ... Int64
	i.CheckedIsqrt(), i.Isqrt() // I128

Generic forms are available over the native widths:

	Isqrt[T constraints.Unsigned](n T) T
	CheckedIsqrt[T constraints.Signed](n T) (T, bool)
	SignedIsqrt[T constraints.Signed](n T) T

Every function is a pure operation on value types with no shared mutable
state; all of them are safe for concurrent use.

The U128 and I128 types are adapted from github.com/shabbyrobe/go-num and
retain the subset of its API the root engines and their tests need.
*/
package isqrt
