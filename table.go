package isqrt

// isqrtTab8 is the recursion base case for the Karatsuba engine: the square
// root and remainder of every 8-bit value, packed one byte per entry. The
// low five bits hold the remainder (at most 2*15 = 30); the high three bits
// hold the low three bits of the root. The root's fourth bit is implied by
// n >= 64.
var isqrtTab8 [256]uint8

func init() {
	buildIsqrtTab8()
}

// buildIsqrtTab8 fills isqrtTab8 in a single linear pass. Each root s owns
// the 2s+1 values in [s*s, (s+1)*(s+1)); counting those down avoids
// floating point and division entirely, so the table can be rebuilt in
// contexts that have neither.
func buildIsqrtTab8() {
	var sqrt, left uint8 = 0, 1
	for i := 0; i < 256; i++ {
		if left == 0 {
			sqrt++
			left = 2*sqrt + 1
		}
		rem := 2*sqrt + 1 - left
		isqrtTab8[i] = (sqrt&7)<<5 | rem
		left--
	}
}

func isqrt8(n uint8) (s uint8) {
	s = isqrtTab8[n] >> 5
	if n >= 64 {
		s |= 8
	}
	return s
}

func isqrt8Rem(n uint8) (s, r uint8) {
	e := isqrtTab8[n]
	s = e >> 5
	if n >= 64 {
		s |= 8
	}
	return s, e & 0x1F
}
