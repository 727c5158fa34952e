package isqrt

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// Largest value each unsigned engine can return: the root of a W-bit value
// always fits in W/2 bits (width 8 has no narrower type and bounds the root
// at 15 instead).
const (
	MaxRootUint8  uint8  = 15
	MaxRootUint16 uint16 = 1<<8 - 1
	MaxRootUint32 uint32 = 1<<16 - 1
	MaxRootUint64 uint64 = 1<<32 - 1
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}

	// MaxRootU128 is the root of MaxU128; the 128-bit engines never return
	// anything larger.
	MaxRootU128 = U128{hi: 0, lo: maxUint64}

	zeroU128 U128
	zeroI128 I128
)
