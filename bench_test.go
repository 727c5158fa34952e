package isqrt

import "testing"

var (
	BenchUint8Result  uint8
	BenchUint16Result uint16
	BenchUint32Result uint32
	BenchUint64Result uint64
	BenchU128Result   U128
	BenchInt64Result  int64
)

var (
	benchUint8Inputs  = []uint8{0, 1, 99, 144, 255}
	benchUint16Inputs = []uint16{0, 1, 255, 10000, 65535}
	benchUint32Inputs = []uint32{0, 1, 65535, 1000000007, 4294967295}
	benchUint64Inputs = []uint64{0, 1, 4294967295, 3689348814741910323, 18446744073709551615}
	benchU128Inputs   = []U128{
		{0, 0},
		{0, 18446744073709551615},
		{1, 0},
		{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
	}
)

func BenchmarkBinaryUint8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint8Result = BinaryUint8(benchUint8Inputs[i%len(benchUint8Inputs)])
	}
}

func BenchmarkFloatUint8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint8Result = FloatUint8(benchUint8Inputs[i%len(benchUint8Inputs)])
	}
}

func BenchmarkKaratsubaUint8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint8Result = KaratsubaUint8(benchUint8Inputs[i%len(benchUint8Inputs)])
	}
}

func BenchmarkBinaryUint16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint16Result = BinaryUint16(benchUint16Inputs[i%len(benchUint16Inputs)])
	}
}

func BenchmarkFloatUint16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint16Result = FloatUint16(benchUint16Inputs[i%len(benchUint16Inputs)])
	}
}

func BenchmarkKaratsubaUint16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint16Result = KaratsubaUint16(benchUint16Inputs[i%len(benchUint16Inputs)])
	}
}

func BenchmarkBinaryUint32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint32Result = BinaryUint32(benchUint32Inputs[i%len(benchUint32Inputs)])
	}
}

func BenchmarkFloatUint32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint32Result = FloatUint32(benchUint32Inputs[i%len(benchUint32Inputs)])
	}
}

func BenchmarkKaratsubaUint32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint32Result = KaratsubaUint32(benchUint32Inputs[i%len(benchUint32Inputs)])
	}
}

func BenchmarkBinaryUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BinaryUint64(benchUint64Inputs[i%len(benchUint64Inputs)])
	}
}

func BenchmarkFloatUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = FloatUint64(benchUint64Inputs[i%len(benchUint64Inputs)])
	}
}

func BenchmarkKaratsubaUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = KaratsubaUint64(benchUint64Inputs[i%len(benchUint64Inputs)])
	}
}

func BenchmarkBinaryU128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = BinaryU128(benchU128Inputs[i%len(benchU128Inputs)])
	}
}

func BenchmarkFloatU128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = FloatU128(benchU128Inputs[i%len(benchU128Inputs)])
	}
}

func BenchmarkKaratsubaU128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = KaratsubaU128(benchU128Inputs[i%len(benchU128Inputs)])
	}
}

func BenchmarkCheckedInt64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result, _ = CheckedInt64(int64(benchUint64Inputs[i%len(benchUint64Inputs)] >> 1))
	}
}
