package crcfast

import "testing"

func TestClmul64Identity(t *testing.T) {
	hi, lo := clmul64(0x1234567890ABCDEF, 1)
	if hi != 0 || lo != 0x1234567890ABCDEF {
		t.Fatalf("a*1 = a: got hi=%#x lo=%#x", hi, lo)
	}
}

func TestClmul64Zero(t *testing.T) {
	hi, lo := clmul64(0xFFFFFFFFFFFFFFFF, 0)
	if hi != 0 || lo != 0 {
		t.Fatalf("a*0 = 0: got hi=%#x lo=%#x", hi, lo)
	}
}

func TestClmul64Commutative(t *testing.T) {
	a, b := uint64(0x9E3779B97F4A7C15), uint64(0xC2B2AE3D27D4EB4F)
	hi1, lo1 := clmul64(a, b)
	hi2, lo2 := clmul64(b, a)
	if hi1 != hi2 || lo1 != lo2 {
		t.Fatalf("clmul64 not commutative: (%#x,%#x) vs (%#x,%#x)", hi1, lo1, hi2, lo2)
	}
}

func TestPowModXZeroIsOne(t *testing.T) {
	got := powModX(0, 32, 0x04C11DB7)
	if got != 1 {
		t.Fatalf("x^0 mod P = 1, got %#x", got)
	}
}

func TestMulModReduces(t *testing.T) {
	const width, poly = 32, uint64(0x04C11DB7)
	// x^width mod P must have degree < width.
	got := powModX(width, width, poly)
	if got>>width != 0 {
		t.Fatalf("residue has degree >= width: %#x", got)
	}
}

func TestReverseBitsNSelfInverse(t *testing.T) {
	v := uint64(0xA5)
	if got := reverseBitsN(reverseBitsN(v, 8), 8); got != v {
		t.Fatalf("reverseBitsN not self-inverse: got %#x want %#x", got, v)
	}
	v32 := uint64(0x12345678)
	if got := reverseBitsN(reverseBitsN(v32, 32), 32); got != v32 {
		t.Fatalf("reverseBitsN(.,32) not self-inverse: got %#x want %#x", got, v32)
	}
}

func TestReverseBitsNKnownValue(t *testing.T) {
	// 0b1000_0000 reversed over 8 bits is 0b0000_0001.
	if got := reverseBitsN(0x80, 8); got != 0x01 {
		t.Fatalf("reverseBitsN(0x80,8) = %#x, want 0x01", got)
	}
}

func TestBarrettQuotientLowDegree(t *testing.T) {
	const width, poly = 32, uint64(0x04C11DB7)
	mu := barrettQuotientLow(width, poly)
	if mu>>width != 0 {
		t.Fatalf("barrett quotient has degree >= width: %#x", mu)
	}
}
