package crcfast

import "math/bits"

// This file implements GF(2) polynomial arithmetic on machine words:
// carry-less multiplication, modular reduction, and modular
// exponentiation. These are the primitives spec.md's key generator
// (§4.3) and combine (§4.6) are defined in terms of. Bit i of a uint64
// (or of a (hi,lo) pair for 128-bit values) holds the coefficient of
// x^i; there is no bit-reflection convention here — that is applied on
// top, where needed, by callers (generator.go).

// clmul64 computes the carry-less (GF(2) polynomial) product of a and
// b, returning the 128-bit result as (hi, lo).
func clmul64(a, b uint64) (hi, lo uint64) {
	for i := 0; i < 64; i++ {
		if (b>>uint(i))&1 == 0 {
			continue
		}
		if i == 0 {
			lo ^= a
			continue
		}
		lo ^= a << uint(i)
		hi ^= a >> uint(64-i)
	}
	return hi, lo
}

// polyDegree returns the degree of the 128-bit polynomial (hi,lo), or
// -1 for the zero polynomial.
func polyDegree(hi, lo uint64) int {
	if hi != 0 {
		return 64 + bits.Len64(hi) - 1
	}
	if lo != 0 {
		return bits.Len64(lo) - 1
	}
	return -1
}

// shiftLeft128 shifts the 128-bit value (hi,lo) left by n bits (0 <= n
// < 128), discarding any bits shifted past bit 127.
func shiftLeft128(hi, lo uint64, n int) (rhi, rlo uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n < 64:
		return (hi << uint(n)) | (lo >> uint(64-n)), lo << uint(n)
	default:
		return lo << uint(n-64), 0
	}
}

// polyFull returns the full generator polynomial (degree == width) as a
// 128-bit pair, restoring the implicit leading x^width term that the
// Rocksoft poly field omits.
func polyFull(width int, poly uint64) (hi, lo uint64) {
	if width == 64 {
		return 1, poly
	}
	return 0, (uint64(1) << uint(width)) | poly
}

// reduceMod reduces the 128-bit value (hi,lo) modulo the polynomial
// (width, poly), returning the remainder (degree < width, so it always
// fits in the low 64 bits of the result).
func reduceMod(hi, lo uint64, width int, poly uint64) uint64 {
	phi, plo := polyFull(width, poly)
	for {
		d := polyDegree(hi, lo)
		if d < width {
			return lo
		}
		shift := d - width
		shi, slo := shiftLeft128(phi, plo, shift)
		hi ^= shi
		lo ^= slo
	}
}

// mulMod computes a*b mod P(x) for the polynomial (width, poly).
func mulMod(a, b uint64, width int, poly uint64) uint64 {
	hi, lo := clmul64(a, b)
	return reduceMod(hi, lo, width, poly)
}

// powModX computes x^exp mod P(x) for the polynomial (width, poly) via
// square-and-multiply.
func powModX(exp uint64, width int, poly uint64) uint64 {
	result := uint64(1)
	base := uint64(2) // x^1
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, base, width, poly)
		}
		base = mulMod(base, base, width, poly)
	}
	return result
}

// barrettQuotientLow computes the low `width` bits of floor(x^(2*width)/P),
// i.e. the Barrett reciprocal with its guaranteed leading bit (always 1,
// at position width) dropped — the same omit-the-leading-bit convention
// the Rocksoft poly field itself uses.
func barrettQuotientLow(width int, poly uint64) uint64 {
	phi, plo := polyFull(width, poly)
	// x^(2*width) = x^width*P_full + x^width*poly, so dividing
	// x^width*poly by P_full gives the quotient's remaining (non-implicit)
	// bits directly, and this dividend always fits in 128 bits.
	hi, lo := shiftLeft128(0, poly, width)
	var quotient uint64
	for {
		d := polyDegree(hi, lo)
		if d < width {
			return quotient
		}
		shift := d - width
		shi, slo := shiftLeft128(phi, plo, shift)
		hi ^= shi
		lo ^= slo
		quotient |= uint64(1) << uint(shift)
	}
}

// reverseBitsN reverses the low n bits of v (0 < n <= 64).
func reverseBitsN(v uint64, n int) uint64 {
	return bits.Reverse64(v) >> uint(64-n)
}
