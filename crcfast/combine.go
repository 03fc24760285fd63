package crcfast

// shiftRegister advances a raw (xorout-free) CRC register as if nBytes
// zero bytes had been folded into it, without touching any actual
// data. This is the "shift_crc" operator spec.md §4.6 calls for:
// multiplication by x^(8*nBytes) mod P(x), computed by repeated
// squaring over the same carry-less-multiply primitive the folding
// engine and the generator both use (powModX/mulMod, polynomial.go).
//
// Forward registers already sit in the polynomial coefficient domain
// (bit i of the register is the coefficient of x^i, matching
// buildTable's non-reflected construction). Reflected registers sit in
// the bit-reversed domain the reflected table construction produces,
// so they are un-reflected before the multiply and re-reflected after.
func shiftRegister(reg uint64, nBytes int64, width int, poly uint64, reflected bool) uint64 {
	if reflected {
		reg = reverseBitsN(reg, width)
	}
	exp := uint64(nBytes) * 8
	shift := powModX(exp, width, poly)
	reg = mulMod(reg, shift, width, poly)
	if reflected {
		reg = reverseBitsN(reg, width)
	}
	return reg
}

// combineRaw merges two raw (xorout-free, but init-relative) register
// states, where rawB came from a stream that was logically continued
// from the same initial value as rawA's stream rather than started
// fresh at zero. The derivation: CRC folding is an affine map of the
// register, so f(init, A++B) = shift(f(init,A), len(B)) XOR f(0, B),
// and f(0, B) = rawB XOR shift(init, len(B)).
func combineRaw(p CrcParams, rawA, rawB uint64, lenB int64) uint64 {
	width := int(p.Width)
	shiftedA := shiftRegister(rawA, lenB, width, p.Polynomial, p.Reflected)
	shiftedInit := shiftRegister(p.Init&p.mask(), lenB, width, p.Polynomial, p.Reflected)
	return (shiftedA ^ rawB ^ shiftedInit) & p.mask()
}

// ChecksumCombine computes the checksum of the concatenation of two
// byte sequences from their already-finalized checksums, without
// touching either sequence's bytes: crcA is the checksum of a sequence
// A, crcB is the checksum of a sequence B computed under the same
// CrcParams (same Init), and lenB is the length of B in bytes.
func ChecksumCombine(p CrcParams, crcA, crcB uint64, lenB int64) uint64 {
	rawA := crcA ^ p.XorOut
	rawB := crcB ^ p.XorOut
	combined := combineRaw(p, rawA, rawB, lenB)
	return (combined ^ p.XorOut) & p.mask()
}
