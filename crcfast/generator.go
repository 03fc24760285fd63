package crcfast

// GenerateKeys computes the full folding-constant vector for a CRC
// variant from nothing but its (width, poly, reflected) triple — the
// constants never depend on init/xorout/check (I3).
//
// The generic Folding Engine (fold.go) always computes in the
// forward/MSB-first convention against effectivePoly, which for
// reflected variants is the bit-reversed polynomial table.go's
// reflected buildTable branch calls rpoly; reflected input bytes are
// converted to this domain at load time instead (see fold.go), so
// every key below is generated once, in one convention, regardless of
// the variant's own bit order.
//
// k1/k2 are the two-constant fold pair for advancing an unreduced
// 128-bit accumulator by one 128-bit block (spec.md's Phase D); k3/k4
// are the same pair for an eight-block, 1024-bit bulk stride (Phase
// B); k5 is the single-constant half-fold spec.md's Phase E collapses
// a 128-bit accumulator with before Barrett reduction; k7 is the
// Barrett reciprocal and k8 the working polynomial the final
// reduction divides by.
//
// k6 and k9..k20 retain spec.md's original width-scaled
// folding-distance schema (the fold distances a variant's own width
// multiplies by) for slot-layout compatibility with a future
// wide-tier specialization; the shipped engine does not read them —
// see DESIGN.md.
func GenerateKeys(width Width, poly uint64, reflected bool) KeyStorage {
	w := int(width)
	ep := effectivePoly(w, poly, reflected)
	var values [numKeys + 1]uint64

	values[k1] = powModX(128, w, ep)
	values[k2] = powModX(192, w, ep)
	values[k3] = powModX(1024, w, ep)
	values[k4] = powModX(1088, w, ep)
	values[k5] = powModX(64, w, ep)

	values[k7] = barrettQuotientLow(w, ep)
	values[k8] = ep

	values[k6] = residue(2*w, w, poly, reflected)
	reduceDistances := [12]int{27, 29, 23, 25, 19, 21, 15, 17, 11, 13, 7, 9}
	for i, m := range reduceDistances {
		values[k9+i] = residue(m*w, w, poly, reflected)
	}

	return newKeyStorageV1(values)
}

// effectivePoly returns the polynomial the generic Folding Engine
// actually divides by: poly itself in forward mode, or its bit
// reversal in reflected mode — the same rpoly table.go's reflected
// buildTable branch computes.
func effectivePoly(width int, poly uint64, reflected bool) uint64 {
	if !reflected {
		return poly
	}
	return reverseBitsN(poly, width)
}

// residue computes x^exp mod P(x) and, for reflected variants, puts it
// into the bit-reversed lane layout the hardware CLMUL convention
// uses: the residue's low `width` bits are reversed, and for 32-bit
// variants the result is additionally shifted into the upper word of
// the 64-bit slot. Used only for the reserved k6/k9..k20 slots; the
// active fold distances above are generated directly against
// effectivePoly instead.
func residue(exp, width int, poly uint64, reflected bool) uint64 {
	v := powModX(uint64(exp), width, poly)
	if !reflected {
		return v
	}
	v = reverseBitsN(v, width)
	if width == 32 {
		v <<= 32
	}
	return v
}

// polyImage returns the folding-constant representation of the
// generator polynomial itself: the bare poly value in forward mode, or
// its bit-reversed form with an appended unit bit in reflected mode
// (the conventional "P'" constant used to fix up the degree-(width-1)
// top bit that bit-reversal otherwise loses).
func polyImage(width int, poly uint64, reflected bool) uint64 {
	if !reflected {
		return poly
	}
	return (reverseBitsN(poly, width) << 1) | 1
}
