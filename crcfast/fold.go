package crcfast

import "math/bits"

// This file is the Folding Engine: it drives a CrcParams' Keys through
// an Ops tier's CLMUL primitives to fold a byte stream into a raw CRC
// register, phase by phase, the way a PCLMULQDQ/PMULL implementation
// does — eight-lane bulk folding for long inputs, single-block folding
// for the remainder, and a Barrett reduction to land on the exact
// width-bit register. Every tier (software, amd64, arm64) drives the
// exact same phases; only the Ops primitives backing them differ by
// Tier(), and on every target in this package today those primitives
// are themselves scalar (see arch.go), so this is a scalar-lane
// realization of the algorithm rather than a vector one.
//
// The engine always computes in the forward (MSB-first) convention,
// against effectivePoly (generator.go) — for reflected variants this
// is the bit-reversed polynomial table.go's reflected buildTable
// branch calls rpoly. Reflected input bytes are converted to this
// convention by reversing the bits of each byte (keeping byte order
// unchanged), the standard per-byte equivalence between a reflected
// and a non-reflected CRC of the same family; the raw register itself
// needs no reversal at either end, only the bytes do.

// foldStep advances an unreduced 128-bit accumulator by one fold
// distance and folds in the next 128-bit block, the two-constant CLMUL
// identity spec.md's Phase B/D formula describes:
//
//	acc' = clmul_ll(acc,k_lo) xor clmul_hh(acc,k_hi) xor next
//
// kLo and kHi must be constructed with the constant in the lane the
// matching Clmul variant reads (Lo for ClmulLL, Hi for ClmulHH): kLo's
// distance is x^D mod P applied against acc's low half, kHi's is
// x^(D+64) mod P applied against acc's high half.
func foldStep(ops Ops, acc, kLo, kHi, next Vec128) Vec128 {
	return ops.Xor3(ops.ClmulLL(acc, kLo), ops.ClmulHH(acc, kHi), next)
}

func reflectByte(b byte) byte { return bits.Reverse8(b) }

// reflectBlock16 returns the bit-reversal of each of b's first 16
// bytes, preserving byte order.
func reflectBlock16(b []byte) [16]byte {
	var out [16]byte
	for i := 0; i < 16; i++ {
		out[i] = reflectByte(b[i])
	}
	return out
}

func reflectTail(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = reflectByte(c)
	}
	return out
}

// loadBlock reads the first 16 bytes of b as a Vec128, reversing each
// byte's bits first when the variant is reflected.
func loadBlock(ops Ops, b []byte, reflected bool) Vec128 {
	if !reflected {
		return ops.LoadUnaligned(b)
	}
	rb := reflectBlock16(b)
	return ops.LoadUnaligned(rb[:])
}

// foldUpdate folds data into raw, the current raw register of a
// Digest using params p, and returns the new raw register. It is
// called once per Digest.Update, so it always performs a full Phase
// A-E pass (including the final Barrett reduction) over exactly the
// bytes handed to it; because a raw CRC register is, by definition,
// the exact running polynomial remainder, this is equivalent to
// running the whole engine once over the concatenation of every
// Update call, regardless of how the caller split them (spec.md's
// stream-equivalence requirement).
func foldUpdate(ops Ops, p CrcParams, raw uint64, data []byte) uint64 {
	if len(data) == 0 {
		return raw
	}

	w := int(p.Width)
	if w != 32 && w != 64 {
		panic(ErrUnsupportedWidth)
	}
	keys := p.Keys
	ep := keys.At(k8)

	kLoBlock := ops.VectorFromPair(0, keys.At(k1))
	kHiBlock := ops.VectorFromPair(keys.At(k2), 0)
	kLoBulk := ops.VectorFromPair(0, keys.At(k3))
	kHiBulk := ops.VectorFromPair(keys.At(k4), 0)

	// Phase A: seed the accumulator with the running register. An
	// unreduced accumulator represents Hi*x^64+Lo exactly, so a bare
	// register with nothing folded in yet is (Hi=0, Lo=raw) — the
	// same foldStep used for every later block also correctly folds
	// in the very first one.
	acc := ops.VectorFromPair(0, raw)

	// Phase B: eight interleaved 128-bit lanes, each advanced by one
	// 1024-bit (eight block) stride per outer iteration, for inputs
	// with at least one full 128-byte group (the head block is lane 0
	// of that first group).
	if len(data) >= 8*16 {
		blk := loadBlock(ops, data[0:16], p.Reflected)

		var lanes [8]Vec128
		lanes[0] = foldStep(ops, acc, kLoBlock, kHiBlock, blk)
		for i := 1; i < 8; i++ {
			lanes[i] = loadBlock(ops, data[i*16:i*16+16], p.Reflected)
		}
		data = data[8*16:]

		for len(data) >= 8*16 {
			for i := 0; i < 8; i++ {
				next := loadBlock(ops, data[i*16:i*16+16], p.Reflected)
				lanes[i] = foldStep(ops, lanes[i], kLoBulk, kHiBulk, next)
			}
			data = data[8*16:]
		}

		acc = lanes[0]
		for i := 1; i < 8; i++ {
			acc = foldStep(ops, acc, kLoBlock, kHiBlock, lanes[i])
		}
	}

	// Phase D: fold any remaining full 128-bit blocks one at a time.
	for len(data) >= 16 {
		next := loadBlock(ops, data, p.Reflected)
		acc = foldStep(ops, acc, kLoBlock, kHiBlock, next)
		data = data[16:]
	}

	// Phase E: collapse the 128-bit accumulator to the working
	// register width and Barrett-reduce it modulo ep.
	result := barrettFinalize(acc, w, ep, keys.At(k5), keys.At(k7))

	// Sub-block tail (0-15 bytes): continue the forward-domain
	// register through the table engine, the same bytes-in/poly-out
	// convention finalize just produced, rather than hand-rolling a
	// partial-vector merge for a tail this short.
	if len(data) > 0 {
		tailData := data
		if p.Reflected {
			tailData = reflectTail(data)
		}
		tbl := globalTableCache.Get(p.Width, ep, false)
		result = tbl.stepBytes(result, tailData)
	}

	return result & widthMask(w)
}

// barrettFinalize reduces a 128-bit unreduced accumulator to a
// width-bit register modulo the polynomial ep, using mu = floor(x^(2*
// width)/ep) (k7) as the Barrett reciprocal and k5 = x^64 mod ep to
// collapse the accumulator under Barrett's degree-<2*width
// precondition when width < 64.
//
// For width==64 the accumulator's degree is already <128 = 2*width,
// so no collapse is needed; the Barrett quotient is read from the high
// half directly. For width==32 a single collapse isn't always enough
// (an accumulator of degree up to 127 needs two), so it is applied
// exactly twice, which always leaves degree <=63 < 64 = 2*width: each
// collapse replaces a degree-d value (d>=64) with one of degree <=
// max(63, d-64+(width-1)), and iterating that bound from 127 twice
// lands at <=63 for width==32.
func barrettFinalize(acc Vec128, width int, ep, k5, mu uint64) uint64 {
	hi, lo := acc.Hi, acc.Lo
	if width < 64 {
		hi, lo = foldHalf(hi, lo, k5)
		hi, lo = foldHalf(hi, lo, k5)
	}

	var q uint64
	if width == 64 {
		q, _ = clmul64(hi, mu)
	} else {
		q, _ = clmul64(lo, mu)
	}

	phi, plo := shiftLeft128(0, q, width)
	mhi, mlo := clmul64(q, ep)
	phi ^= mhi
	plo ^= mlo

	_ = hi ^ phi // cancels to 0 by construction of Barrett reduction
	return (lo ^ plo) & widthMask(width)
}

// foldHalf re-expresses Hi*x^64+Lo modulo ep as a value with the same
// Lo half and a (generally smaller) Hi half, substituting x^64 ≡ k
// (k = x^64 mod ep, degree < width <= 64).
func foldHalf(hi, lo, k uint64) (nhi, nlo uint64) {
	h, l := clmul64(hi, k)
	return h, l ^ lo
}
