package crcfast

import "errors"

// ErrIncompatibleParams is returned by Digest.Combine when the two
// digests were not built from the same width/polynomial/reflection.
var ErrIncompatibleParams = errors.New("crcfast: digests use incompatible CRC parameters")

// Digest is a streaming, copyable CRC computation in progress. The
// zero value is not usable; construct one with NewDigest,
// NewDigestWithParams, or NewDigestWithInitState.
type Digest struct {
	params CrcParams
	raw    uint64 // register value, pre-xorout
	amount uint64 // bytes folded in so far
}

// initRegister returns the starting register value for params: the
// Init field masked to the register width. Reflected and forward
// registers both start here unmodified — the reflected table
// construction already encodes the bit-reversed recurrence, so no
// separate reversal of Init is needed (and every catalogued reflected
// variant's Init is 0 or all-ones, values a bit reversal would not
// change anyway).
func initRegister(p CrcParams) uint64 {
	return p.Init & p.mask()
}

// NewDigest starts a streaming computation for a catalogued algorithm.
func NewDigest(alg Algorithm) *Digest {
	return NewDigestWithParams(Lookup(alg))
}

// NewDigestWithParams starts a streaming computation for arbitrary
// parameters, such as those returned by New.
func NewDigestWithParams(p CrcParams) *Digest {
	return &Digest{
		params: p,
		raw:    initRegister(p),
	}
}

// NewDigestWithInitState resumes a streaming computation from a raw
// register state and byte count previously obtained from GetState and
// GetAmount — for example, one persisted across a process restart.
func NewDigestWithInitState(p CrcParams, state, amount uint64) *Digest {
	return &Digest{
		params: p,
		raw:    state & p.mask(),
		amount: amount,
	}
}

// Update folds data into the digest. It never returns an error; data
// of any length, including zero, is valid.
func (d *Digest) Update(data []byte) {
	if len(data) == 0 {
		return
	}
	if iscsiFusionEligible(d.params, len(data)) {
		d.raw = foldISCSI(d.raw, data)
	} else {
		d.raw = foldUpdate(currentOps(), d.params, d.raw, data)
	}
	d.amount += uint64(len(data))
}

// Finalize returns the checksum of everything folded in so far,
// without resetting the digest — further Update calls continue from
// the same state.
func (d *Digest) Finalize() uint64 {
	return (d.raw ^ d.params.XorOut) & d.params.mask()
}

// FinalizeReset returns the checksum as Finalize does, then resets the
// digest to start a fresh computation.
func (d *Digest) FinalizeReset() uint64 {
	v := d.Finalize()
	d.Reset()
	return v
}

// Reset returns the digest to its just-constructed state.
func (d *Digest) Reset() {
	d.raw = initRegister(d.params)
	d.amount = 0
}

// GetState returns the current raw register value (before xorout is
// applied), for checkpointing with NewDigestWithInitState.
func (d *Digest) GetState() uint64 {
	return d.raw
}

// GetAmount returns the number of bytes folded into the digest so far.
func (d *Digest) GetAmount() uint64 {
	return d.amount
}

// Combine merges other into d as if other's bytes had been appended to
// d's input stream directly, without having to re-fold any bytes.
// Both digests must share the same width, polynomial and reflection.
func (d *Digest) Combine(other *Digest) error {
	if d.params.Width != other.params.Width ||
		d.params.Polynomial != other.params.Polynomial ||
		d.params.Reflected != other.params.Reflected {
		return ErrIncompatibleParams
	}
	d.raw = combineRaw(d.params, d.raw, other.raw, int64(other.amount))
	d.amount += other.amount
	return nil
}
