package crcfast

// Key slot indices, 1-indexed per the folding-constant literature; slot
// 0 is unused so the constants below can be used directly as array
// indices into KeyStorage.
const (
	_ = iota
	k1
	k2
	k3
	k4
	k5
	k6
	k7 // Barrett reciprocal mu
	k8 // effective polynomial the engine reduces against
	k9
	k10
	k11
	k12
	k13
	k14
	k15
	k16
	k17
	k18
	k19
	k20
	numKeys = k20
)

// keyFormat tags which layout a KeyStorage holds. The current format is
// a fixed 21-entry (slot 0 unused, 1..20 populated) array with no slots
// past 20, so At returns zero for indices 21 and up; future.layout
// exists so a KeyStorage built by a newer generator with a longer
// folding-distance vector can still be read by code that only knows
// about the first 20 slots, per spec.md's forward-compatibility note.
type keyFormat int

const (
	keyFormatV1 keyFormat = iota
	keyFormatFuture
)

// KeyStorage holds a CRC variant's folding constants. It is a tagged
// container rather than a bare array so a future generator can grow the
// vector without breaking callers that only read slots 1..20: At
// returns zero for any index the held format does not populate.
type KeyStorage struct {
	format keyFormat
	v1     [numKeys + 1]uint64
	future []uint64
}

// newKeyStorageV1 builds a KeyStorage in the current 21-slot format from
// a generator result indexed 1..20 (slot 0 ignored).
func newKeyStorageV1(values [numKeys + 1]uint64) KeyStorage {
	return KeyStorage{format: keyFormatV1, v1: values}
}

// At returns the folding constant at the given 1-indexed slot, or zero
// if the slot is out of range for the held format. It never panics.
func (k KeyStorage) At(index int) uint64 {
	switch k.format {
	case keyFormatV1:
		if index < 0 || index >= len(k.v1) {
			return 0
		}
		return k.v1[index]
	case keyFormatFuture:
		if index < 0 || index >= len(k.future) {
			return 0
		}
		return k.future[index]
	default:
		return 0
	}
}
