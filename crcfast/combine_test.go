package crcfast

import "testing"

func TestChecksumCombineMatchesWholeMessage(t *testing.T) {
	a := []byte("the first half of the message, ")
	b := []byte("and the second half of it.")
	whole := append(append([]byte{}, a...), b...)

	for alg := range catalogue {
		want := Checksum(alg, whole)
		crcA := Checksum(alg, a)
		crcB := Checksum(alg, b)
		got := ChecksumCombine(Lookup(alg), crcA, crcB, int64(len(b)))
		if got != want {
			t.Errorf("%v: combine = %#x, want %#x", alg, got, want)
		}
	}
}

func TestDigestCombineMatchesWholeMessage(t *testing.T) {
	a := make([]byte, 777)
	b := make([]byte, 333)
	for i := range a {
		a[i] = byte(i)
	}
	for i := range b {
		b[i] = byte(255 - i)
	}
	whole := append(append([]byte{}, a...), b...)

	want := Checksum(CRC32IsoHdlc, whole)

	da := NewDigest(CRC32IsoHdlc)
	da.Update(a)
	db := NewDigest(CRC32IsoHdlc)
	db.Update(b)
	if err := da.Combine(db); err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if got := da.Finalize(); got != want {
		t.Errorf("Digest.Combine = %#x, want %#x", got, want)
	}
}

func TestDigestCombineRejectsIncompatibleParams(t *testing.T) {
	d32 := NewDigest(CRC32IsoHdlc)
	d64 := NewDigest(CRC64Xz)
	if err := d32.Combine(d64); err != ErrIncompatibleParams {
		t.Fatalf("expected ErrIncompatibleParams, got %v", err)
	}
}

func TestChecksumCombineEmptySecondSegment(t *testing.T) {
	a := []byte("only one piece")
	crcA := Checksum(CRC32Bzip2, a)
	crcB := Checksum(CRC32Bzip2, nil)
	got := ChecksumCombine(Lookup(CRC32Bzip2), crcA, crcB, 0)
	if got != crcA {
		t.Errorf("combining with an empty segment changed the checksum: %#x vs %#x", got, crcA)
	}
}
