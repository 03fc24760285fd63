package crcfast

import "testing"

// checkInput is the Rocksoft catalogue's standard self-check string.
var checkInput = []byte("123456789")

func TestCatalogueCheckValues(t *testing.T) {
	for alg, p := range catalogue {
		alg, p := alg, p
		t.Run(p.Name, func(t *testing.T) {
			got := Checksum(alg, checkInput)
			if got != p.Check {
				t.Errorf("%s: Checksum(\"123456789\") = %#x, want %#x", p.Name, got, p.Check)
			}
		})
	}
}

func TestCatalogueCustomSentinelsNotCatalogued(t *testing.T) {
	if _, ok := catalogue[CRC32Custom]; ok {
		t.Error("CRC32Custom must not be catalogued")
	}
	if _, ok := catalogue[CRC64Custom]; ok {
		t.Error("CRC64Custom must not be catalogued")
	}
}

func TestLookupPanicsOnCustom(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Lookup(CRC32Custom) should panic")
		}
	}()
	Lookup(CRC32Custom)
}

func TestAlgorithmStringMatchesName(t *testing.T) {
	if got := CRC32IsoHdlc.String(); got != "CRC-32/ISO-HDLC" {
		t.Errorf("String() = %q, want %q", got, "CRC-32/ISO-HDLC")
	}
}

func TestNewBuildsCustomAlgorithm(t *testing.T) {
	p, err := New("custom-32", Width32, 0x04C11DB7, 0xFFFFFFFF, true, 0xFFFFFFFF, 0xCBF43926)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Algorithm != CRC32Custom {
		t.Errorf("Algorithm = %v, want CRC32Custom", p.Algorithm)
	}
	// These parameters are ISO-HDLC's, so the check value must match.
	if got := ChecksumWithParams(p, checkInput); got != p.Check {
		t.Errorf("Checksum = %#x, want %#x", got, p.Check)
	}
}

func TestNewRejectsBadWidth(t *testing.T) {
	if _, err := New("bad", Width(16), 0, 0, false, 0, 0); err != ErrUnsupportedWidth {
		t.Fatalf("expected ErrUnsupportedWidth, got %v", err)
	}
}
