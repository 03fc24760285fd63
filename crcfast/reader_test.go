package crcfast

import (
	"bytes"
	"testing"
)

func TestReaderComputesChecksumWhileReading(t *testing.T) {
	data := bytes.Repeat([]byte("stream me please "), 1000)
	r := NewReader(bytes.NewReader(data), CRC32IsoHdlc)

	var out bytes.Buffer
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			break
		}
	}

	if !bytes.Equal(out.Bytes(), data) {
		t.Fatal("Reader did not pass through all bytes unchanged")
	}
	if got, want := r.Checksum(), Checksum(CRC32IsoHdlc, data); got != want {
		t.Errorf("Reader.Checksum() = %#x, want %#x", got, want)
	}
}

func TestCopyComputesChecksum(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 100000) // forces multiple default-size chunks
	d := NewDigest(CRC64Nvme)

	var out bytes.Buffer
	n, err := Copy(&out, bytes.NewReader(data), d)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("Copy returned %d bytes, want %d", n, len(data))
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Fatal("Copy corrupted data in transit")
	}
	if got, want := d.Finalize(), Checksum(CRC64Nvme, data); got != want {
		t.Errorf("Copy digest = %#x, want %#x", got, want)
	}
}
