package crcfast

// Checksum computes the CRC of data in one call for a catalogued
// algorithm.
func Checksum(alg Algorithm, data []byte) uint64 {
	return ChecksumWithParams(Lookup(alg), data)
}

// ChecksumWithParams computes the CRC of data in one call for
// arbitrary parameters.
func ChecksumWithParams(p CrcParams, data []byte) uint64 {
	d := NewDigestWithParams(p)
	d.Update(data)
	return d.Finalize()
}
