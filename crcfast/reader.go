package crcfast

import "io"

// defaultChunkSize is the size of the buffer Copy reads into; it is
// fixed and not configurable by the caller.
const defaultChunkSize = 512 * 1024

// Reader wraps an io.Reader, folding every byte that passes through
// Read into an internal Digest.
type Reader struct {
	r io.Reader
	d *Digest
}

// NewReader wraps r, computing alg's checksum over everything read
// from the returned Reader.
func NewReader(r io.Reader, alg Algorithm) *Reader {
	return &Reader{r: r, d: NewDigest(alg)}
}

func (rd *Reader) Read(p []byte) (int, error) {
	n, err := rd.r.Read(p)
	if n > 0 {
		rd.d.Update(p[:n])
	}
	return n, err
}

// Checksum returns the checksum of everything read so far.
func (rd *Reader) Checksum() uint64 {
	return rd.d.Finalize()
}

// Digest exposes the underlying Digest for combine/checkpoint use.
func (rd *Reader) Digest() *Digest {
	return rd.d
}

// Copy streams src to dst in defaultChunkSize chunks, folding every
// byte read into d, and returns the number of bytes copied.
func Copy(dst io.Writer, src io.Reader, d *Digest) (int64, error) {
	buf := make([]byte, defaultChunkSize)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
			wn, werr := dst.Write(buf[:n])
			total += int64(wn)
			if werr != nil {
				return total, werr
			}
			if wn != n {
				return total, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}
