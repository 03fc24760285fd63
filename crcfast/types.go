package crcfast

import "errors"

// Width is the register width of a CRC variant, in bits.
type Width int

const (
	Width32 Width = 32
	Width64 Width = 64
)

// ErrUnsupportedWidth is returned when a width other than 32 or 64 is
// requested of a constructor. The folding engine itself (foldUpdate)
// treats an unsupported width as a programming error and panics; constructors
// that take a width as user input report it instead.
var ErrUnsupportedWidth = errors.New("crcfast: unsupported width (must be 32 or 64)")

// ErrMismatchedReflection names the refin != refout condition. This
// library only models variants where the two agree, exposed as a
// single Reflected flag (spec invariant I4), so New cannot be handed
// mismatched values and no function in this package returns this
// error.
var ErrMismatchedReflection = errors.New("crcfast: refin and refout must agree")

// Algorithm identifies a catalogued CRC variant, or one of the two
// custom sentinels used by parameters built with New.
type Algorithm int

const (
	CRC32Aixm Algorithm = iota
	CRC32Autosar
	CRC32Base91D
	CRC32Bzip2
	CRC32CdromEdc
	CRC32Cksum
	CRC32Iscsi
	CRC32IsoHdlc
	CRC32Jamcrc
	CRC32Mpeg2
	CRC32Xfer
	CRC32Custom

	CRC64Ecma182
	CRC64GoIso
	CRC64Ms
	CRC64Nvme
	CRC64Redis
	CRC64We
	CRC64Xz
	CRC64Custom
)

// String returns the catalogue name of the algorithm, matching the name
// field of its CrcParams.
func (a Algorithm) String() string {
	if p, ok := catalogue[a]; ok {
		return p.Name
	}
	return "unknown"
}

// CrcParams is an immutable description of one CRC variant (Rocksoft
// model): algorithm tag, human name, register width, generator
// polynomial, initial register value, reflection mode, final xor value,
// the conventional check value for "123456789", and the folding-constant
// vector used by the accelerated engine.
type CrcParams struct {
	Algorithm  Algorithm
	Name       string
	Width      Width
	Polynomial uint64
	Init       uint64
	Reflected  bool
	XorOut     uint64
	Check      uint64
	Keys       KeyStorage
}

// Lookup returns the CrcParams for a catalogued algorithm. It panics if
// alg is not catalogued (CRC32Custom/CRC64Custom are never catalogued;
// use New to build parameters for those).
func Lookup(alg Algorithm) CrcParams {
	p, ok := catalogue[alg]
	if !ok {
		panic("crcfast: " + alg.String() + " is not a catalogued algorithm")
	}
	return p
}

// New builds custom CrcParams, consulting the key cache for the folding
// constants. refin and refout are modeled as a single Reflected flag
// (I4); callers migrating from a Rocksoft definition with refin != refout
// cannot be represented and should use ErrMismatchedReflection's caller
// contract: validate refin == refout before calling New.
func New(name string, width Width, poly, init uint64, reflected bool, xorout, check uint64) (CrcParams, error) {
	if width != Width32 && width != Width64 {
		return CrcParams{}, ErrUnsupportedWidth
	}
	algo := CRC32Custom
	if width == Width64 {
		algo = CRC64Custom
	}
	keys := globalKeyCache.Get(width, poly, reflected)
	return CrcParams{
		Algorithm:  algo,
		Name:       name,
		Width:      width,
		Polynomial: poly,
		Init:       init,
		Reflected:  reflected,
		XorOut:     xorout,
		Check:      check,
		Keys:       keys,
	}, nil
}

// mask returns a bitmask with the low p.Width bits set, used throughout
// to keep 32-bit variants confined to the low half of a uint64 register.
func (p *CrcParams) mask() uint64 {
	if p.Width == Width32 {
		return 0xFFFFFFFF
	}
	return 0xFFFFFFFFFFFFFFFF
}
