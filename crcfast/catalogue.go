package crcfast

// catalogue holds the published Rocksoft model parameters for every CRC
// variant this package knows by name (the reveng.sourceforge.net
// catalogue entries crc-fast-rust's own CrcAlgorithm enum is drawn
// from). Folding constants are generated once, at package init, via
// the same globalKeyCache every custom New call uses — a catalogued
// variant is not special-cased arithmetic, only a pre-filled
// CrcParams.
var catalogue = map[Algorithm]CrcParams{
	CRC32Aixm: {
		Algorithm: CRC32Aixm, Name: "CRC-32/AIXM", Width: Width32,
		Polynomial: 0x814141AB, Init: 0x00000000, Reflected: false,
		XorOut: 0x00000000, Check: 0x3010BF7F,
	},
	CRC32Autosar: {
		Algorithm: CRC32Autosar, Name: "CRC-32/AUTOSAR", Width: Width32,
		Polynomial: 0xF4ACFB13, Init: 0xFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFF, Check: 0x1697D06A,
	},
	CRC32Base91D: {
		Algorithm: CRC32Base91D, Name: "CRC-32/BASE91-D", Width: Width32,
		Polynomial: 0xA833982B, Init: 0xFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFF, Check: 0x87315576,
	},
	CRC32Bzip2: {
		Algorithm: CRC32Bzip2, Name: "CRC-32/BZIP2", Width: Width32,
		Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, Reflected: false,
		XorOut: 0xFFFFFFFF, Check: 0xFC891918,
	},
	CRC32CdromEdc: {
		Algorithm: CRC32CdromEdc, Name: "CRC-32/CD-ROM-EDC", Width: Width32,
		Polynomial: 0x8001801B, Init: 0x00000000, Reflected: true,
		XorOut: 0x00000000, Check: 0x6EC2EDC4,
	},
	CRC32Cksum: {
		Algorithm: CRC32Cksum, Name: "CRC-32/CKSUM", Width: Width32,
		Polynomial: 0x04C11DB7, Init: 0x00000000, Reflected: false,
		XorOut: 0xFFFFFFFF, Check: 0x765E7680,
	},
	CRC32Iscsi: {
		Algorithm: CRC32Iscsi, Name: "CRC-32/ISCSI", Width: Width32,
		Polynomial: 0x1EDC6F41, Init: 0xFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFF, Check: 0xE3069283,
	},
	CRC32IsoHdlc: {
		Algorithm: CRC32IsoHdlc, Name: "CRC-32/ISO-HDLC", Width: Width32,
		Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFF, Check: 0xCBF43926,
	},
	CRC32Jamcrc: {
		Algorithm: CRC32Jamcrc, Name: "CRC-32/JAMCRC", Width: Width32,
		Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, Reflected: true,
		XorOut: 0x00000000, Check: 0x340BC6D9,
	},
	CRC32Mpeg2: {
		Algorithm: CRC32Mpeg2, Name: "CRC-32/MPEG-2", Width: Width32,
		Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, Reflected: false,
		XorOut: 0x00000000, Check: 0x0376E6E7,
	},
	CRC32Xfer: {
		Algorithm: CRC32Xfer, Name: "CRC-32/XFER", Width: Width32,
		Polynomial: 0x000000AF, Init: 0x00000000, Reflected: false,
		XorOut: 0x00000000, Check: 0xBD0BE338,
	},

	CRC64Ecma182: {
		Algorithm: CRC64Ecma182, Name: "CRC-64/ECMA-182", Width: Width64,
		Polynomial: 0x42F0E1EBA9EA3693, Init: 0x0000000000000000, Reflected: false,
		XorOut: 0x0000000000000000, Check: 0x6C40DF5F0B497347,
	},
	CRC64GoIso: {
		Algorithm: CRC64GoIso, Name: "CRC-64/GO-ISO", Width: Width64,
		Polynomial: 0x000000000000001B, Init: 0xFFFFFFFFFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFFFFFFFFFF, Check: 0xB90956C775A41001,
	},
	CRC64Ms: {
		Algorithm: CRC64Ms, Name: "CRC-64/MS", Width: Width64,
		Polynomial: 0x259C84CBA6426349, Init: 0xFFFFFFFFFFFFFFFF, Reflected: true,
		XorOut: 0x0000000000000000, Check: 0x75D4B74F024ECEEA,
	},
	CRC64Nvme: {
		Algorithm: CRC64Nvme, Name: "CRC-64/NVME", Width: Width64,
		Polynomial: 0xAD93D23594C93659, Init: 0xFFFFFFFFFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFFFFFFFFFF, Check: 0xAE8B14860A799888,
	},
	CRC64Redis: {
		Algorithm: CRC64Redis, Name: "CRC-64/REDIS", Width: Width64,
		Polynomial: 0xAD93D23594C935A9, Init: 0x0000000000000000, Reflected: true,
		XorOut: 0x0000000000000000, Check: 0xE9C6D914C4B8D9CA,
	},
	CRC64We: {
		Algorithm: CRC64We, Name: "CRC-64/WE", Width: Width64,
		Polynomial: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, Reflected: false,
		XorOut: 0xFFFFFFFFFFFFFFFF, Check: 0x62EC59E3F1A4F00A,
	},
	CRC64Xz: {
		Algorithm: CRC64Xz, Name: "CRC-64/XZ", Width: Width64,
		Polynomial: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, Reflected: true,
		XorOut: 0xFFFFFFFFFFFFFFFF, Check: 0x995DC9BBDF1939FA,
	},
}

func init() {
	for alg, p := range catalogue {
		p.Keys = globalKeyCache.Get(p.Width, p.Polynomial, p.Reflected)
		catalogue[alg] = p
	}
}
