package crcfast

// softwareOps is the universal fallback tier: no CPU feature
// requirements, selected when detection finds nothing better, or when
// CRCFAST_NO_SIMD forces it. It backs the Folding Engine the same way
// every other tier does (baseOps' scalar GF(2) arithmetic); only its
// Tier() differs.
type softwareOps struct{ baseOps }

func (softwareOps) Tier() Tier {
	return Tier{Arch: "software", Family: "clmul", Features: []string{"portable"}}
}
