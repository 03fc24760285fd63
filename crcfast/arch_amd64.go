package crcfast

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// amd64Ops is selected whenever the CPU has PCLMULQDQ and SSE4.1; its Family and
// Features only report which wider instruction set backs it, since the
// Folding Engine's primitives are backed identically across tiers (see
// arch.go's baseOps).
type amd64Ops struct {
	baseOps
	tier Tier
}

func (o amd64Ops) Tier() Tier { return o.tier }

// detectOps picks the amd64 dispatch tier. Both golang.org/x/sys/cpu
// (the teacher's own feature-detection dependency) and
// github.com/klauspost/cpuid/v2 are consulted: x/sys/cpu supplies the
// baseline PCLMULQDQ/AVX2 bits it has always exposed, cpuid/v2 supplies
// the newer AVX512VL+VPCLMULQDQ pairing that a 256/512-bit fold needs
// and that x/sys/cpu does not break out as its own flag.
func detectOps() Ops {
	if !cpu.X86.HasPCLMULQDQ || !cpu.X86.HasSSE41 {
		return softwareOps{}
	}

	wideTier := cpu.X86.HasAVX512VL && cpuid.CPU.Supports(cpuid.AVX512VL, cpuid.VPCLMULQDQ)
	switch {
	case wideTier:
		return amd64Ops{tier: Tier{Arch: "amd64", Family: "clmul", Features: []string{"avx512vl", "vpclmulqdq"}}}
	case cpu.X86.HasAVX2:
		return amd64Ops{tier: Tier{Arch: "amd64", Family: "clmul", Features: []string{"avx2"}}}
	default:
		return amd64Ops{tier: Tier{Arch: "amd64", Family: "clmul", Features: []string{"sse4.1"}}}
	}
}
