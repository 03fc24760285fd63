package crcfast

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// arm64Ops is selected whenever the CPU has both AES and PMULL (the
// two ARMv8 Cryptographic Extension bits a 64x64 carry-less multiply
// needs); SHA3 (EOR3) presence only adds "sha3" to the features the
// tier advertises, same as amd64's AVX512VL+VPCLMULQDQ split.
type arm64Ops struct {
	baseOps
	tier Tier
}

func (o arm64Ops) Tier() Tier { return o.tier }

func detectOps() Ops {
	if !cpu.ARM64.HasPMULL || !cpu.ARM64.HasAES {
		return softwareOps{}
	}

	features := []string{"aes"}
	if cpu.ARM64.HasSHA3 && cpuid.CPU.Supports(cpuid.SHA3) {
		features = append(features, "sha3")
	}
	return arm64Ops{tier: Tier{Arch: "arm64", Family: "pmull", Features: features}}
}
