package crcfast

import (
	"os"
	"sync"
)

// dispatchState is the one-shot-initialized choice of Ops for this
// process, mirroring the teacher's own dispatch singleton: detection
// runs once, behind sync.Once, and every Digest created afterward
// shares the result.
var (
	dispatchOnce  sync.Once
	dispatchState Ops
)

func currentOps() Ops {
	dispatchOnce.Do(func() {
		if os.Getenv("CRCFAST_NO_SIMD") != "" {
			dispatchState = softwareOps{}
			return
		}
		dispatchState = detectOps()
	})
	return dispatchState
}

// GetCalculatorTarget reports the dispatch tier this process selected,
// formatted as "{arch}-{family}-{features}" (e.g.
// "amd64-clmul-avx512vl+vpclmulqdq", "software-clmul-portable").
func GetCalculatorTarget() string {
	return currentOps().Tier().String()
}
