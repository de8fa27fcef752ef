//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// countInstructions runs f under a hardware instruction counter. When the
// counter is unavailable, e.g. perf_event_paranoid forbids it, f runs
// unmeasured.
func countInstructions(f func() error) (err error) {
	var (
		ran bool
		pv  *perf.ProfileValue
	)
	pv, err = perf.CPUInstructions(func() error {
		ran = true
		return f()
	})
	if !ran {
		fmt.Printf("instruction counter unavailable: %v\n", err)
		return f()
	}
	if err == nil && pv != nil {
		fmt.Printf("%d\t= CPU Instructions\n", pv.Value)
	}
	return
}
