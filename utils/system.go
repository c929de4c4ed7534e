package utils

import (
	"fmt"
	"runtime"
)

// GetMemUsage summarizes the heap of the running process.
func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) float64 {
		return float64(b) / (1 << 20)
	}
	return fmt.Sprintf("Alloc = %.1f MiB, Sys = %.1f MiB, NumGC = %v",
		bToMb(m.Alloc), bToMb(m.Sys), m.NumGC)
}
