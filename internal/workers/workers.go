package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns a worker count for a task type, derived from GOMAXPROCS so
// container CPU limits are respected (Go 1.19+). The multiplier adjusts
// for task characteristics (1.0 CPU-bound, 2.0 I/O-bound, 1.5 mixed); the
// limit caps the result, 0 meaning no cap.
//
// The VIDTHUMB_WORKERS environment variable overrides the calculation.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("VIDTHUMB_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	workers := int(float64(runtime.GOMAXPROCS(0)) * multiplier)

	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}
	return workers
}

// ForCPU returns a worker count for CPU-bound tasks (1 per CPU).
func ForCPU(limit int) int {
	return Count(1.0, limit)
}

// ForIO returns a worker count for I/O-bound tasks (2 per CPU).
func ForIO(limit int) int {
	return Count(2.0, limit)
}

// ForMixed returns a worker count for mixed tasks (1.5 per CPU). Batch
// thumbnail generation is mixed: file reads and ffmpeg waits interleave
// with image composition.
func ForMixed(limit int) int {
	return Count(1.5, limit)
}
