package workers

import (
	"os"
	"runtime"
	"testing"
)

func clearOverride(t *testing.T) {
	t.Helper()
	if original, ok := os.LookupEnv("VIDTHUMB_WORKERS"); ok {
		t.Cleanup(func() { os.Setenv("VIDTHUMB_WORKERS", original) })
		os.Unsetenv("VIDTHUMB_WORKERS")
	}
}

func TestCount(t *testing.T) {
	clearOverride(t)
	available := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		min        int
		max        int
	}{
		{name: "CPU-bound", multiplier: 1.0, limit: 0, min: 1, max: available},
		{name: "I/O-bound", multiplier: 2.0, limit: 0, min: 1, max: available * 2},
		{name: "Mixed", multiplier: 1.5, limit: 0, min: 1, max: available*2 - available/2},
		{name: "Limit respected", multiplier: 2.0, limit: 1, min: 1, max: 1},
		{name: "Tiny multiplier floors at one", multiplier: 0.01, limit: 0, min: 1, max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < tt.min || got > tt.max {
				t.Errorf("Count(%v, %d) = %d, want in [%d, %d]", tt.multiplier, tt.limit, got, tt.min, tt.max)
			}
		})
	}
}

func TestCountOverride(t *testing.T) {
	clearOverride(t)

	os.Setenv("VIDTHUMB_WORKERS", "3")
	defer os.Unsetenv("VIDTHUMB_WORKERS")

	if got := Count(1.0, 0); got != 3 {
		t.Errorf("Count with override = %d, want 3", got)
	}
	if got := Count(1.0, 2); got != 2 {
		t.Errorf("Count with override above limit = %d, want 2", got)
	}

	os.Setenv("VIDTHUMB_WORKERS", "not-a-number")
	if got := Count(1.0, 0); got < 1 {
		t.Errorf("Count with bad override = %d, want >= 1", got)
	}
}

func TestHelpers(t *testing.T) {
	clearOverride(t)

	if ForCPU(4) > 4 || ForIO(4) > 4 || ForMixed(4) > 4 {
		t.Error("helpers must respect the limit")
	}
	if ForCPU(0) < 1 || ForIO(0) < 1 || ForMixed(0) < 1 {
		t.Error("helpers must return at least one worker")
	}
}
