package sampler

import (
	"errors"
	"image"
	"math"
	"reflect"
	"testing"

	"vidthumb/internal/video"
)

// fakeSource hands out blank frames and records requested timestamps.
type fakeSource struct {
	info      video.Info
	requested []float64
	failAfter int // fail on request number failAfter (1-based), 0 = never
}

func (f *fakeSource) Info() video.Info { return f.info }

func (f *fakeSource) Frame(timestamp float64) (image.Image, error) {
	f.requested = append(f.requested, timestamp)
	if f.failAfter > 0 && len(f.requested) >= f.failAfter {
		return nil, errors.New("decode failure")
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (f *fakeSource) Close() error { return nil }

func TestEvenInterior(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		count    int
	}{
		{name: "Six of twelve seconds", duration: 12, count: 6},
		{name: "Two frames", duration: 10, count: 2},
		{name: "Many frames", duration: 3600, count: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Even(tt.duration, tt.count)
			if len(got) != tt.count {
				t.Fatalf("Even returned %d timestamps, want %d", len(got), tt.count)
			}
			prev := 0.0
			for i, ts := range got {
				if ts <= 0 || ts >= tt.duration {
					t.Errorf("timestamp %d = %v outside (0, %v)", i, ts, tt.duration)
				}
				if ts <= prev {
					t.Errorf("timestamps not strictly increasing at %d: %v <= %v", i, ts, prev)
				}
				prev = ts
			}
		})
	}
}

func TestEvenScenario(t *testing.T) {
	// 2x3 grid on a 12 second clip: interior sevenths.
	got := Even(12, 6)
	want := []float64{12.0 / 7, 24.0 / 7, 36.0 / 7, 48.0 / 7, 60.0 / 7, 72.0 / 7}

	if len(got) != len(want) {
		t.Fatalf("got %d timestamps, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("timestamp %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEvenSingleIsMidpoint(t *testing.T) {
	got := Even(10, 1)
	if !reflect.DeepEqual(got, []float64{5}) {
		t.Errorf("Even(10, 1) = %v, want [5]", got)
	}
}

func TestEvenDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		count    int
	}{
		{name: "Zero duration", duration: 0, count: 5},
		{name: "Negative duration", duration: -1, count: 5},
		{name: "Zero count", duration: 10, count: 0},
		{name: "Negative count", duration: 10, count: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Even(tt.duration, tt.count)
			if !reflect.DeepEqual(got, []float64{0}) {
				t.Errorf("Even(%v, %d) = %v, want [0]", tt.duration, tt.count, got)
			}
		})
	}
}

func TestEvenInclusive(t *testing.T) {
	got := EvenInclusive(10, 3)
	want := []float64{0, 5, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("timestamp %d = %v, want %v", i, got[i], want[i])
		}
	}

	if single := EvenInclusive(10, 1); !reflect.DeepEqual(single, []float64{5}) {
		t.Errorf("EvenInclusive(10, 1) = %v, want [5]", single)
	}
}

func TestRandomDeterministic(t *testing.T) {
	seed := int64(42)

	first := Random(30, 8, &seed)
	second := Random(30, 8, &seed)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("seeded draws differ:\n%v\n%v", first, second)
	}

	if len(first) != 8 {
		t.Fatalf("got %d timestamps, want 8", len(first))
	}
	for i, ts := range first {
		if ts < 0 || ts >= 30 {
			t.Errorf("timestamp %d = %v outside [0, 30)", i, ts)
		}
		if i > 0 && ts < first[i-1] {
			t.Errorf("timestamps not sorted at %d: %v < %v", i, ts, first[i-1])
		}
	}
}

func TestRandomUnseeded(t *testing.T) {
	got := Random(30, 5, nil)
	if len(got) != 5 {
		t.Fatalf("got %d timestamps, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("timestamps not sorted at %d", i)
		}
	}
}

func TestRandomZeroCount(t *testing.T) {
	if got := Random(30, 0, nil); got != nil {
		t.Errorf("Random with count 0 = %v, want nil", got)
	}
}

func TestExtract(t *testing.T) {
	src := &fakeSource{info: video.Info{Duration: 10}}
	timestamps := []float64{1, 3, 5, 7}

	var reported []int
	frames, err := Extract(src, timestamps, func(p int) { reported = append(reported, p) })
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if len(frames) != 4 {
		t.Errorf("got %d frames, want 4", len(frames))
	}
	if !reflect.DeepEqual(src.requested, timestamps) {
		t.Errorf("requested timestamps %v, want %v", src.requested, timestamps)
	}
	if want := []int{25, 50, 75, 100}; !reflect.DeepEqual(reported, want) {
		t.Errorf("progress = %v, want %v", reported, want)
	}
}

func TestExtractRoundsProgress(t *testing.T) {
	src := &fakeSource{}
	var reported []int
	if _, err := Extract(src, []float64{1, 2, 3}, func(p int) { reported = append(reported, p) }); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if want := []int{33, 67, 100}; !reflect.DeepEqual(reported, want) {
		t.Errorf("progress = %v, want %v", reported, want)
	}
}

func TestExtractFailureAbortsWholeBatch(t *testing.T) {
	src := &fakeSource{failAfter: 2}

	frames, err := Extract(src, []float64{1, 2, 3}, nil)
	if err == nil {
		t.Fatal("expected error from failing source")
	}
	if frames != nil {
		t.Errorf("expected no partial frame list, got %d frames", len(frames))
	}
}

func TestExtractNilProgress(t *testing.T) {
	src := &fakeSource{}
	if _, err := Extract(src, []float64{1}, nil); err != nil {
		t.Errorf("Extract with nil progress returned error: %v", err)
	}
}

func TestExtractEmpty(t *testing.T) {
	src := &fakeSource{}
	frames, err := Extract(src, nil, nil)
	if err != nil || frames != nil {
		t.Errorf("Extract(nil) = (%v, %v), want (nil, nil)", frames, err)
	}
}
