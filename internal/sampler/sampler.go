package sampler

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
	"time"

	"vidthumb/internal/logging"
	"vidthumb/internal/video"
)

// ProgressFunc receives a percentage in [0, 100] as work completes.
type ProgressFunc func(percent int)

// Even returns count timestamps spaced over the interior of the duration.
// The clip is divided into count+1 equal segments and each interior segment
// boundary becomes a sample, so neither t=0 nor t=duration is ever returned.
// A non-positive duration or count degenerates to a single timestamp at 0.
func Even(duration float64, count int) []float64 {
	if duration <= 0 || count <= 0 {
		return []float64{0}
	}

	step := duration / float64(count+1)
	timestamps := make([]float64, count)
	for i := range timestamps {
		timestamps[i] = math.Min(float64(i+1)*step, duration)
	}
	return timestamps
}

// EvenInclusive returns count timestamps spaced over the full duration,
// including the literal start and end. A single sample lands on the
// midpoint. A non-positive duration or count degenerates to [0].
func EvenInclusive(duration float64, count int) []float64 {
	if duration <= 0 || count <= 0 {
		return []float64{0}
	}
	if count == 1 {
		return []float64{duration / 2}
	}

	step := duration / float64(count-1)
	timestamps := make([]float64, count)
	for i := range timestamps {
		timestamps[i] = math.Min(float64(i)*step, duration)
	}
	return timestamps
}

// Random returns count uniform samples in [0, duration), sorted ascending so
// extraction order follows chronological order. A non-nil seed makes the
// draw reproducible; a nil seed uses a time-seeded generator. The sampler
// never invents and retains a seed of its own; reusing a seed across
// renders is the caller's concern.
func Random(duration float64, count int, seed *int64) []float64 {
	if count <= 0 {
		return nil
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	timestamps := make([]float64, count)
	for i := range timestamps {
		timestamps[i] = rng.Float64() * duration
	}
	sort.Float64s(timestamps)
	return timestamps
}

// Extract retrieves one frame per timestamp from src, in order, reporting
// fractional progress after each retrieval. Any frame failure aborts the
// whole extraction; no partial frame list is returned.
func Extract(src video.Source, timestamps []float64, progress ProgressFunc) ([]image.Image, error) {
	if len(timestamps) == 0 {
		return nil, nil
	}

	frames := make([]image.Image, 0, len(timestamps))
	total := len(timestamps)

	for i, ts := range timestamps {
		frame, err := src.Frame(ts)
		if err != nil {
			return nil, fmt.Errorf("failed to extract frame %d/%d at %.3fs: %w", i+1, total, ts, err)
		}
		frames = append(frames, frame)

		if progress != nil {
			progress(int(math.Round(float64(i+1) / float64(total) * 100)))
		}
	}

	logging.Debug("extracted %d frames", len(frames))
	return frames, nil
}
