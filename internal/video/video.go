package video

import (
	"fmt"
	"image"
)

// Info is an immutable snapshot of the metadata the pipeline cares about.
// It is produced once when a video is opened and never mutated.
type Info struct {
	Path     string
	Duration float64 // seconds
	Width    int
	Height   int
	FPS      float64
}

// Resolution returns the video dimensions as a "WxH" string.
func (i Info) Resolution() string {
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// Source supplies decoded frames from an opened video. Implementations are
// scoped to a single generation: opened, used, and closed within one call.
type Source interface {
	// Info returns the metadata snapshot taken when the source was opened.
	Info() Info

	// Frame decodes and returns the frame at the given timestamp (seconds).
	// Timestamps outside the valid range are clamped; decode failures are
	// returned as errors.
	Frame(timestamp float64) (image.Image, error)

	// Close releases any resources held by the source.
	Close() error
}
