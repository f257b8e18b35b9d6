package thumbnail

// Mode selects between a single extracted frame and a grid of frames.
type Mode string

const (
	// ModeSingle extracts one frame at a fixed timestamp.
	ModeSingle Mode = "single"
	// ModeGrid composes rows×columns sampled frames into one image.
	ModeGrid Mode = "grid"
)

// Settings describes one thumbnail generation. Passed by value; the
// pipeline never mutates the caller's copy.
type Settings struct {
	Mode      Mode    `json:"mode"`
	Timestamp float64 `json:"timestamp"` // seconds, single mode only

	// Grid mode fields.
	Rows      int  `json:"rows"`
	Columns   int  `json:"columns"`
	Randomize bool `json:"randomize"`

	// RandomSeed makes random sampling reproducible. Only meaningful while
	// Randomize is set; the seed itself is generated and retained by the
	// caller, never by the pipeline.
	RandomSeed *int64 `json:"random_seed,omitempty"`

	OutputPath   string `json:"output_path"`
	OutputFormat string `json:"output_format"` // "jpg" or "png"

	// ResizeTo optionally forces the final output to [width, height].
	ResizeTo *[2]int `json:"resize_to,omitempty"`
}

// Default returns the baseline settings: single frame at t=0, 2x3 grid
// shape, JPEG output to "thumbnail.jpg".
func Default() Settings {
	return Settings{
		Mode:         ModeSingle,
		Rows:         2,
		Columns:      3,
		OutputPath:   "thumbnail.jpg",
		OutputFormat: "jpg",
	}
}

// Normalized returns a copy with the seed invariant enforced: a seed is
// only ever present while Randomize is set.
func (s Settings) Normalized() Settings {
	if !s.Randomize {
		s.RandomSeed = nil
	}
	return s
}
