package thumbnail

import (
	"errors"
	"fmt"
	"image"

	"vidthumb/internal/grid"
	"vidthumb/internal/logging"
	"vidthumb/internal/sampler"
	"vidthumb/internal/video"
	"vidthumb/internal/watermark"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedMode is returned for modes other than single and grid,
// before any extraction work begins.
var ErrUnsupportedMode = errors.New("unsupported thumbnail mode")

// ProgressFunc receives a monotonically increasing percentage in [0, 100]
// as generation advances: frame extraction fills 0-60, grid composition
// lands at 70, watermarking at 80-90, the encoded file at 100.
type ProgressFunc func(percent int)

// Generator runs the thumbnail pipeline for one video file.
type Generator struct {
	videoPath string

	// open is swapped out in tests to avoid spawning ffmpeg.
	open func(path string) (video.Source, error)
}

// New creates a Generator for the given video file. The file is not opened
// until a generation runs; each run opens and closes its own source.
func New(videoPath string) *Generator {
	return &Generator{
		videoPath: videoPath,
		open: func(path string) (video.Source, error) {
			return video.Open(path)
		},
	}
}

// Info opens the video just long enough to read its metadata.
func (g *Generator) Info() (video.Info, error) {
	src, err := g.open(g.videoPath)
	if err != nil {
		return video.Info{}, err
	}
	defer src.Close()
	return src.Info(), nil
}

// Generate renders the thumbnail and writes it to the resolved output path.
// It returns the path actually written and the final image. Any stage
// failure aborts the run with no file written.
func (g *Generator) Generate(ts Settings, ws watermark.Settings, progress ProgressFunc) (string, image.Image, error) {
	img, err := g.Render(ts, ws, progress)
	if err != nil {
		return "", nil, err
	}

	outputPath, err := resolveOutputPath(ts)
	if err != nil {
		return "", nil, err
	}

	if err := encode(img, outputPath, ts.OutputFormat); err != nil {
		return "", nil, err
	}
	report(progress, 100)

	logging.Info("thumbnail written: %s", outputPath)
	return outputPath, img, nil
}

// Render produces the final composited image without writing it anywhere.
func (g *Generator) Render(ts Settings, ws watermark.Settings, progress ProgressFunc) (image.Image, error) {
	ts = ts.Normalized()

	// Reject bad modes before touching the video.
	switch ts.Mode {
	case ModeSingle, ModeGrid:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, ts.Mode)
	}

	src, err := g.open(g.videoPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var base image.Image
	if ts.Mode == ModeSingle {
		base, err = g.renderSingle(src, ts, progress)
	} else {
		base, err = g.renderGrid(src, ts, progress)
	}
	if err != nil {
		return nil, err
	}
	report(progress, 80)

	marked := watermark.Apply(base, ws)
	report(progress, 90)

	if ts.ResizeTo != nil && ts.ResizeTo[0] > 0 && ts.ResizeTo[1] > 0 {
		marked = imaging.Resize(marked, ts.ResizeTo[0], ts.ResizeTo[1], imaging.Lanczos)
	}

	return marked, nil
}

func (g *Generator) renderSingle(src video.Source, ts Settings, progress ProgressFunc) (image.Image, error) {
	frame, err := src.Frame(ts.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to extract frame at %.3fs: %w", ts.Timestamp, err)
	}
	report(progress, 60)
	return frame, nil
}

func (g *Generator) renderGrid(src video.Source, ts Settings, progress ProgressFunc) (image.Image, error) {
	rows := ts.Rows
	if rows < 1 {
		rows = 1
	}
	columns := ts.Columns
	if columns < 1 {
		columns = 1
	}
	count := rows * columns
	duration := src.Info().Duration

	var timestamps []float64
	if ts.Randomize {
		timestamps = sampler.Random(duration, count, ts.RandomSeed)
	} else {
		timestamps = sampler.Even(duration, count)
	}

	frames, err := sampler.Extract(src, timestamps, func(p int) {
		// Extraction owns the 0-60 band of overall progress.
		report(progress, int(float64(p)*0.6))
	})
	if err != nil {
		return nil, err
	}

	composed, err := grid.Compose(frames, rows, columns)
	if err != nil {
		return nil, err
	}
	report(progress, 70)
	return composed, nil
}

func report(progress ProgressFunc, percent int) {
	if progress != nil {
		progress(percent)
	}
}
