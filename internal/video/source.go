package video

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"strconv"

	"vidthumb/internal/logging"

	_ "image/png" // ffmpeg pipe output decoder
)

// clampEpsilon keeps seeks strictly before end-of-stream.
const clampEpsilon = 1e-3

// FileSource is a Source backed by ffmpeg one-shot frame extraction. Each
// Frame call spawns its own decoder process, so a FileSource is safe for use
// from multiple goroutines even though the pipeline never does so itself.
type FileSource struct {
	path string
	info Info
}

// Open opens a video file and probes its metadata. A missing file is
// reported immediately rather than at first frame extraction.
func Open(path string) (*FileSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("video file not accessible: %w", err)
	}

	info, err := probe(path)
	if err != nil {
		return nil, err
	}

	logging.Debug("opened %s: %s, %.2fs @ %.2f fps", path, info.Resolution(), info.Duration, info.FPS)

	return &FileSource{path: path, info: info}, nil
}

// Info returns the metadata snapshot taken at Open.
func (s *FileSource) Info() Info {
	return s.info
}

// Frame extracts a single decoded frame at the given timestamp (seconds).
// The timestamp is clamped to the valid seek range before extraction.
func (s *FileSource) Frame(timestamp float64) (image.Image, error) {
	ts := clampTimestamp(timestamp, s.info.Duration)
	seek := strconv.FormatFloat(ts, 'f', 3, 64)

	logging.Debug("extracting frame at %ss from %s", seek, s.path)

	cmd := exec.Command("ffmpeg",
		"-ss", seek,
		"-i", s.path,
		"-vframes", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil && stdout.Len() == 0 {
		err = fmt.Errorf("ffmpeg produced no output")
	}
	if err != nil {
		logging.Debug("seek at %ss failed for %s: %v, retrying without seek", seek, s.path, err)

		// Some streams reject the pre-input seek; fall back to decoding
		// from the start.
		cmd = exec.Command("ffmpeg",
			"-i", s.path,
			"-vframes", "1",
			"-f", "image2pipe",
			"-vcodec", "png",
			"-",
		)
		stdout.Reset()
		stderr.Reset()
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("ffmpeg failed: %v, stderr: %s", err, stderr.String())
		}
		if stdout.Len() == 0 {
			return nil, fmt.Errorf("ffmpeg produced no output for %s", s.path)
		}
	}

	img, _, err := image.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ffmpeg output: %w", err)
	}

	return img, nil
}

// Close releases the source. FileSource holds no persistent decoder handle,
// so this only exists to satisfy Source.
func (s *FileSource) Close() error {
	return nil
}

// clampTimestamp restricts a requested timestamp to [0, duration-epsilon].
// An unknown or zero duration clamps everything to 0.
func clampTimestamp(timestamp, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	limit := duration - clampEpsilon
	if limit < 0 {
		limit = 0
	}
	if timestamp < 0 {
		return 0
	}
	if timestamp > limit {
		return limit
	}
	return timestamp
}
