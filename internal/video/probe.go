package video

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ffprobeOutput represents the JSON output from ffprobe.
type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	Duration     string `json:"duration"`
}

// probe runs ffprobe against path and returns the parsed metadata.
func probe(path string) (Info, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	output, err := cmd.Output()
	if err != nil {
		return Info{}, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	return parseProbe(output, path)
}

// parseProbe extracts an Info from raw ffprobe JSON.
func parseProbe(data []byte, path string) (Info, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Info{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := Info{Path: path}

	if out.Format.Duration != "" {
		if d, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
			info.Duration = d
		}
	}

	var videoStream *ffprobeStream
	for i := range out.Streams {
		if out.Streams[i].CodecType == "video" {
			videoStream = &out.Streams[i]
			break
		}
	}
	if videoStream == nil {
		return Info{}, fmt.Errorf("no video stream found in %s", path)
	}

	if videoStream.Width <= 0 || videoStream.Height <= 0 {
		return Info{}, fmt.Errorf("invalid dimensions in %s: %dx%d", path, videoStream.Width, videoStream.Height)
	}
	info.Width = videoStream.Width
	info.Height = videoStream.Height

	// Some containers only carry duration on the stream.
	if info.Duration == 0 && videoStream.Duration != "" {
		if d, err := strconv.ParseFloat(videoStream.Duration, 64); err == nil {
			info.Duration = d
		}
	}

	info.FPS = parseRate(videoStream.AvgFrameRate)
	if info.FPS == 0 {
		info.FPS = parseRate(videoStream.RFrameRate)
	}

	return info, nil
}

// parseRate converts an ffprobe rational like "30000/1001" to a float.
// Returns 0 for empty, malformed, or zero-denominator input.
func parseRate(rate string) float64 {
	if rate == "" || rate == "0/0" {
		return 0
	}

	num, den, found := strings.Cut(rate, "/")
	if !found {
		if f, err := strconv.ParseFloat(rate, 64); err == nil {
			return f
		}
		return 0
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
