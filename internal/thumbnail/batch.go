package thumbnail

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"vidthumb/internal/logging"
	"vidthumb/internal/watermark"
	"vidthumb/internal/workers"
)

// videoExtensions are the container extensions treated as videos when
// scanning a directory in batch mode.
var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".mov": true,
	".wmv": true, ".flv": true, ".webm": true, ".m4v": true,
	".mpeg": true, ".mpg": true, ".3gp": true, ".ts": true,
}

// IsVideoFile reports whether path has a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// ListVideos returns the video files directly inside dir, sorted by name.
func ListVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsVideoFile(entry.Name()) {
			videos = append(videos, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(videos)
	return videos, nil
}

// BatchResult reports one video's outcome in a batch run.
type BatchResult struct {
	VideoPath  string
	OutputPath string
	Err        error
}

// GenerateBatch generates a thumbnail for every video in dir, writing into
// outDir using each video's base name. Files are processed by a worker
// pool (capped at maxWorkers); each file is an independent generation, so
// failures are collected per file rather than aborting the batch. onResult,
// when non-nil, is called as each file finishes; calls may interleave
// across files but never overlap.
func GenerateBatch(dir, outDir string, ts Settings, ws watermark.Settings, maxWorkers int, onResult func(BatchResult)) ([]BatchResult, error) {
	videos, err := ListVideos(dir)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	poolSize := workers.ForMixed(maxWorkers)
	if poolSize > len(videos) {
		poolSize = len(videos)
	}
	logging.Info("batch: %d videos, %d workers", len(videos), poolSize)

	jobs := make(chan string)
	var mu sync.Mutex
	var results []BatchResult
	var wg sync.WaitGroup

	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				result := BatchResult{VideoPath: path}

				fileSettings := ts
				fileSettings.OutputPath = filepath.Join(outDir, videoStem(path))
				result.OutputPath, _, result.Err = New(path).Generate(fileSettings, ws, nil)

				mu.Lock()
				results = append(results, result)
				if onResult != nil {
					onResult(result)
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range videos {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].VideoPath < results[j].VideoPath })
	return results, nil
}

// videoStem returns the base name without its extension; the output format
// extension is appended by the pipeline's path resolution.
func videoStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
