// Package settings persists the thumbnail and watermark configuration as a
// JSON record with two top-level keys, "thumbnail" and "watermark". Fields
// absent from the file keep their defaults, so older files stay loadable as
// the schema grows.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vidthumb/internal/thumbnail"
	"vidthumb/internal/watermark"
)

// Persisted bundles the two settings records stored together.
type Persisted struct {
	Thumbnail thumbnail.Settings `json:"thumbnail"`
	Watermark watermark.Settings `json:"watermark"`
}

// Default returns a Persisted populated with both records' defaults.
func Default() Persisted {
	return Persisted{
		Thumbnail: thumbnail.Default(),
		Watermark: watermark.Default(),
	}
}

// Save writes p to path as indented JSON, creating parent directories as
// needed. The seed invariant is enforced before writing.
func Save(path string, p Persisted) error {
	p.Thumbnail = p.Thumbnail.Normalized()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Load reads a settings record from path. Absent optional fields take
// their defaults; a missing file is an error so callers can distinguish
// "no settings yet" from a broken file.
func Load(path string) (Persisted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Persisted{}, fmt.Errorf("failed to read settings: %w", err)
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Persisted{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	p.Thumbnail = p.Thumbnail.Normalized()
	return p, nil
}
