package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// jpegQuality matches the quality the preview UI was tuned against.
const jpegQuality = 90

// resolveOutputPath normalizes the output path: a missing extension gets
// the output format appended, and parent directories are created.
func resolveOutputPath(s Settings) (string, error) {
	path := s.OutputPath
	if path == "" {
		path = "thumbnail"
	}

	if filepath.Ext(path) == "" {
		// An empty format encodes as PNG, so the extension follows suit.
		format := strings.ToLower(strings.TrimSpace(s.OutputFormat))
		if format == "" {
			format = "png"
		}
		path += "." + format
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return path, nil
}

// resolveFormat maps a user-facing format name to an encoder name:
// jpg/jpeg and png map to their encoders, anything else is upper-cased and
// passed through, failing at encode time if no encoder exists for it.
func resolveFormat(format string) string {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "jpg", "jpeg":
		return "JPEG"
	case "png":
		return "PNG"
	case "":
		return "PNG"
	default:
		return strings.ToUpper(normalized)
	}
}

// encode writes img to path in the requested format. The image is encoded
// to memory first so a failed encode leaves no partial file behind.
func encode(img image.Image, path, format string) error {
	var buf bytes.Buffer

	switch resolved := resolveFormat(format); resolved {
	case "JPEG":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("failed to encode thumbnail: %w", err)
		}
	case "PNG":
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("failed to encode thumbnail: %w", err)
		}
	default:
		// Last-resort passthrough for formats the imaging stack knows.
		f, err := imaging.FormatFromExtension(strings.ToLower(resolved))
		if err != nil {
			return fmt.Errorf("unsupported output format %q", resolved)
		}
		if err := imaging.Encode(&buf, img, f); err != nil {
			return fmt.Errorf("failed to encode thumbnail as %s: %w", resolved, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	return nil
}
