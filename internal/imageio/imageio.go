package imageio

import (
	"image"

	"vidthumb/internal/logging"

	"github.com/disintegration/imaging"
)

// Load decodes the image at path, preferring the libvips fast path when it
// has been initialized and falling back to pure-Go decoding otherwise.
// targetWidth > 0 allows decode-time downscaling (vips only); the caller is
// still responsible for exact final sizing.
func Load(path string, targetWidth int) (image.Image, error) {
	if VipsAvailable() {
		img, err := loadWithVips(path, targetWidth)
		if err == nil {
			return img, nil
		}
		logging.Debug("vips load failed for %s: %v, falling back to imaging", path, err)
	}

	return imaging.Open(path, imaging.AutoOrientation(true))
}
