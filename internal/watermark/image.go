package watermark

import (
	"image"
	"math"
	"os"

	"vidthumb/internal/imageio"
	"vidthumb/internal/logging"

	"github.com/disintegration/imaging"
)

const (
	minScale = 0.05
	maxScale = 1.0
)

// renderImage loads and scales the watermark image and computes its
// top-left placement on the base. ok is false when there is nothing to
// composite (unset path, missing or undecodable asset); all such cases
// are silently recovered, never fatal.
func renderImage(baseW, baseH int, s Settings) (mark image.Image, topLeft image.Point, ok bool) {
	if s.ImagePath == "" {
		return nil, image.Point{}, false
	}
	if _, err := os.Stat(s.ImagePath); err != nil {
		logging.Debug("watermark image %s not accessible: %v, skipping", s.ImagePath, err)
		return nil, image.Point{}, false
	}

	scale := s.Scale
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		scale = maxScale
	}

	targetW := int(float64(baseW) * scale)
	if targetW < 1 {
		targetW = 1
	}

	loaded, err := imageio.Load(s.ImagePath, targetW)
	if err != nil {
		logging.Warn("failed to load watermark image %s: %v, skipping", s.ImagePath, err)
		return nil, image.Point{}, false
	}

	// Uniform scale to the target width, at least 1px on either axis.
	srcW := loaded.Bounds().Dx()
	srcH := loaded.Bounds().Dy()
	targetH := int(math.Round(float64(srcH) * float64(targetW) / float64(srcW)))
	if targetH < 1 {
		targetH = 1
	}
	resized := imaging.Resize(loaded, targetW, targetH, imaging.Lanczos)

	cx, cy := anchorPoint(s.Position, baseW, baseH)
	cx, cy = constrainCenter(cx, cy, baseW, baseH, targetW, targetH)

	return resized, image.Pt(cx-targetW/2, cy-targetH/2), true
}
