package watermark

import (
	"image"

	"vidthumb/internal/logging"

	"github.com/disintegration/imaging"
)

// Kind selects the watermark type.
type Kind string

const (
	// KindNone disables watermarking.
	KindNone Kind = "none"
	// KindText renders a text string.
	KindText Kind = "text"
	// KindImage overlays an image file.
	KindImage Kind = "image"
)

// Settings describes a watermark. The zero value is not useful; start from
// Default. Settings are passed by value and never mutated.
type Settings struct {
	Kind     Kind   `json:"kind"`
	Opacity  int    `json:"opacity"` // 0-100
	Position string `json:"position"`

	// Text watermark fields.
	Text     string `json:"text"`
	FontPath string `json:"font_path,omitempty"`
	FontSize int    `json:"font_size"`
	Color    string `json:"color"` // hex, e.g. "#FFFFFF"

	// Image watermark fields.
	ImagePath string  `json:"image_path,omitempty"`
	Scale     float64 `json:"scale"` // fraction of base width, 0.05-1.0
}

// Default returns the baseline watermark settings: disabled, half opacity,
// centered white text at 48pt, image scale 0.3.
func Default() Settings {
	return Settings{
		Kind:     KindNone,
		Opacity:  50,
		Position: "center",
		FontSize: 48,
		Color:    "#FFFFFF",
		Scale:    0.3,
	}
}

// Apply composites the configured watermark onto base and returns the
// result as a new opaque image. The base is never modified. Disabled, fully
// transparent, or unrenderable watermarks (blank text, missing image asset)
// return base unchanged.
func Apply(base image.Image, s Settings) image.Image {
	if s.Kind == KindNone || s.Kind == "" {
		return base
	}
	if s.Opacity <= 0 {
		return base
	}

	baseW := base.Bounds().Dx()
	baseH := base.Bounds().Dy()

	var result *image.NRGBA
	switch s.Kind {
	case KindText:
		overlay := renderText(baseW, baseH, s)
		if overlay == nil {
			return base
		}
		result = imaging.Overlay(imaging.Clone(base), overlay, image.Point{}, 1.0)
	case KindImage:
		mark, topLeft, ok := renderImage(baseW, baseH, s)
		if !ok {
			return base
		}
		result = imaging.Overlay(imaging.Clone(base), mark, topLeft, opacityFraction(s.Opacity))
	default:
		logging.Warn("unknown watermark kind %q, skipping", s.Kind)
		return base
	}

	return flatten(result)
}

// opacityFraction converts a 0-100 opacity to a clamped 0-1 fraction.
func opacityFraction(opacity int) float64 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	return float64(opacity) / 100
}

// flatten forces every pixel opaque, mirroring a flatten-to-RGB step.
// Composited results keep any transparency the base carried; the engine's
// contract is an opaque output.
func flatten(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}
