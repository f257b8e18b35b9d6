package watermark

import (
	"image"
	"image/color"
	"os"
	"strings"

	"vidthumb/internal/logging"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// minFontSize keeps degenerate settings from producing invisible text.
const minFontSize = 8

// systemFontPaths are tried, in order, when no explicit font is configured
// or the configured one fails to load.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// renderText draws the configured text onto a transparent overlay the size
// of the base image, centered on the constrained anchor point. Returns nil
// when there is nothing to draw.
func renderText(baseW, baseH int, s Settings) *image.NRGBA {
	text := strings.TrimSpace(s.Text)
	if text == "" {
		return nil
	}

	face := loadFace(s.FontPath, s.FontSize)
	defer func() {
		if closer, ok := face.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}()

	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	cx, cy := anchorPoint(s.Position, baseW, baseH)
	cx, cy = constrainCenter(cx, cy, baseW, baseH, textW, textH)

	r, g, b := parseHexColor(s.Color)
	alpha := uint8(255 * opacityFraction(s.Opacity))

	overlay := image.NewNRGBA(image.Rect(0, 0, baseW, baseH))
	drawer := &font.Drawer{
		Dst:  overlay,
		Src:  image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: alpha}),
		Face: face,
		// Place the glyph bounding box so its visual center lands on the
		// constrained anchor.
		Dot: fixed.Point26_6{
			X: fixed.I(cx-textW/2) - bounds.Min.X,
			Y: fixed.I(cy-textH/2) - bounds.Min.Y,
		},
	}
	drawer.DrawString(text)

	return overlay
}

// loadFace resolves a font face: the explicit path if loadable, then the
// system candidates, then the built-in bitmap face. Never fails.
func loadFace(path string, size int) font.Face {
	if size < minFontSize {
		size = minFontSize
	}

	if path != "" {
		if face := openFace(path, size); face != nil {
			return face
		}
		logging.Debug("could not load font %s, falling back", path)
	}

	for _, candidate := range systemFontPaths {
		if face := openFace(candidate, size); face != nil {
			return face
		}
	}

	return basicfont.Face7x13
}

// openFace loads a TTF/OTF file as a face at the given point size, or nil.
func openFace(path string, size int) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// parseHexColor parses "#RRGGBB" or "#RGB" (case-insensitive, leading '#'
// optional). Unparseable input falls back to opaque white.
func parseHexColor(s string) (r, g, b uint8) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	hexVal := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}

	switch len(s) {
	case 6:
		var vals [6]uint8
		for i := 0; i < 6; i++ {
			v, ok := hexVal(s[i])
			if !ok {
				return 255, 255, 255
			}
			vals[i] = v
		}
		return vals[0]<<4 | vals[1], vals[2]<<4 | vals[3], vals[4]<<4 | vals[5]
	case 3:
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i])
			if !ok {
				return 255, 255, 255
			}
			vals[i] = v
		}
		return vals[0] * 17, vals[1] * 17, vals[2] * 17
	}

	return 255, 255, 255
}
