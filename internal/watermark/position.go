package watermark

// boundaryMargin is the inset, in pixels, that the overlay's bounding box
// must respect on every side of the base image.
const boundaryMargin = 16

// positionFractions maps named positions to anchor fractions of the base
// image width and height. Unrecognized names fall back to center.
var positionFractions = map[string][2]float64{
	"top-left":     {0.05, 0.05},
	"top-right":    {0.95, 0.05},
	"center":       {0.50, 0.50},
	"bottom-left":  {0.05, 0.95},
	"bottom-right": {0.95, 0.95},
}

// anchorPoint resolves a named position to a pixel coordinate on the base
// image. The overlay's center is later aligned to this point.
func anchorPoint(position string, baseW, baseH int) (int, int) {
	frac, ok := positionFractions[position]
	if !ok {
		frac = positionFractions["center"]
	}
	return int(float64(baseW) * frac[0]), int(float64(baseH) * frac[1])
}

// constrainCenter clamps a proposed overlay center so the overlay's full
// bounding box stays inside the base image inset by boundaryMargin. When
// the overlay cannot fit on an axis even at the margin, the valid range for
// that axis collapses to the image midpoint and the overlay overflows
// symmetrically.
func constrainCenter(cx, cy, baseW, baseH, overlayW, overlayH int) (int, int) {
	halfW := float64(overlayW) / 2
	halfH := float64(overlayH) / 2

	minX := boundaryMargin + halfW
	maxX := float64(baseW) - boundaryMargin - halfW
	minY := boundaryMargin + halfH
	maxY := float64(baseH) - boundaryMargin - halfH

	if minX > maxX {
		minX = float64(baseW) / 2
		maxX = minX
	}
	if minY > maxY {
		minY = float64(baseH) / 2
		maxY = minY
	}

	x := float64(cx)
	if x < minX {
		x = minX
	}
	if x > maxX {
		x = maxX
	}
	y := float64(cy)
	if y < minY {
		y = minY
	}
	if y > maxY {
		y = maxY
	}

	return int(x), int(y)
}
