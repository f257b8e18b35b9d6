// Package grid assembles a list of frames into a single rows×columns
// contact-sheet image.
package grid

import (
	"errors"
	"image"
	"image/color"

	"vidthumb/internal/logging"

	"github.com/disintegration/imaging"
)

// ErrNoFrames is returned when composition is attempted with no frames.
var ErrNoFrames = errors.New("no frames to compose")

// Compose lays frames out in row-major order on a rows×columns canvas.
// The first frame fixes the cell size; every frame is resized to it with
// Lanczos resampling, so mixed-size input still produces a uniform grid.
// Frames beyond rows*columns are dropped, and if fewer are supplied the
// trailing cells stay black; callers wanting a full grid must supply
// exactly rows*columns frames.
func Compose(frames []image.Image, rows, columns int) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if rows < 1 {
		rows = 1
	}
	if columns < 1 {
		columns = 1
	}

	cellWidth := frames[0].Bounds().Dx()
	cellHeight := frames[0].Bounds().Dy()

	canvas := imaging.New(cellWidth*columns, cellHeight*rows, color.NRGBA{0, 0, 0, 255})

	logging.Debug("composing %dx%d grid with %dx%d cells from %d frames",
		columns, rows, cellWidth, cellHeight, len(frames))

	for i, frame := range frames {
		row := i / columns
		col := i % columns
		if row >= rows {
			break
		}

		cell := frame
		if cell.Bounds().Dx() != cellWidth || cell.Bounds().Dy() != cellHeight {
			cell = imaging.Resize(frame, cellWidth, cellHeight, imaging.Lanczos)
		}
		canvas = imaging.Paste(canvas, cell, image.Pt(col*cellWidth, row*cellHeight))
	}

	return canvas, nil
}
