package grid

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// solidFrame builds a w×h frame filled with the given color.
func solidFrame(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func frames(n, w, h int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		out[i] = solidFrame(w, h, color.RGBA{uint8(40 * i), 128, 200, 255})
	}
	return out
}

func TestComposeDimensions(t *testing.T) {
	tests := []struct {
		name          string
		frameW        int
		frameH        int
		rows, columns int
		count         int
	}{
		{name: "2x3 grid", frameW: 160, frameH: 90, rows: 2, columns: 3, count: 6},
		{name: "1x1 grid", frameW: 64, frameH: 48, rows: 1, columns: 1, count: 1},
		{name: "4x2 grid", frameW: 32, frameH: 32, rows: 4, columns: 2, count: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compose(frames(tt.count, tt.frameW, tt.frameH), tt.rows, tt.columns)
			if err != nil {
				t.Fatalf("Compose returned error: %v", err)
			}

			wantW := tt.frameW * tt.columns
			wantH := tt.frameH * tt.rows
			if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
				t.Errorf("canvas = %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), wantW, wantH)
			}
		})
	}
}

func TestComposeRowMajorOrder(t *testing.T) {
	// Distinct colors per frame; frame i must land at row i/cols, col i%cols.
	colors := []color.RGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{255, 255, 0, 255}, {0, 255, 255, 255}, {255, 0, 255, 255},
	}
	in := make([]image.Image, len(colors))
	for i, c := range colors {
		in[i] = solidFrame(10, 10, c)
	}

	out, err := Compose(in, 2, 3)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	for i, want := range colors {
		row := i / 3
		col := i % 3
		got := out.NRGBAAt(col*10+5, row*10+5)
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Errorf("frame %d center = %v, want %v", i, got, want)
		}
	}
}

func TestComposeResizesMismatchedFrames(t *testing.T) {
	in := []image.Image{
		solidFrame(100, 50, color.RGBA{255, 0, 0, 255}),
		solidFrame(37, 91, color.RGBA{0, 255, 0, 255}), // off-size, must be resized
	}

	out, err := Compose(in, 1, 2)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 50 {
		t.Errorf("canvas = %dx%d, want 200x50", out.Bounds().Dx(), out.Bounds().Dy())
	}

	got := out.NRGBAAt(150, 25)
	if got.G < 200 {
		t.Errorf("resized frame not placed in second cell, got %v", got)
	}
}

func TestComposeDropsExtraFrames(t *testing.T) {
	out, err := Compose(frames(5, 20, 20), 1, 2)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 20 {
		t.Errorf("canvas = %dx%d, want 40x20", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestComposeLeavesMissingCellsBlank(t *testing.T) {
	in := []image.Image{solidFrame(10, 10, color.RGBA{255, 255, 255, 255})}

	out, err := Compose(in, 2, 2)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	// Bottom-right cell was never painted and stays opaque black.
	got := out.NRGBAAt(15, 15)
	if got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("blank cell = %v, want opaque black", got)
	}
}

func TestComposeEmptyInput(t *testing.T) {
	if _, err := Compose(nil, 2, 3); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Compose(nil) error = %v, want ErrNoFrames", err)
	}
}

func TestComposeClampsGridShape(t *testing.T) {
	out, err := Compose(frames(1, 10, 10), 0, -1)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Errorf("canvas = %dx%d, want 10x10", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
