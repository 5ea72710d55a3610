package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestImageSize(t *testing.T) {
	img := testImage(120, 80)

	var pngBuf, tiffBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	if err := tiff.Encode(&tiffBuf, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, img); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", pngBuf.Bytes(), "png"},
		{"tiff", tiffBuf.Bytes(), "tiff"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, format, err := ImageSize(tt.data)
			if err != nil {
				t.Fatalf("ImageSize() failed: %v", err)
			}
			if w != 120 || h != 80 {
				t.Errorf("size = %dx%d, want 120x80", w, h)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
		})
	}
}

func TestImageSize_Invalid(t *testing.T) {
	if _, _, _, err := ImageSize([]byte("definitely not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestWordFragment(t *testing.T) {
	f := WordFragment("Total", image.Rect(10, 20, 50, 35), 100)

	if f.Text != "Total" {
		t.Errorf("Text = %q", f.Text)
	}
	want := struct{ x, y, w, h float64 }{10, 65, 40, 15}
	if f.BBox.X != want.x || f.BBox.Y != want.y || f.BBox.Width != want.w || f.BBox.Height != want.h {
		t.Errorf("BBox = %+v, want %+v", f.BBox, want)
	}
}

func TestWordFragment_PreservesRowOrder(t *testing.T) {
	top := WordFragment("header", image.Rect(0, 10, 40, 20), 200)
	bottom := WordFragment("footer", image.Rect(0, 180, 40, 190), 200)

	// Y grows upward after the flip, so the top word has the larger Y
	if top.Y() <= bottom.Y() {
		t.Errorf("top.Y = %v, bottom.Y = %v; want top above bottom", top.Y(), bottom.Y())
	}
}

func TestNewPage(t *testing.T) {
	p := newPage(640, 480)
	if p.Number != 1 || p.Width != 640 || p.Height != 480 {
		t.Errorf("newPage() = %+v", p)
	}
}
