package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/tsawler/toolbox/model"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageSize decodes only the header of an image and returns its pixel
// dimensions and format name ("png", "tiff", ...).
func ImageSize(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}

// WordFragment converts a word box in image coordinates (origin top-left,
// Y down) into a fragment in page coordinates (origin bottom-left, Y up).
func WordFragment(text string, box image.Rectangle, imageHeight int) model.TextFragment {
	return model.TextFragment{
		Text: text,
		BBox: model.BBox{
			X:      float64(box.Min.X),
			Y:      float64(imageHeight - box.Max.Y),
			Width:  float64(box.Dx()),
			Height: float64(box.Dy()),
		},
		FontSize: float64(box.Dy()),
	}
}

// newPage builds an empty page sized to the image.
func newPage(width, height int) *model.Page {
	return model.NewPage(1, float64(width), float64(height))
}
