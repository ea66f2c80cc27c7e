package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// LoadImage reads and decodes a PNG layer image into NRGBA pixels.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("assets: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// DecodeImage decodes a PNG stream into NRGBA pixels.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode PNG: %w", err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any decoded image to tightly-packed NRGBA with bounds at
// the origin. Images that already match are returned as-is.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		b := n.Bounds()
		if b.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
			return n
		}
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
