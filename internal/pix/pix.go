// Package pix provides the NRGBA buffer operations behind figure's
// compositor: clone, nearest-neighbour scale, flip, rotation about the
// centre, source-over overlay, and crop.
//
// All operations treat their source as shared and read-only; anything that
// needs to mutate pixels works on a buffer the caller owns. Nearest
// neighbour is used throughout so pixel art stays crisp.
package pix

import (
	"image"
	"image/draw"
)

// New creates a fully transparent NRGBA image of the given size.
func New(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Clone returns a deep copy of src with bounds anchored at the origin and a
// tight stride. Sub-images and images with non-zero minimum are flattened.
func Clone(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dst := New(bounds.Dx(), bounds.Dy())

	rowLen := bounds.Dx() * 4
	for y := 0; y < bounds.Dy(); y++ {
		srcOff := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[srcOff:srcOff+rowLen])
	}
	return dst
}

// Overlay alpha-composites src over dst with src's top-left corner at
// (x, y) in dst coordinates. Regions falling outside dst are clipped.
func Overlay(dst *image.NRGBA, src *image.NRGBA, x, y int) {
	sb := src.Bounds()
	rect := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, rect, src, sb.Min, draw.Over)
}

// Crop copies the w×h region of src whose top-left corner is at (x, y)
// into a new image. Regions outside src read as transparent.
func Crop(src *image.NRGBA, x, y, w, h int) *image.NRGBA {
	dst := New(w, h)
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x, y).Add(src.Bounds().Min), draw.Src)
	return dst
}
