package pix

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ScaleNearest resizes src to exactly w×h using nearest-neighbour sampling,
// with no smoothing.
func ScaleNearest(src *image.NRGBA, w, h int) *image.NRGBA {
	dst := New(w, h)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FlipHorizontal mirrors the image around its vertical centre line, in
// place.
func FlipHorizontal(img *image.NRGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < width/2; x++ {
			l := row[x*4 : x*4+4 : x*4+4]
			r := row[(width-1-x)*4 : (width-1-x)*4+4 : (width-1-x)*4+4]
			l[0], r[0] = r[0], l[0]
			l[1], r[1] = r[1], l[1]
			l[2], r[2] = r[2], l[2]
			l[3], r[3] = r[3], l[3]
		}
	}
}

// RotateAboutCenter rotates src by radians about its own centre using
// nearest-neighbour sampling. The output has the same dimensions as the
// input; corners rotated out of frame are lost and newly exposed corners
// are fully transparent. A zero rotation returns src unchanged.
func RotateAboutCenter(src *image.NRGBA, radians float64) *image.NRGBA {
	if radians == 0 {
		return src
	}

	bounds := src.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	sin, cos := math.Sincos(radians)

	// Rotation about (cx, cy): translate the centre to the origin, rotate,
	// translate back. In y-down pixel coordinates a positive angle turns
	// the image clockwise.
	aff := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}

	dst := New(bounds.Dx(), bounds.Dy())
	xdraw.NearestNeighbor.Transform(dst, aff, src, bounds, xdraw.Over, nil)
	return dst
}
