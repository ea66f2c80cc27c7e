package figure

import (
	"fmt"
	"image"
	"math"

	"github.com/pixelforge/figure/internal/pix"
)

// Export flattens a character into a single width×height image.
//
// order lists the layer kinds to draw, bottom to top: it controls both
// which layers appear and how they stack. canvas is the pixel size of the
// authoring canvas the character's positions and scales were recorded
// against; layer placement is rescaled from that space into the output.
//
// Export returns nil when canvas has a zero dimension (the scale would be
// degenerate). A character with no drawable layers yields a fully
// transparent image of the requested size, never a failure. Export never
// mutates the character or its shared asset pixels.
func Export(c *Character, order []Kind, width, height int, canvas Point) *image.NRGBA {
	if canvas.X == 0 || canvas.Y == 0 {
		return nil
	}

	// Work in a buffer twice the output's larger side, centred, so layers
	// pushed past the output bounds by rotation or scaling still land
	// somewhere before the final crop.
	bufferDim := max(width, height) * 2
	buffer := pix.New(bufferDim, bufferDim)
	bufferCentre := bufferDim / 2

	exportScale := float64(width) / canvas.X

	for _, kind := range order {
		part := c.Part(kind)
		if part == nil || part.Asset.Image == nil {
			continue
		}

		// The decoded asset is shared between parts and characters.
		layer := pix.Clone(part.Asset.Image)
		Recolor(layer, kind, c.Colors, c.Outline)

		finalScale := part.Scale * exportScale
		scaledW := int(math.Round(float64(layer.Bounds().Dx()) * finalScale))
		scaledH := int(math.Round(float64(layer.Bounds().Dy()) * finalScale))
		if scaledW == 0 || scaledH == 0 {
			continue
		}

		scaled := pix.ScaleNearest(layer, scaledW, scaledH)
		if part.Flipped {
			pix.FlipHorizontal(scaled)
		}
		rotated := pix.RotateAboutCenter(scaled, part.Rotation)

		targetX := part.Position.X * exportScale
		targetY := part.Position.Y * exportScale

		// Integer division on the output size here mirrors the crop origin
		// below; keeping both truncating keeps layers and crop aligned for
		// odd output sizes.
		topLeftX := float64(bufferCentre-width/2) + targetX - float64(rotated.Bounds().Dx())/2
		topLeftY := float64(bufferCentre-height/2) + targetY - float64(rotated.Bounds().Dy())/2

		pix.Overlay(buffer, rotated, int(topLeftX), int(topLeftY))
	}

	return pix.Crop(buffer, bufferCentre-width/2, bufferCentre-height/2, width, height)
}

// ExportSize selects one of the preset output resolutions.
type ExportSize uint8

const (
	// ExportHalf renders at half the native asset resolution.
	ExportHalf ExportSize = iota
	// ExportOriginal renders at the native asset resolution.
	ExportOriginal
	// ExportDouble renders at twice the native asset resolution.
	ExportDouble
)

// String returns the preset's display name.
func (s ExportSize) String() string {
	switch s {
	case ExportHalf:
		return "Half"
	case ExportOriginal:
		return "Original"
	case ExportDouble:
		return "Double"
	default:
		return "Unknown"
	}
}

// Portrait returns the portrait output dimensions for the preset.
func (s ExportSize) Portrait() (int, int) {
	switch s {
	case ExportHalf:
		return 48, 48
	case ExportDouble:
		return 192, 192
	default:
		return 96, 96
	}
}

// Token returns the token output dimensions for the preset.
func (s ExportSize) Token() (int, int) {
	switch s {
	case ExportHalf:
		return 32, 32
	case ExportDouble:
		return 128, 128
	default:
		return 64, 64
	}
}

// DisplayName returns the preset's name with its portrait and token
// dimensions, e.g. "Original (96x96) (64x64)".
func (s ExportSize) DisplayName() string {
	pw, ph := s.Portrait()
	tw, th := s.Token()
	return fmt.Sprintf("%s (%dx%d) (%dx%d)", s, pw, ph, tw, th)
}
