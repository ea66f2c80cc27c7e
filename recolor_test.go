package figure

import (
	"image"
	"testing"
)

// indexImage builds a 1-pixel-per-entry row image whose red channels carry
// the given slot encodings.
func indexImage(reds []uint8, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(reds), 1))
	for i, r := range reds {
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = 7
		img.Pix[i*4+2] = 9
		img.Pix[i*4+3] = alpha
	}
	return img
}

func pixelAt(img *image.NRGBA, x int) Color {
	off := img.PixOffset(x, 0)
	return RGBA(img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3])
}

func TestRecolor_HairLayer(t *testing.T) {
	c := NewCharacter()
	hair := c.Colors[RegionHair]
	metal := c.Colors[RegionMetal]
	skin := c.Colors[RegionSkin]

	// Slots: outline, hair triple, skin darker3, metal neutral, leather
	// darker, unmapped sentinel.
	img := indexImage([]uint8{0, 10, 20, 30, 80, 100, 200, 210}, 255)
	Recolor(img, KindHair, c.Colors, c.Outline)

	want := []Color{
		c.Outline.Get(KindHair),
		hair.Lighter,
		hair.Neutral,
		hair.Darker,
		skin.Darker3,
		metal.Neutral,
		c.Colors[RegionLeather].Darker,
		RGBA(210, 7, 9, 255), // red 210 is outside the index range
	}
	for x, w := range want {
		if got := pixelAt(img, x); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestRecolor_FaceUsesShortTable(t *testing.T) {
	c := NewCharacter()

	// On face layers the 1..3 band is eye/beard, 9..11 is the accessory
	// region, and the trim/cloth/leather bands are unmapped.
	img := indexImage([]uint8{10, 90, 120, 150, 180}, 255)
	Recolor(img, KindFace, c.Colors, c.Outline)

	if got, want := pixelAt(img, 0), c.Colors[RegionEyeAndBeard].Lighter; got != want {
		t.Errorf("eye/beard slot = %v, want %v", got, want)
	}
	if got, want := pixelAt(img, 1), c.Colors[RegionAccessory].Lighter; got != want {
		t.Errorf("accessory slot = %v, want %v", got, want)
	}
	for x, red := range []uint8{120, 150, 180} {
		if got, want := pixelAt(img, x+2), RGBA(red, 7, 9, 255); got != want {
			t.Errorf("unmapped slot red=%d: got %v, want untouched %v", red, got, want)
		}
	}
}

func TestRecolor_SkinSharedAcrossLayouts(t *testing.T) {
	c := NewCharacter()
	skin := c.Colors[RegionSkin]

	for _, kind := range []Kind{KindFace, KindArmour} {
		img := indexImage([]uint8{40, 50, 60, 70, 80}, 255)
		Recolor(img, kind, c.Colors, c.Outline)

		want := []Color{skin.Lighter, skin.Neutral, skin.Darker, skin.Darker2, skin.Darker3}
		for x, w := range want {
			if got := pixelAt(img, x); got != w {
				t.Errorf("%v skin slot %d = %v, want %v", kind, x, got, w)
			}
		}
	}
}

func TestRecolor_TransparentPixelsUntouched(t *testing.T) {
	c := NewCharacter()
	img := indexImage([]uint8{0, 10, 50}, 0)
	Recolor(img, KindHair, c.Colors, c.Outline)

	for x, red := range []uint8{0, 10, 50} {
		if got, want := pixelAt(img, x), RGBA(red, 7, 9, 0); got != want {
			t.Errorf("transparent pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestRecolor_AlphaTakenFromTarget(t *testing.T) {
	c := NewCharacter()
	c.SetRegionColor(RegionHair, RGBA(200, 100, 50, 128))

	img := indexImage([]uint8{20}, 255)
	Recolor(img, KindHair, c.Colors, c.Outline)

	if got := pixelAt(img, 0); got.A != 128 {
		t.Errorf("alpha = %d, want the target colour's 128", got.A)
	}
}

func TestRecolor_HairBackSharesHairColours(t *testing.T) {
	c := NewCharacter()
	c.Outline.Set(KindHair, RGBA(1, 2, 3, 255))

	img := indexImage([]uint8{0, 20}, 255)
	Recolor(img, KindHairBack, c.Colors, c.Outline)

	if got := pixelAt(img, 0); got != RGBA(1, 2, 3, 255) {
		t.Errorf("outline = %v, want hair outline", got)
	}
	if got, want := pixelAt(img, 1), c.Colors[RegionHair].Neutral; got != want {
		t.Errorf("neutral = %v, want %v", got, want)
	}
}

func TestRecolor_SubImage(t *testing.T) {
	// Recolor walks bounds, not the raw pix slice, so sub-images only
	// change inside their own rectangle.
	base := indexImage([]uint8{20, 20, 20, 20}, 255)
	sub := base.SubImage(image.Rect(1, 0, 3, 1)).(*image.NRGBA)

	c := NewCharacter()
	Recolor(sub, KindHair, c.Colors, c.Outline)

	neutral := c.Colors[RegionHair].Neutral
	wantBase := []Color{RGBA(20, 7, 9, 255), neutral, neutral, RGBA(20, 7, 9, 255)}
	for x, w := range wantBase {
		if got := pixelAt(base, x); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}
