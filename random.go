package figure

import (
	"math"
	"math/rand/v2"
)

// RandomizeAssets replaces the listed parts of a character with assets
// chosen uniformly from the matching libraries. Kinds with an empty or
// missing library are skipped.
//
// New parts are placed at the canvas centre, unrotated and unflipped, at an
// integer scale fitting the canvas height (never below 1). Armour is the
// exception: it is aligned to the canvas bottom instead of centred
// vertically. Randomizing hair also updates the hair-back layer: the
// placement is copied to the linked back asset, and the layer is removed
// when the chosen hair declares no back part at all. A declared companion
// that is missing from the back library leaves the existing layer alone.
//
// A nil rng falls back to a freshly seeded generator.
func RandomizeAssets(c *Character, libs Libraries, kinds []Kind, canvas Point, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	scale := math.Max(math.Floor(canvas.Y/96), 1)
	center := Pt(canvas.X/2, canvas.Y/2)

	for _, kind := range kinds {
		lib := libs[kind]
		if lib.Len() == 0 {
			continue
		}
		asset := lib.At(rng.IntN(lib.Len()))

		position := center
		if kind == KindArmour {
			scaledAssetHeight := 96 * scale
			position.Y = canvas.Y - scaledAssetHeight/2
		}

		part := Part{
			Position: position,
			Scale:    scale,
			Asset:    asset,
		}

		if kind == KindHair {
			if asset.BackPart == "" {
				c.RemovePart(KindHairBack)
			} else if back, ok := libs[KindHairBack].Get(asset.BackPart); ok {
				backPart := part
				backPart.Asset = back
				c.SetPart(KindHairBack, backPart)
			}
			// A declared companion missing from the back library leaves
			// any existing hair-back part alone.
		}

		c.SetPart(kind, part)
	}
}

// RandomizeColors reassigns the character's region colours from the given
// palettes, deriving a fresh shade set from a uniformly chosen base colour
// per region. Regions without a palette, or with an empty one, keep their
// current colours. Outline colours are never touched.
//
// A nil rng falls back to a freshly seeded generator.
func RandomizeColors(c *Character, palettes map[Region]*Palette, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for _, region := range PaintableRegions() {
		palette, ok := palettes[region]
		if !ok || palette.Len() == 0 {
			continue
		}
		base := palette.Colors()[rng.IntN(palette.Len())]
		c.Colors[region] = NewShadeSet(base)
	}
}
