package figure

import "image"

// Source art encodes its palette as literal red-channel values 0, 10, 20,
// ..., 200; the slot index is red/10. Green and blue carry nothing, and
// alpha is the opacity mask. The encoding is baked into the art assets and
// cannot change here.
const (
	outlineIndex = 0

	// Eye/beard shades on face and accessory layers, hair shades on
	// everything else.
	multiLighterIndex = 1
	multiNeutralIndex = 2
	multiDarkerIndex  = 3

	skinLighterIndex = 4
	skinNeutralIndex = 5
	skinDarkerIndex  = 6
	skinDarker2Index = 7
	skinDarker3Index = 8

	// Accessory shades on face and accessory layers, metal shades on
	// everything else.
	accMetalLighterIndex = 9
	accMetalNeutralIndex = 10
	accMetalDarkerIndex  = 11

	trimLighterIndex = 12
	trimNeutralIndex = 13
	trimDarkerIndex  = 14

	clothLighterIndex = 15
	clothNeutralIndex = 16
	clothDarkerIndex  = 17

	leatherLighterIndex = 18
	leatherNeutralIndex = 19
	leatherDarkerIndex  = 20

	recolorSlots = 21
)

// recolorTable maps red-channel slot indices to target colours for one
// layer kind. Unset slots pass pixels through unchanged.
type recolorTable struct {
	colors [recolorSlots]Color
	mapped [recolorSlots]bool
}

func (t *recolorTable) set(i int, c Color) {
	t.colors[i] = c
	t.mapped[i] = true
}

func (t *recolorTable) setTriple(base int, s ShadeSet) {
	t.set(base, s.Lighter)
	t.set(base+1, s.Neutral)
	t.set(base+2, s.Darker)
}

// buildRecolorTable resolves the slot assignment for a layer kind. Face and
// accessory art uses a short table (eye/beard, skin, accessory); all other
// kinds use the long table (hair, skin, metal, trim, cloth, leather). Slot
// 0 is always the kind's outline colour.
func buildRecolorTable(kind Kind, colors map[Region]ShadeSet, outlines Outlines) recolorTable {
	var t recolorTable
	t.set(outlineIndex, outlines.Get(kind))

	skin := colors[RegionSkin]
	t.setTriple(skinLighterIndex, skin)
	t.set(skinDarker2Index, skin.Darker2)
	t.set(skinDarker3Index, skin.Darker3)

	if kind == KindFace || kind == KindAccessory {
		t.setTriple(multiLighterIndex, colors[RegionEyeAndBeard])
		t.setTriple(accMetalLighterIndex, colors[RegionAccessory])
		return t
	}

	t.setTriple(multiLighterIndex, colors[RegionHair])
	t.setTriple(accMetalLighterIndex, colors[RegionMetal])
	t.setTriple(trimLighterIndex, colors[RegionTrim])
	t.setTriple(clothLighterIndex, colors[RegionCloth])
	t.setTriple(leatherLighterIndex, colors[RegionLeather])
	return t
}

// Recolor remaps a decoded layer image's index colours to the character's
// assigned palette, in place.
//
// For every pixel with non-zero alpha, the slot index is red/10; if the
// table maps that slot, all four channels are replaced with the mapped
// colour, including alpha, so the target colour's opacity wins over the
// source's. Unmapped slots (including any red value of 210 or above) and
// fully transparent pixels are left untouched.
//
// Recolor mutates only the image it is handed. Decoded source assets are
// shared between parts and characters, so callers composite from a clone,
// never the library's copy.
func Recolor(img *image.NRGBA, kind Kind, colors map[Region]ShadeSet, outlines Outlines) {
	table := buildRecolorTable(kind, colors, outlines)

	bounds := img.Bounds()
	width := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := 0; x < width; x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			if px[3] == 0 {
				continue
			}
			slot := int(px[0]) / 10
			if slot >= recolorSlots || !table.mapped[slot] {
				continue
			}
			c := table.colors[slot]
			px[0] = c.R
			px[1] = c.G
			px[2] = c.B
			px[3] = c.A
		}
	}
}
