package figure

import "fmt"

// Region identifies a distinct, colourable area of a character's art.
//
// RegionOutline is a pseudo-region: outlines are coloured per layer kind
// through the Outlines table and are excluded from palette-driven loops,
// but it exists so hosts can offer "outline" alongside the paintable
// regions in colour pickers.
type Region uint8

const (
	RegionHair Region = iota
	RegionEyeAndBeard
	RegionSkin
	RegionMetal
	RegionTrim
	RegionCloth
	RegionLeather
	RegionAccessory
	RegionOutline

	regionCount
)

// String returns the region's display name, as used in palette filenames.
func (r Region) String() string {
	switch r {
	case RegionHair:
		return "Hair"
	case RegionEyeAndBeard:
		return "Eye & Beard"
	case RegionSkin:
		return "Skin"
	case RegionMetal:
		return "Metal"
	case RegionTrim:
		return "Trim"
	case RegionCloth:
		return "Cloth"
	case RegionLeather:
		return "Leather"
	case RegionAccessory:
		return "Accessory"
	case RegionOutline:
		return "Outline"
	default:
		return "Unknown"
	}
}

// wireName returns the region's serialization token. It differs from the
// display name only for RegionEyeAndBeard, whose display name carries
// spaces and an ampersand.
func (r Region) wireName() string {
	if r == RegionEyeAndBeard {
		return "EyeAndBeard"
	}
	return r.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.wireName()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	for cand := RegionHair; cand < regionCount; cand++ {
		if string(text) == cand.wireName() {
			*r = cand
			return nil
		}
	}
	return fmt.Errorf("figure: unknown colour region %q", text)
}

// Regions returns all nine regions, including RegionOutline.
func Regions() []Region {
	all := make([]Region, 0, regionCount)
	for r := RegionHair; r < regionCount; r++ {
		all = append(all, r)
	}
	return all
}

// PaintableRegions returns the eight regions that take palette colours,
// excluding the RegionOutline pseudo-region.
func PaintableRegions() []Region {
	paintable := make([]Region, 0, regionCount-1)
	for r := RegionHair; r < regionCount; r++ {
		if r != RegionOutline {
			paintable = append(paintable, r)
		}
	}
	return paintable
}
