package figure

// Part is one placed layer of a character: a transform plus an owned
// snapshot of the asset it draws. The snapshot's pixel data may lag behind
// the authoritative asset library; hosts refresh it before rendering
// (see assets.RefreshPartImages).
type Part struct {
	// Position is the part's centre in the coordinate space of the canvas
	// the character was authored against.
	Position Point `json:"position"`
	// Scale is a uniform scale factor applied to the asset's native size.
	Scale float64 `json:"scale"`
	// Rotation is measured in radians.
	Rotation float64 `json:"rotation"`
	Flipped  bool    `json:"flipped"`
	Asset    Asset   `json:"asset"`
}

// Character is a complete customizable sprite: up to one part per layer
// kind, a shade set per colourable region, and an outline colour per kind.
//
// One named field per kind keeps the kind switch exhaustive: adding a kind
// is a compile-visible change in every accessor below.
type Character struct {
	Name      string `json:"name"`
	Armour    *Part  `json:"armour"`
	Face      *Part  `json:"face"`
	Hair      *Part  `json:"hair"`
	HairBack  *Part  `json:"hair_back"`
	Accessory *Part  `json:"accessory"`
	Token     *Part  `json:"token"`

	Colors  map[Region]ShadeSet `json:"character_colours"`
	Outline Outlines            `json:"outline_colours"`
}

// NewCharacter creates a character with no parts, the default base colour
// for every paintable region (shades derived immediately), and default
// outlines.
func NewCharacter() *Character {
	return &Character{
		Colors: map[Region]ShadeSet{
			RegionHair:        NewShadeSet(RGBA(224, 216, 64, 255)),
			RegionEyeAndBeard: NewShadeSet(RGBA(64, 50, 25, 255)),
			RegionSkin:        NewShadeSet(RGBA(248, 248, 192, 255)),
			RegionMetal:       NewShadeSet(RGBA(100, 100, 100, 255)),
			RegionTrim:        NewShadeSet(RGBA(247, 173, 82, 255)),
			RegionCloth:       NewShadeSet(RGBA(82, 82, 115, 255)),
			RegionLeather:     NewShadeSet(RGBA(148, 100, 66, 255)),
			RegionAccessory:   NewShadeSet(RGBA(0, 0, 0, 255)),
		},
		Outline: NewOutlines(),
	}
}

// Part returns the character's part for a kind, or nil if the slot is
// empty. The pointer aliases the character's own part; callers that want a
// detached copy should dereference it.
func (c *Character) Part(kind Kind) *Part {
	switch kind {
	case KindArmour:
		return c.Armour
	case KindFace:
		return c.Face
	case KindHair:
		return c.Hair
	case KindHairBack:
		return c.HairBack
	case KindAccessory:
		return c.Accessory
	case KindToken:
		return c.Token
	default:
		return nil
	}
}

// SetPart places a part in the slot for a kind, replacing any existing one.
func (c *Character) SetPart(kind Kind, part Part) {
	p := &part
	switch kind {
	case KindArmour:
		c.Armour = p
	case KindFace:
		c.Face = p
	case KindHair:
		c.Hair = p
	case KindHairBack:
		c.HairBack = p
	case KindAccessory:
		c.Accessory = p
	case KindToken:
		c.Token = p
	}
}

// RemovePart empties the slot for a kind.
func (c *Character) RemovePart(kind Kind) {
	switch kind {
	case KindArmour:
		c.Armour = nil
	case KindFace:
		c.Face = nil
	case KindHair:
		c.Hair = nil
	case KindHairBack:
		c.HairBack = nil
	case KindAccessory:
		c.Accessory = nil
	case KindToken:
		c.Token = nil
	}
}

// Hair and hair-back are one visual object split across two layers, so
// every transform mutator keeps them in lockstep: moving, scaling,
// rotating or flipping the hair applies the identical change to the back
// layer when present.

// MovePart translates a part by (dx, dy) in authoring-canvas coordinates.
func (c *Character) MovePart(kind Kind, dx, dy float64) {
	p := c.Part(kind)
	if p == nil {
		return
	}
	p.Position.X += dx
	p.Position.Y += dy

	if kind == KindHair && c.HairBack != nil {
		c.HairBack.Position.X += dx
		c.HairBack.Position.Y += dy
	}
}

// ScalePart multiplies a part's scale by factor.
func (c *Character) ScalePart(kind Kind, factor float64) {
	p := c.Part(kind)
	if p == nil {
		return
	}
	p.Scale *= factor

	if kind == KindHair && c.HairBack != nil {
		c.HairBack.Scale *= factor
	}
}

// RotatePart sets a part's rotation in radians.
func (c *Character) RotatePart(kind Kind, radians float64) {
	p := c.Part(kind)
	if p == nil {
		return
	}
	p.Rotation = radians

	if kind == KindHair && c.HairBack != nil {
		c.HairBack.Rotation = radians
	}
}

// FlipPart toggles a part's horizontal flip.
func (c *Character) FlipPart(kind Kind) {
	p := c.Part(kind)
	if p == nil {
		return
	}
	p.Flipped = !p.Flipped

	if kind == KindHair && c.HairBack != nil {
		c.HairBack.Flipped = !c.HairBack.Flipped
	}
}

// SetRegionColor assigns a new base colour to a paintable region,
// rederiving its shade set. RegionOutline is not palette-driven; use
// Outline.Set for outline colours.
func (c *Character) SetRegionColor(region Region, col Color) {
	if region == RegionOutline {
		return
	}
	if c.Colors == nil {
		c.Colors = make(map[Region]ShadeSet, regionCount-1)
	}
	c.Colors[region] = NewShadeSet(col)
}

// Normalize rescales every part's position and scale into canvas-relative
// units (position divided by canvas width/height, scale divided by canvas
// height), so a saved character renders identically whatever canvas size it
// is later loaded against. A zero-sized canvas leaves the character
// untouched.
func (c *Character) Normalize(canvas Point) {
	if canvas.X <= 0 || canvas.Y <= 0 {
		return
	}
	for _, kind := range DrawOrder() {
		if p := c.Part(kind); p != nil {
			p.Position.X /= canvas.X
			p.Position.Y /= canvas.Y
			p.Scale /= canvas.Y
		}
	}
}

// Denormalize is the inverse of Normalize: it rescales canvas-relative
// units back into the given canvas's coordinate space.
func (c *Character) Denormalize(canvas Point) {
	if canvas.X <= 0 || canvas.Y <= 0 {
		return
	}
	for _, kind := range DrawOrder() {
		if p := c.Part(kind); p != nil {
			p.Position.X *= canvas.X
			p.Position.Y *= canvas.Y
			p.Scale *= canvas.Y
		}
	}
}
