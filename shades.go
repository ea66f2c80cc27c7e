package figure

// ShadeSet is the full set of shades derived from one base colour. The five
// derived entries are recomputed from scratch whenever the base changes;
// there is no incremental update path.
type ShadeSet struct {
	Lighter Color `json:"lighter"`
	Neutral Color `json:"neutral"`
	Darker  Color `json:"darker"`
	Darker2 Color `json:"darker_darker"`
	Darker3 Color `json:"darker_darker_darker"`
	Base    Color `json:"base"`
}

// NewShadeSet derives a full shade set from a base colour.
func NewShadeSet(base Color) ShadeSet {
	var s ShadeSet
	s.Set(base)
	return s
}

// Set replaces the base colour and rederives all five shades.
func (s *ShadeSet) Set(base Color) {
	s.Base = base
	s.Lighter = base.Brighter()
	s.Neutral = base
	s.Darker = base.Darker()
	s.Darker2 = base.Darker().Darker()
	s.Darker3 = base.Darker().Darker().Darker()
}

// defaultOutline is the outline colour every layer kind starts with.
var defaultOutline = RGBA(56, 32, 64, 255)

// Outlines maps each layer kind to its outline colour. Reads and writes for
// KindHairBack are redirected to the KindHair entry, so hair and its back
// layer always share an outline.
type Outlines struct {
	Colors map[Kind]Color `json:"outline_colours"`
}

// NewOutlines creates an outline table with the default dark colour for
// every kind.
func NewOutlines() Outlines {
	colors := make(map[Kind]Color, kindCount-1)
	for _, k := range SelectableKinds() {
		colors[k] = defaultOutline
	}
	return Outlines{Colors: colors}
}

// Get returns the outline colour for a kind, falling back to black for
// kinds never set on a sparsely-populated table.
func (o Outlines) Get(kind Kind) Color {
	if kind == KindHairBack {
		kind = KindHair
	}
	if c, ok := o.Colors[kind]; ok {
		return c
	}
	return Black
}

// Set assigns the outline colour for a kind.
func (o *Outlines) Set(kind Kind, c Color) {
	if kind == KindHairBack {
		kind = KindHair
	}
	if o.Colors == nil {
		o.Colors = make(map[Kind]Color, kindCount-1)
	}
	o.Colors[kind] = c
}
