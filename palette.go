package figure

// debugColor is returned by palette reads that have nothing sensible to
// return. Magenta is loud enough to spot immediately in rendered output.
var debugColor = RGBA(255, 0, 255, 255)

// Palette is an ordered list of colours with a cursor that steps through
// them cyclically. The list order is semantically significant: hosts
// present palettes as fixed sequences and cycle through them.
type Palette struct {
	colors []Color
	index  int
}

// NewPalette creates a palette over the given colours. The slice is used
// directly, not copied; the cursor starts at the first entry.
func NewPalette(colors []Color) *Palette {
	return &Palette{colors: colors}
}

// Current returns the colour under the cursor. An empty palette yields the
// magenta debug colour instead of failing.
func (p *Palette) Current() Color {
	if p.index >= len(p.colors) {
		Logger().Error("palette: current index out of bounds",
			"index", p.index, "len", len(p.colors))
		return debugColor
	}
	return p.colors[p.index]
}

// Peek returns the colour one step ahead of the cursor without moving it.
// An empty palette yields the magenta debug colour.
func (p *Palette) Peek() Color {
	if len(p.colors) == 0 {
		return debugColor
	}
	return p.colors[(p.index+1)%len(p.colors)]
}

// NextCyclic advances the cursor one step, wrapping at the end, and returns
// the new current colour. An empty palette yields the magenta debug colour.
func (p *Palette) NextCyclic() Color {
	if len(p.colors) == 0 {
		return debugColor
	}
	p.index = (p.index + 1) % len(p.colors)
	return p.Current()
}

// Colors returns the palette's colour list in order.
func (p *Palette) Colors() []Color {
	return p.colors
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}
