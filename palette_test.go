package figure

import "testing"

func TestPalette_Cycle(t *testing.T) {
	colors := []Color{
		RGBA(255, 0, 0, 255),
		RGBA(0, 255, 0, 255),
		RGBA(0, 0, 255, 255),
	}
	p := NewPalette(colors)

	if got := p.Current(); got != colors[0] {
		t.Errorf("Current() = %v, want %v", got, colors[0])
	}
	if got := p.Peek(); got != colors[1] {
		t.Errorf("Peek() = %v, want %v", got, colors[1])
	}
	if got := p.NextCyclic(); got != colors[1] {
		t.Errorf("NextCyclic() = %v, want %v", got, colors[1])
	}
	if got := p.NextCyclic(); got != colors[2] {
		t.Errorf("NextCyclic() = %v, want %v", got, colors[2])
	}

	// Peek at the end wraps to the start without moving the cursor.
	if got := p.Peek(); got != colors[0] {
		t.Errorf("Peek() at end = %v, want %v", got, colors[0])
	}
	if got := p.Current(); got != colors[2] {
		t.Errorf("Current() after Peek = %v, want %v", got, colors[2])
	}

	if got := p.NextCyclic(); got != colors[0] {
		t.Errorf("NextCyclic() wrap = %v, want %v", got, colors[0])
	}
}

func TestPalette_Empty(t *testing.T) {
	p := NewPalette(nil)

	if got := p.Current(); got != debugColor {
		t.Errorf("Current() = %v, want debug colour", got)
	}
	if got := p.Peek(); got != debugColor {
		t.Errorf("Peek() = %v, want debug colour", got)
	}
	if got := p.NextCyclic(); got != debugColor {
		t.Errorf("NextCyclic() = %v, want debug colour", got)
	}
	if got := p.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestPalette_SingleColor(t *testing.T) {
	c := RGBA(1, 2, 3, 255)
	p := NewPalette([]Color{c})

	for i := 0; i < 3; i++ {
		if got := p.NextCyclic(); got != c {
			t.Errorf("NextCyclic() #%d = %v, want %v", i, got, c)
		}
	}
}
