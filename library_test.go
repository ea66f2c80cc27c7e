package figure

import (
	"image"
	"testing"
)

func TestLibrary_AddPreservesOrder(t *testing.T) {
	l := NewLibrary()
	l.Add(NewAsset("A", "", "", KindFace))
	l.Add(NewAsset("B", "", "", KindFace))
	l.Add(NewAsset("C", "", "", KindFace))

	// Re-adding an existing id replaces in place, keeping its position.
	updated := NewAsset("B", "new/path.png", "", KindFace)
	l.Add(updated)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	wantNames := []string{"A", "B", "C"}
	for i, want := range wantNames {
		if got := l.At(i).Name; got != want {
			t.Errorf("At(%d).Name = %q, want %q", i, got, want)
		}
	}
	if got, _ := l.Get("B_Face"); got.Path != "new/path.png" {
		t.Errorf("replaced asset path = %q, want %q", got.Path, "new/path.png")
	}
}

func TestLibrary_Get(t *testing.T) {
	l := NewLibrary()
	a := NewAsset("A", "a.png", "", KindHair)
	l.Add(a)

	got, ok := l.Get("A_Hair")
	if !ok || got != a {
		t.Errorf("Get(A_Hair) = (%+v, %v), want (%+v, true)", got, ok, a)
	}
	if _, ok := l.Get("Missing_Hair"); ok {
		t.Error("Get on missing id reported ok")
	}
}

func TestLibrary_NilSafe(t *testing.T) {
	var l *Library
	if l.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", l.Len())
	}
	if l.Assets() != nil {
		t.Error("nil Assets() non-nil")
	}
	if _, ok := l.Get("x"); ok {
		t.Error("nil Get reported ok")
	}
}

func TestLibrary_SetImage(t *testing.T) {
	l := NewLibrary()
	l.Add(NewAsset("A", "", "", KindToken))

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	l.SetImage("A_Token", img)

	got, _ := l.Get("A_Token")
	if got.Image != img {
		t.Error("SetImage did not attach pixels")
	}

	// Unknown ids are ignored.
	l.SetImage("Missing_Token", img)
}

func TestNewLibraries(t *testing.T) {
	libs := NewLibraries()
	for _, k := range DrawOrder() {
		if libs[k] == nil {
			t.Errorf("no library for %v", k)
		}
	}
}
