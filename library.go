package figure

import "image"

// Library is an insertion-ordered collection of assets keyed by id, one per
// layer kind. Order is preserved because hosts present libraries as stable
// lists and the randomizer selects by position.
type Library struct {
	assets []Asset
	byID   map[string]int
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{byID: make(map[string]int)}
}

// Add inserts an asset, replacing in place any existing asset with the same
// id so the original position is kept.
func (l *Library) Add(a Asset) {
	if i, ok := l.byID[a.ID]; ok {
		l.assets[i] = a
		return
	}
	l.byID[a.ID] = len(l.assets)
	l.assets = append(l.assets, a)
}

// Get looks up an asset by id.
func (l *Library) Get(id string) (Asset, bool) {
	if l == nil {
		return Asset{}, false
	}
	i, ok := l.byID[id]
	if !ok {
		return Asset{}, false
	}
	return l.assets[i], true
}

// At returns the asset at position i in insertion order.
func (l *Library) At(i int) Asset {
	return l.assets[i]
}

// Len returns the number of assets in the library.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.assets)
}

// Assets returns the assets in insertion order. The slice is the library's
// own backing store; callers must not modify it.
func (l *Library) Assets() []Asset {
	if l == nil {
		return nil
	}
	return l.assets
}

// SetImage attaches decoded pixels to the asset with the given id, if
// present. The image is shared read-only from then on.
func (l *Library) SetImage(id string, img *image.NRGBA) {
	if i, ok := l.byID[id]; ok {
		l.assets[i].Image = img
	}
}

// Libraries groups one library per layer kind.
type Libraries map[Kind]*Library

// NewLibraries creates an empty library for every kind.
func NewLibraries() Libraries {
	libs := make(Libraries, kindCount)
	for _, k := range DrawOrder() {
		libs[k] = NewLibrary()
	}
	return libs
}
