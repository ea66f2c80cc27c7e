package figure

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies one of the six layer categories of a character sprite.
//
// The declaration order is the default drawing order, from bottom to top.
type Kind uint8

const (
	KindHairBack Kind = iota
	KindArmour
	KindFace
	KindHair
	KindAccessory
	KindToken

	kindCount
)

// String returns the kind's wire token, as used in asset filenames and
// persisted characters. Tokens are case-sensitive.
func (k Kind) String() string {
	switch k {
	case KindHairBack:
		return "HairBack"
	case KindArmour:
		return "Armour"
	case KindFace:
		return "Face"
	case KindHair:
		return "Hair"
	case KindAccessory:
		return "Accessory"
	case KindToken:
		return "Token"
	default:
		return "Unknown"
	}
}

// ParseKind parses a wire token into a Kind. Unrecognized tokens are
// rejected.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "HairBack":
		return KindHairBack, nil
	case "Armour":
		return KindArmour, nil
	case "Face":
		return KindFace, nil
	case "Hair":
		return KindHair, nil
	case "Accessory":
		return KindAccessory, nil
	case "Token":
		return KindToken, nil
	default:
		return 0, fmt.Errorf("figure: unknown asset kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DrawOrder returns all six kinds in the default bottom-to-top drawing
// order.
func DrawOrder() []Kind {
	return []Kind{KindHairBack, KindArmour, KindFace, KindHair, KindAccessory, KindToken}
}

// SelectableKinds returns the kinds a user may pick directly. KindHairBack
// is excluded: it is driven by the chosen hair asset, though it still
// composites and colours like any other layer.
func SelectableKinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for _, k := range DrawOrder() {
		if k != KindHairBack {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Asset identifies a loadable layer image.
//
// Identity is carried by ID alone: two Assets with the same ID are the same
// asset whether or not either has pixels attached. Image is a shared,
// read-only decoded buffer; anything that needs to modify pixels must clone
// it first.
type Asset struct {
	// ID has the form "Name_Kind", e.g. "MyAsset_Face".
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	// BackPart names the matching HairBack asset. Only hair assets carry
	// one; empty means none.
	BackPart string `json:"back_part,omitempty"`
	Kind     Kind   `json:"asset_type"`

	Image *image.NRGBA `json:"-"`
}

// NewAsset creates an Asset with its ID derived from name and kind.
// No pixels are attached.
func NewAsset(name, path, backPart string, kind Kind) Asset {
	return Asset{
		ID:       name + "_" + kind.String(),
		Name:     name,
		Path:     path,
		BackPart: backPart,
		Kind:     kind,
	}
}

// ParseFilename splits a filename stem of the form "Name_Kind" into its
// name and kind. The stem is NFC-normalized first so that names coming from
// filesystems that decompose unicode (e.g. macOS) still match companion ids
// built elsewhere. Stems without a '_' separator or with an unrecognized
// kind token are rejected.
func ParseFilename(stem string) (string, Kind, error) {
	stem = norm.NFC.String(stem)

	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return "", 0, fmt.Errorf("figure: filename %q has no '_' separator", stem)
	}

	kind, err := ParseKind(stem[i+1:])
	if err != nil {
		return "", 0, err
	}
	return stem[:i], kind, nil
}

// AssetFromPath builds an Asset from an image file path following the
// "Name_Kind.png" convention. Hair assets get a BackPart id of
// "Name_HairBack"; whether that companion actually exists is the asset
// library's concern.
func AssetFromPath(path string) (Asset, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	name, kind, err := ParseFilename(stem)
	if err != nil {
		return Asset{}, err
	}

	backPart := ""
	if kind == KindHair {
		backPart = name + "_" + KindHairBack.String()
	}
	return NewAsset(name, path, backPart, kind), nil
}
