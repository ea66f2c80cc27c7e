// Package assets loads the on-disk inputs of a character: layer images
// following the "Name_Kind.png" naming convention and colour palette CSV
// files. It also provides a directory watcher so long-running hosts can
// pick up art edits without restarting.
//
// Loading is tolerant by design. Files that do not follow the naming
// convention, or palette entries that fail to parse, are logged through
// figure.SetLogger and skipped; one bad file never fails a whole
// directory.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/pixelforge/figure"
)

// LoadLibraries scans dir for "*.png" files and builds one library per
// layer kind from those matching the "Name_Kind.png" convention. Files
// that do not match are logged and skipped. Images are not decoded here;
// see PreloadImages and RefreshPartImages.
func LoadLibraries(dir string) (figure.Libraries, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("assets: scan %s: %w", dir, err)
	}

	libs := figure.NewLibraries()
	for _, path := range paths {
		asset, err := figure.AssetFromPath(path)
		if err != nil {
			figure.Logger().Warn("skipping asset file", "path", path, "error", err)
			continue
		}
		libs[asset.Kind].Add(asset)
	}
	return libs, nil
}

// PreloadImages decodes pixels for every asset in every library that does
// not have them yet. Assets whose files cannot be read or decoded are
// logged and left without pixels; the first such error is returned after
// the full pass so callers can tell a partial load happened.
func PreloadImages(libs figure.Libraries) error {
	var firstErr error
	for _, lib := range libs {
		for _, asset := range lib.Assets() {
			if asset.Image != nil {
				continue
			}
			img, err := LoadImage(asset.Path)
			if err != nil {
				figure.Logger().Warn("decoding asset", "id", asset.ID, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			lib.SetImage(asset.ID, img)
		}
	}
	return firstErr
}

// RefreshPartImages points every part of a character at the pixels held by
// the authoritative libraries, decoding them on first use. Parts whose
// asset is no longer in a library keep whatever pixels they already carry.
//
// Characters snapshot their assets when parts are placed, so a part can
// outlive a library reload; this is the resynchronization step hosts run
// before rendering.
func RefreshPartImages(c *figure.Character, libs figure.Libraries) error {
	var firstErr error
	for _, kind := range figure.DrawOrder() {
		part := c.Part(kind)
		if part == nil {
			continue
		}

		asset, ok := libs[part.Asset.Kind].Get(part.Asset.ID)
		if !ok {
			continue
		}
		if asset.Image == nil {
			img, err := LoadImage(asset.Path)
			if err != nil {
				figure.Logger().Warn("decoding asset", "id", asset.ID, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			libs[asset.Kind].SetImage(asset.ID, img)
			asset.Image = img
		}
		part.Asset.Image = asset.Image
	}
	return firstErr
}
