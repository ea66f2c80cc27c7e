// Package charfile persists characters as JSON files.
//
// Positions and scales are stored normalized to the authoring canvas, so a
// file saved against one canvas size loads correctly against another. The
// canvas the caller supplies to Save and Load is what anchors that
// conversion; pixel data is never persisted, only asset identities.
package charfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixelforge/figure"
)

// Extension is the conventional file extension for saved characters.
const Extension = ".json"

// Save writes a character to path as indented JSON, with part placements
// normalized against the given canvas size. The character itself is left
// untouched.
func Save(c *figure.Character, path string, canvas figure.Point) error {
	snapshot := clone(c)
	snapshot.Normalize(canvas)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("charfile: encode %s: %w", c.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("charfile: write %s: %w", path, err)
	}
	return nil
}

// Load reads a character from path and denormalizes its part placements
// against the given canvas size. Loaded parts carry no pixel data; run
// assets.RefreshPartImages against the current libraries before rendering.
func Load(path string, canvas figure.Point) (*figure.Character, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("charfile: read %s: %w", path, err)
	}

	var c figure.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("charfile: decode %s: %w", path, err)
	}
	c.Denormalize(canvas)
	return &c, nil
}

// Filename derives a save file name from a character's name, falling back
// to "character" for unnamed ones.
func Filename(c *figure.Character) string {
	name := c.Name
	if name == "" {
		name = "character"
	}
	return name + Extension
}

// clone copies a character deeply enough that normalizing the copy leaves
// the original's parts alone. Colour tables are immutable under
// normalization, so they are shared.
func clone(c *figure.Character) *figure.Character {
	out := *c
	for _, kind := range figure.DrawOrder() {
		if p := c.Part(kind); p != nil {
			out.SetPart(kind, *p)
		}
	}
	return &out
}
