package assets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixelforge/figure"
)

// PaletteFilename returns the conventional palette file name for a region,
// e.g. "Hair_colour_palette.csv". The display name is used verbatim, so the
// eye and beard palette lives in "Eye & Beard_colour_palette.csv".
func PaletteFilename(region figure.Region) string {
	return region.String() + "_colour_palette.csv"
}

// LoadPaletteCSV reads colours from a headerless CSV file. Every field of
// every record is parsed as a hex colour; fields that fail to parse are
// logged and skipped without aborting the rest of the file.
func LoadPaletteCSV(path string) ([]figure.Color, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("assets: open palette: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parsePaletteCSV(f, path)
}

func parsePaletteCSV(r io.Reader, path string) ([]figure.Color, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var colors []figure.Color
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("assets: read palette %s: %w", path, err)
		}
		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			c, err := figure.FromHex(field)
			if err != nil {
				figure.Logger().Warn("skipping palette entry",
					"path", path, "entry", field, "error", err)
				continue
			}
			colors = append(colors, c)
		}
	}
	return colors, nil
}

// LoadPalettes loads one palette per paintable region from dir, following
// the PaletteFilename convention. Regions whose file is missing or
// unreadable, or whose palette comes out empty, are logged and omitted
// from the result; randomization and cycling simply skip them.
func LoadPalettes(dir string) map[figure.Region]*figure.Palette {
	palettes := make(map[figure.Region]*figure.Palette, len(figure.PaintableRegions()))
	for _, region := range figure.PaintableRegions() {
		path := filepath.Join(dir, PaletteFilename(region))
		colors, err := LoadPaletteCSV(path)
		if err != nil {
			figure.Logger().Warn("loading colour palette", "region", region.String(), "error", err)
			continue
		}
		if len(colors) == 0 {
			figure.Logger().Warn("empty colour palette", "region", region.String(), "path", path)
			continue
		}
		palettes[region] = figure.NewPalette(colors)
	}
	return palettes
}
